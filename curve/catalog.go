package curve

import (
	"errors"
	"fmt"

	"github.com/nax-crypto/naxos-go/field"
)

// ErrUnknownCurve is returned by Select for any bit size outside the five
// NIST prime curves this catalog carries.
var ErrUnknownCurve = errors.New("curve: unsupported bit size")

// ErrNotReduced is returned when a coordinate decoded from the wire is not
// strictly less than the curve's prime.
var ErrNotReduced = errors.New("curve: coordinate not reduced mod p")

func elem(words ...uint64) field.Elem {
	var e field.Elem
	copy(e[:], words)
	return e
}

var p192 = Curve{
	Name:    "P-192",
	BitSize: 192,
	Words:   3,
	P:       elem(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF),
	A:       elem(0x0000000000000003),
	B:       elem(0xfeb8deecc146b9b1, 0x0fa7e9ab72243049, 0x64210519e59c80e7),
	G: Affine{
		X: elem(0xf4ff0afd82ff1012, 0x7cbf20eb43a18800, 0x188da80eb03090f6),
		Y: elem(0x73f977a11e794811, 0x631011ed6b24cdd5, 0x07192b95ffc8da78),
	},
}

var p224 = Curve{
	Name:    "P-224",
	BitSize: 224,
	Words:   4,
	P:       elem(0x0000000000000001, 0xFFFFFFFF00000000, 0xFFFFFFFFFFFFFFFF, 0x00000000FFFFFFFF),
	A:       elem(0x0000000000000003),
	B:       elem(0x270b39432355ffb4, 0x5044b0b7d7bfd8ba, 0x0c04b3abf5413256, 0xb4050a85),
	G: Affine{
		X: elem(0x343280d6115c1d21, 0x4a03c1d356c21122, 0x6bb4bf7f321390b9, 0xb70e0cbd),
		Y: elem(0x44d5819985007e34, 0xcd4375a05a074764, 0xb5f723fb4c22dfe6, 0xbd376388),
	},
}

var p256 = Curve{
	Name:    "P-256",
	BitSize: 256,
	Words:   4,
	P:       elem(0xFFFFFFFFFFFFFFFF, 0x00000000FFFFFFFF, 0x0000000000000000, 0xFFFFFFFF00000001),
	A:       elem(0x0000000000000003),
	B:       elem(0x3bce3c3e27d2604b, 0x651d06b0cc53b0f6, 0xb3ebbd55769886bc, 0x5ac635d8aa3a93e7),
	G: Affine{
		X: elem(0xf4a13945d898c296, 0x77037d812deb33a0, 0xf8bce6e563a440f2, 0x6b17d1f2e12c4247),
		Y: elem(0xcbb6406837bf51f5, 0x2bce33576b315ece, 0x8ee7eb4a7c0f9e16, 0x4fe342e2fe1a7f9b),
	},
}

var p384 = Curve{
	Name:    "P-384",
	BitSize: 384,
	Words:   6,
	P: elem(0x00000000FFFFFFFF, 0xFFFFFFFF00000000, 0xFFFFFFFFFFFFFFFE,
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF),
	A: elem(0x0000000000000003),
	B: elem(0x2a85c8edd3ec2aef, 0xc656398d8a2ed19d, 0x0314088f5013875a,
		0x181d9c6efe814112, 0x988e056be3f82d19, 0xb3312fa7e23ee7e4),
	G: Affine{
		X: elem(0x3a545e3872760ab7, 0x5502f25dbf55296c, 0x59f741e082542a38,
			0x6e1d3b628ba79b98, 0x8eb1c71ef320ad74, 0xaa87ca22be8b0537),
		Y: elem(0x7a431d7c90ea0e5f, 0x0a60b1ce1d7e819d, 0xe9da3113b5f0b8c0,
			0xf8f41dbd289a147c, 0x5d9e98bf9292dc29, 0x3617de4a96262c6f),
	},
}

var p521 = Curve{
	Name:    "P-521",
	BitSize: 521,
	Words:   9,
	P: elem(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0x00000000000001FF),
	A: elem(0x0000000000000003),
	B: elem(0xef451fd46b503f00, 0x3573df883d2c34f1, 0x1652c0bd3bb1bf07, 0x56193951ec7e937b,
		0xb8b489918ef109e1, 0xa2da725b99b315f3, 0x929a21a0b68540ee, 0x953eb9618e1c9a1f, 0x0000000000000051),
	G: Affine{
		X: elem(0xf97e7e31c2e5bd66, 0x3348b3c1856a429b, 0xfe1dc127a2ffa8de, 0xa14b5e77efe75928,
			0xf828af606b4d3dba, 0x9c648139053fb521, 0x9e3ecb662395b442, 0x858e06b70404e9cd, 0x00000000000000c6),
		Y: elem(0x88be94769fd16650, 0x353c7086a272c240, 0xc550b9013fad0761, 0x97ee72995ef42640,
			0x17afbd17273e662c, 0x98f54449579b4468, 0x5c8a5fb42c7d1bd9, 0x39296a789a3bc004, 0x0000000000000118),
	},
}

// Select returns the catalog entry for the named NIST prime curve: 192, 224,
// 256, 384 or 521.
func Select(bitSize int) (*Curve, error) {
	switch bitSize {
	case 192:
		c := p192
		return &c, nil
	case 224:
		c := p224
		return &c, nil
	case 256:
		c := p256
		return &c, nil
	case 384:
		c := p384
		return &c, nil
	case 521:
		c := p521
		return &c, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCurve, bitSize)
	}
}

// WordsToBytes renders n words of e into the curve's little-endian wire
// format: word 0 (least significant) occupies the first 8 bytes, least
// significant byte first.
func WordsToBytes(e *field.Elem, n int) []byte {
	out := make([]byte, n*8)
	for i := 0; i < n; i++ {
		w := e[i]
		for k := 0; k < 8; k++ {
			out[i*8+k] = byte(w)
			w >>= 8
		}
	}
	return out
}

// BytesToWords parses a little-endian byte string into n words, the inverse
// of WordsToBytes. Trailing bytes beyond n*8 are ignored; a short input is
// zero-extended the way the upstream decoder treats a final partial word.
func BytesToWords(b []byte, n int) field.Elem {
	var e field.Elem
	for i := 0; i < n; i++ {
		var w uint64
		for k := 7; k >= 0; k-- {
			idx := i*8 + k
			var bb byte
			if idx < len(b) {
				bb = b[idx]
			}
			w = (w << 8) | uint64(bb)
		}
		e[i] = w
	}
	return e
}

// AffineFromBytes decodes a point from its wire coordinates, rejecting any
// coordinate that is not strictly less than the curve's prime - the same
// validation convBytesToPoint performs before a coordinate is used.
func (c *Curve) AffineFromBytes(x, y []byte) (Affine, error) {
	n := c.Words
	xe := BytesToWords(x, n)
	ye := BytesToWords(y, n)

	if field.Cmp(&xe, &c.P, n) != -1 {
		return Affine{}, ErrNotReduced
	}
	if field.Cmp(&ye, &c.P, n) != -1 {
		return Affine{}, ErrNotReduced
	}

	return Affine{X: xe, Y: ye}, nil
}

// Bytes encodes p's coordinates into their little-endian wire form, each
// exactly ByteLen() bytes long - the fixed wire length L = ceil(bsize/8),
// not the word-aligned Words*8 (which overshoots L for P-224 and P-521).
func (c *Curve) Bytes(p *Affine) (x, y []byte) {
	n := c.Words
	l := c.ByteLen()
	return WordsToBytes(&p.X, n)[:l], WordsToBytes(&p.Y, n)[:l]
}
