// Package hash provides the external hash collaborator the NAXOS protocol
// layer treats as out of scope for its own correctness: it is specified only
// by its byte-in/byte-out interface, and the one implementation here backs
// it with golang.org/x/crypto/sha3.
package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// ErrUnsupportedBitSize is returned for any curve bit size this Hasher
// implementation does not carry a binding for.
var ErrUnsupportedBitSize = errors.New("hash: unsupported curve bit size")

// Hasher is the external collaborator the protocol layer calls for both the
// ephemeral-exponent derivation (HashToScalar) and the final session-key
// derivation (SessionKey). Both take the curve's bit size so an
// implementation can pick an output length appropriate to that curve.
type Hasher interface {
	HashToScalar(bitSize int, input []byte) ([]byte, error)
	SessionKey(bitSize int, input []byte) ([]byte, error)
}

// SHA3 implements Hasher over the SHA3/Keccak family. The output length for
// each curve matches the reference protocol's own binding where one exists
// (SHA3-224/256/384 for P-224/256/384, SHA3-512 for P-521's session key); the
// two curves the reference left without a natural fixed-output match
// (P-192's 192 bits, and P-521's 521-bit hash-to-scalar input) use a
// truncated or squeezed digest the same way the reference's own 521-bit path
// already does.
//
// P-521's HashToScalar squeezes its 66 bytes from SHAKE256 rather than the
// reference's own rate-576/capacity-1024, suffix-0x06 sponge construction:
// golang.org/x/crypto/sha3 exposes no constructor for that exact sponge
// configuration. The masking below still guarantees the output is < 2P, so
// the single-subtraction reduction in naxos.hashToExponent stays correct,
// but the resulting P-521 exponent bytes are NOT wire-interoperable with the
// C reference's own hash output for the same input.
type SHA3 struct{}

func (SHA3) HashToScalar(bitSize int, input []byte) ([]byte, error) {
	switch bitSize {
	case 192:
		d := sha3.Sum224(input)
		return d[:24], nil
	case 224:
		d := sha3.Sum224(input)
		return d[:], nil
	case 256:
		d := sha3.Sum256(input)
		return d[:], nil
	case 384:
		d := sha3.Sum384(input)
		return d[:], nil
	case 521:
		out := make([]byte, 66)
		xof := sha3.NewShake256()
		xof.Write(input)
		if _, err := xof.Read(out); err != nil {
			return nil, err
		}
		// P-521 is 521 bits: 65 full bytes plus a single extra bit carried
		// in the most significant byte of this little-endian-interpreted
		// coordinate. Masking it here keeps the output strictly under 2P,
		// so a single conditional subtraction is always enough to reduce it.
		out[65] &= 1
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitSize, bitSize)
	}
}

func (SHA3) SessionKey(bitSize int, input []byte) ([]byte, error) {
	switch bitSize {
	case 192:
		d := sha3.Sum224(input)
		return d[:24], nil
	case 224:
		d := sha3.Sum224(input)
		return d[:], nil
	case 256:
		d := sha3.Sum256(input)
		return d[:], nil
	case 384:
		d := sha3.Sum384(input)
		return d[:], nil
	case 521:
		d := sha3.Sum512(input)
		return d[:], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitSize, bitSize)
	}
}
