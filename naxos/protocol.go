// Package naxos implements the NAXOS authenticated key exchange: ephemeral
// exponent derivation and two-sided session-key agreement over any of the
// curves in package curve. This layer never speaks to a network: it takes
// and returns the raw coordinate byte strings a transport would carry, and
// leaves signatures, PKI and re-keying out of scope entirely.
package naxos

import (
	"github.com/nax-crypto/naxos-go/curve"
	"github.com/nax-crypto/naxos-go/entropy"
	"github.com/nax-crypto/naxos-go/field"
	"github.com/nax-crypto/naxos-go/hash"
	"github.com/nax-crypto/naxos-go/zeroize"
)

// StaticKeyPair is a long-term NAXOS identity key: a secret scalar and its
// derived public point.
type StaticKeyPair struct {
	BitSize int
	Public  curve.Affine

	secret field.Elem
}

// PublicBytes encodes the key pair's public point in the curve's
// little-endian wire format.
func (k *StaticKeyPair) PublicBytes() (x, y []byte) {
	c, _ := curve.Select(k.BitSize)
	return c.Bytes(&k.Public)
}

// SecretBytes encodes the key pair's secret scalar in the curve's
// little-endian wire format, for callers that need to persist it.
func (k *StaticKeyPair) SecretBytes() []byte {
	c, _ := curve.Select(k.BitSize)
	return curve.WordsToBytes(&k.secret, c.Words)[:c.ByteLen()]
}

// Zeroize overwrites the key pair's secret scalar.
func (k *StaticKeyPair) Zeroize() {
	zeroize.Words(k.secret[:])
}

// GenerateStaticKeyPair draws a secret scalar from src by rejection sampling
// against [1, p) and derives its public point as sk*G.
func GenerateStaticKeyPair(bitSize int, src entropy.Source) (*StaticKeyPair, error) {
	c, err := curve.Select(bitSize)
	if err != nil {
		return nil, err
	}

	sk, err := sampleScalar(c, src)
	if err != nil {
		return nil, err
	}

	pub := c.ScalarMult(&sk, &c.G)
	return &StaticKeyPair{BitSize: bitSize, Public: pub, secret: sk}, nil
}

func sampleScalar(c *curve.Curve, src entropy.Source) (field.Elem, error) {
	buf := make([]byte, c.ByteLen())
	for {
		if err := src.Read(buf); err != nil {
			return field.Elem{}, err
		}
		e := curve.BytesToWords(buf, c.Words)
		if field.BitLen(&e, c.Words) == 0 {
			continue
		}
		if field.Cmp(&e, &c.P, c.Words) != -1 {
			continue
		}
		return e, nil
	}
}

// EphemeralState is a single NAXOS exchange's ephemeral material: the raw
// ephemeral secret drawn from the entropy source, the derived exponent h =
// H(esk||sk) mod p, and the ephemeral public point X = h*G (or Y, on the
// responder's side) that gets sent to the peer.
type EphemeralState struct {
	BitSize int
	Public  curve.Affine

	ephemeral []byte
	exponent  field.Elem
}

// PublicBytes encodes the ephemeral public point in the curve's
// little-endian wire format.
func (e *EphemeralState) PublicBytes() (x, y []byte) {
	c, _ := curve.Select(e.BitSize)
	return c.Bytes(&e.Public)
}

// Zeroize overwrites the ephemeral state's secret material.
func (e *EphemeralState) Zeroize() {
	zeroize.Bytes(e.ephemeral)
	zeroize.Words(e.exponent[:])
}

// GenerateEphemeralExchange draws a fresh ephemeral secret from src and
// derives h = H(esk||sk) mod p, retrying with a new esk whenever h comes out
// to zero - the rejection loop in the reference's calculateXY. The returned
// state's Public field is h*G, the value to send to the peer.
func GenerateEphemeralExchange(bitSize int, sk *StaticKeyPair, src entropy.Source, hasher hash.Hasher) (*EphemeralState, error) {
	c, err := curve.Select(bitSize)
	if err != nil {
		return nil, err
	}

	esk := make([]byte, c.ByteLen())
	skBytes := curve.WordsToBytes(&sk.secret, c.Words)[:c.ByteLen()]

	for {
		if err := src.Read(esk); err != nil {
			return nil, err
		}

		h, err := hashToExponent(c, hasher, esk, skBytes)
		if err != nil {
			return nil, err
		}
		if field.BitLen(&h, c.Words) == 0 {
			continue
		}

		pub := c.ScalarMult(&h, &c.G)
		return &EphemeralState{
			BitSize:   bitSize,
			Public:    pub,
			ephemeral: append([]byte(nil), esk...),
			exponent:  h,
		}, nil
	}
}

// hashToExponent computes H(esk||sk) mod p via a single conditional
// subtraction, the same reduction hashAndMod in the reference performs: the
// hash digest's bit length is chosen so the resulting integer always falls
// in [0, 2p), so one subtract-if->=p pass is always enough to reduce it (no
// general-purpose modular reduction loop is needed).
func hashToExponent(c *curve.Curve, hasher hash.Hasher, esk, sk []byte) (field.Elem, error) {
	msg := append(append([]byte(nil), esk...), sk...)
	digest, err := hasher.HashToScalar(c.BitSize, msg)
	if err != nil {
		return field.Elem{}, err
	}

	h := curve.BytesToWords(digest, c.Words)
	if field.Cmp(&h, &c.P, c.Words) != -1 {
		var reduced field.Elem
		field.SubMod(&reduced, &h, &c.P, &c.P, c.Words)
		return reduced, nil
	}
	return h, nil
}
