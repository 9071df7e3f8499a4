package naxos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nax-crypto/naxos-go/curve"
	"github.com/nax-crypto/naxos-go/hash"
	"github.com/nax-crypto/naxos-go/naxos"
)

// fixedSource replays a fixed sequence of byte slices, one per Read call,
// cycling once exhausted - deterministic ephemeral material for tests that
// need reproducible transcripts without depending on crypto/rand.
type fixedSource struct {
	values [][]byte
	i      int
}

func (s *fixedSource) Read(buf []byte) error {
	v := s.values[s.i%len(s.values)]
	s.i++
	copy(buf, v)
	for i := len(v); i < len(buf); i++ {
		buf[i] = byte(i)
	}
	return nil
}

func fill(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}

func TestSessionKeyAgreement(t *testing.T) {
	for _, bitSize := range []int{192, 224, 256, 384, 521} {
		c, err := curve.Select(bitSize)
		require.NoError(t, err)
		h := hash.SHA3{}

		// Keep only the low bit of the top byte so the repeated value is a
		// valid scalar below p on every curve, P-521 included.
		valA := fill(c.ByteLen(), 0x11)
		valB := fill(c.ByteLen(), 0x22)
		valA[len(valA)-1] &= 1
		valB[len(valB)-1] &= 1
		srcA := &fixedSource{values: [][]byte{valA}}
		srcB := &fixedSource{values: [][]byte{valB}}

		staticA, err := naxos.GenerateStaticKeyPair(bitSize, srcA)
		require.NoError(t, err)
		staticB, err := naxos.GenerateStaticKeyPair(bitSize, srcB)
		require.NoError(t, err)

		ephA, err := naxos.GenerateEphemeralExchange(bitSize, staticA, srcA, h)
		require.NoError(t, err)
		ephB, err := naxos.GenerateEphemeralExchange(bitSize, staticB, srcB, h)
		require.NoError(t, err)

		pkAx, pkAy := staticA.PublicBytes()
		pkBx, pkBy := staticB.PublicBytes()
		xx, xy := ephA.PublicBytes()
		yx, yy := ephB.PublicBytes()

		idA := []byte("alice")
		idB := []byte("bob")

		kA, err := naxos.DeriveSessionKeyInitiator(staticA, ephA, pkBx, pkBy, yx, yy, idA, idB, h)
		require.NoError(t, err)

		kB, err := naxos.DeriveSessionKeyResponder(staticB, ephB, pkAx, pkAy, xx, xy, idA, idB, h)
		require.NoError(t, err)

		require.Equal(t, kA, kB, "bit size %d: initiator and responder must agree on the session key", bitSize)
		require.NotEmpty(t, kA)
	}
}

func TestSessionKeyLengthP521(t *testing.T) {
	bitSize := 521
	c, err := curve.Select(bitSize)
	require.NoError(t, err)
	h := hash.SHA3{}

	// Keep only the low bit of the top byte so the repeated value is a valid
	// P-521 scalar below p.
	valA := fill(c.ByteLen(), 0x33)
	valB := fill(c.ByteLen(), 0x44)
	valA[len(valA)-1] &= 1
	valB[len(valB)-1] &= 1
	srcA := &fixedSource{values: [][]byte{valA}}
	srcB := &fixedSource{values: [][]byte{valB}}

	staticA, err := naxos.GenerateStaticKeyPair(bitSize, srcA)
	require.NoError(t, err)
	staticB, err := naxos.GenerateStaticKeyPair(bitSize, srcB)
	require.NoError(t, err)
	ephA, err := naxos.GenerateEphemeralExchange(bitSize, staticA, srcA, h)
	require.NoError(t, err)
	ephB, err := naxos.GenerateEphemeralExchange(bitSize, staticB, srcB, h)
	require.NoError(t, err)

	pkBx, pkBy := staticB.PublicBytes()
	yx, yy := ephB.PublicBytes()

	kA, err := naxos.DeriveSessionKeyInitiator(staticA, ephA, pkBx, pkBy, yx, yy, []byte("a"), []byte("b"), h)
	require.NoError(t, err)
	require.Len(t, kA, 64)
}

func TestDeriveSessionKeyRejectsOffCurvePeerStatic(t *testing.T) {
	bitSize := 256
	c, err := curve.Select(bitSize)
	require.NoError(t, err)
	h := hash.SHA3{}

	src := &fixedSource{values: [][]byte{fill(c.ByteLen(), 0x55)}}
	static, err := naxos.GenerateStaticKeyPair(bitSize, src)
	require.NoError(t, err)
	eph, err := naxos.GenerateEphemeralExchange(bitSize, static, src, h)
	require.NoError(t, err)

	yx, yy := eph.PublicBytes()

	// A coordinate pair that is reduced mod p but off the curve.
	offX := curve.WordsToBytes(&c.G.X, c.Words)
	offY := curve.WordsToBytes(&c.G.Y, c.Words)
	offY[0] ^= 0x01

	_, err = naxos.DeriveSessionKeyInitiator(static, eph, offX, offY, yx, yy, []byte("a"), []byte("b"), h)
	require.ErrorIs(t, err, naxos.ErrPeerStaticOffCurve)

	var pe *naxos.ProtocolError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, -2, pe.Code())
}

func TestDeriveSessionKeyRejectsUnreducedPeerEphemeral(t *testing.T) {
	bitSize := 256
	c, err := curve.Select(bitSize)
	require.NoError(t, err)
	h := hash.SHA3{}

	src := &fixedSource{values: [][]byte{fill(c.ByteLen(), 0x66)}}
	static, err := naxos.GenerateStaticKeyPair(bitSize, src)
	require.NoError(t, err)
	eph, err := naxos.GenerateEphemeralExchange(bitSize, static, src, h)
	require.NoError(t, err)

	pkx, pky := static.PublicBytes()

	pBytes := curve.WordsToBytes(&c.P, c.Words)
	gy := curve.WordsToBytes(&c.G.Y, c.Words)

	_, err = naxos.DeriveSessionKeyInitiator(static, eph, pkx, pky, pBytes, gy, []byte("a"), []byte("b"), h)
	require.ErrorIs(t, err, naxos.ErrPeerEphemeralNotReduced)

	var pe *naxos.ProtocolError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, -3, pe.Code())
}

// zeroHasher always produces an all-zero HashToScalar output, forcing the
// ephemeral-exponent rejection loop to keep drawing new ephemeral secrets -
// the zero-h scenario the reference's own generator would loop forever on
// without an entropy refresh.
type zeroHasher struct {
	calls  int
	zeroed int
}

func (z *zeroHasher) HashToScalar(bitSize int, input []byte) ([]byte, error) {
	z.calls++
	n := (bitSize + 7) / 8
	if z.calls <= z.zeroed {
		return make([]byte, n), nil
	}
	out := make([]byte, n)
	out[0] = 1
	return out, nil
}

func (z *zeroHasher) SessionKey(bitSize int, input []byte) ([]byte, error) {
	return hash.SHA3{}.SessionKey(bitSize, input)
}

func TestGenerateEphemeralExchangeRetriesOnZeroExponent(t *testing.T) {
	bitSize := 224
	c, err := curve.Select(bitSize)
	require.NoError(t, err)

	src := &fixedSource{values: [][]byte{fill(c.ByteLen(), 0x77)}}
	static, err := naxos.GenerateStaticKeyPair(bitSize, src)
	require.NoError(t, err)

	h := &zeroHasher{zeroed: 2}
	eph, err := naxos.GenerateEphemeralExchange(bitSize, static, src, h)
	require.NoError(t, err)
	require.Equal(t, 3, h.calls, "generator must retry until a nonzero exponent is produced")
	require.True(t, c.OnCurve(&eph.Public))
}

func TestZeroizeClearsSecretMaterial(t *testing.T) {
	bitSize := 256
	c, err := curve.Select(bitSize)
	require.NoError(t, err)
	h := hash.SHA3{}

	src := &fixedSource{values: [][]byte{fill(c.ByteLen(), 0x88)}}
	static, err := naxos.GenerateStaticKeyPair(bitSize, src)
	require.NoError(t, err)
	eph, err := naxos.GenerateEphemeralExchange(bitSize, static, src, h)
	require.NoError(t, err)

	eph.Zeroize()
	static.Zeroize()

	require.Equal(t, make([]byte, c.ByteLen()), static.SecretBytes())
	require.True(t, static.Public.X != c.P) // sanity: struct still usable after zeroize
}
