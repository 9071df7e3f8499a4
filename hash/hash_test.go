package hash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nax-crypto/naxos-go/hash"
)

func TestHashToScalarOutputLengths(t *testing.T) {
	h := hash.SHA3{}
	cases := map[int]int{192: 24, 224: 28, 256: 32, 384: 48, 521: 66}
	for bitSize, length := range cases {
		out, err := h.HashToScalar(bitSize, []byte("message"))
		require.NoError(t, err)
		require.Len(t, out, length)
	}
}

func TestSessionKeyOutputLengths(t *testing.T) {
	h := hash.SHA3{}
	cases := map[int]int{192: 24, 224: 28, 256: 32, 384: 48, 521: 64}
	for bitSize, length := range cases {
		out, err := h.SessionKey(bitSize, []byte("message"))
		require.NoError(t, err)
		require.Len(t, out, length)
	}
}

func TestHashIsDeterministic(t *testing.T) {
	h := hash.SHA3{}
	a, err := h.HashToScalar(256, []byte("abc"))
	require.NoError(t, err)
	b, err := h.HashToScalar(256, []byte("abc"))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestHashRejectsUnsupportedBitSize(t *testing.T) {
	h := hash.SHA3{}
	_, err := h.HashToScalar(160, []byte("abc"))
	require.ErrorIs(t, err, hash.ErrUnsupportedBitSize)

	_, err = h.SessionKey(160, []byte("abc"))
	require.ErrorIs(t, err, hash.ErrUnsupportedBitSize)
}
