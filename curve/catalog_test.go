package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nax-crypto/naxos-go/curve"
)

func TestSelectKnownBitSizes(t *testing.T) {
	for _, bitSize := range []int{192, 224, 256, 384, 521} {
		c, err := curve.Select(bitSize)
		require.NoError(t, err)
		require.Equal(t, bitSize, c.BitSize)
	}
}

func TestSelectRejectsUnknownBitSize(t *testing.T) {
	_, err := curve.Select(255)
	require.ErrorIs(t, err, curve.ErrUnknownCurve)
}

func TestGeneratorIsOnCurve(t *testing.T) {
	for _, bitSize := range []int{192, 224, 256, 384, 521} {
		c, err := curve.Select(bitSize)
		require.NoError(t, err)
		require.True(t, c.OnCurve(&c.G), "generator for %s must satisfy the curve equation", c.Name)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	for _, bitSize := range []int{192, 224, 256, 384, 521} {
		c, err := curve.Select(bitSize)
		require.NoError(t, err)

		x, y := c.Bytes(&c.G)
		require.Len(t, x, c.ByteLen())
		require.Len(t, y, c.ByteLen())

		got, err := c.AffineFromBytes(x, y)
		require.NoError(t, err)
		require.Equal(t, c.G, got)
	}
}

func TestAffineFromBytesRejectsUnreducedCoordinate(t *testing.T) {
	c, err := curve.Select(256)
	require.NoError(t, err)

	x, _ := c.Bytes(&c.G)
	pBytes := curve.WordsToBytes(&c.P, c.Words)

	_, err = c.AffineFromBytes(pBytes, x)
	require.ErrorIs(t, err, curve.ErrNotReduced)
}
