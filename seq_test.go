package affine_test

import (
	"slices"
	"testing"

	"deedles.dev/affine"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	a := affine.New(2.0, 1, 3, -1, 0.5, 4)

	got := slices.Collect(a.Points(slices.Values(testPoints)))
	require.Len(t, got, len(testPoints))
	for i, p := range testPoints {
		require.Equal(t, a.Apply(p), got[i])
	}
}

func TestPointsEarlyStop(t *testing.T) {
	a := affine.New(2.0, 1, 3, -1, 0.5, 4)

	var n int
	for range a.Points(slices.Values(testPoints)) {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestApplyAll(t *testing.T) {
	a := affine.New(2.0, 1, 3, -1, 0.5, 4)

	dst := make([]affine.Point[float64], len(testPoints))
	affine.ApplyAll(dst, a, slices.Values(testPoints))
	for i, p := range testPoints {
		require.Equal(t, a.Apply(p), dst[i])
	}

	// A destination shorter than the stream only gets the prefix.
	short := make([]affine.Point[float64], 2)
	affine.ApplyAll(short, a, slices.Values(testPoints))
	require.Equal(t, a.Apply(testPoints[0]), short[0])
	require.Equal(t, a.Apply(testPoints[1]), short[1])
}
