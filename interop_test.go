package affine_test

import (
	"testing"

	"deedles.dev/affine"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

func TestAff3(t *testing.T) {
	m := f32.Aff3{1, 2, 3, 4, 5, 6}
	tr := affine.FromAff3(m)
	require.Equal(t, affine.New[float32](1, 2, 3, 4, 5, 6), tr)
	require.Equal(t, m, tr.Aff3())
}

func TestAff3F64(t *testing.T) {
	m := f64.Aff3{1, 2, 3, 4, 5, 6}
	tr := affine.FromAff3F64(m)
	require.Equal(t, affine.New(1.0, 2, 3, 4, 5, 6), tr)
	require.Equal(t, m, tr.Aff3F64())

	// Narrow transforms widen losslessly into the f64 matrix.
	require.Equal(t, m, affine.New[float32](1, 2, 3, 4, 5, 6).Aff3F64())
}
