package affine

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// FromAff3 returns the transform corresponding to the x/image affine
// matrix m. Both use the same row-major layout, with the implicit
// bottom row [0 0 1].
func FromAff3(m f32.Aff3) Transform[float32] {
	return Transform[float32]{
		XX: m[0], XY: m[1], X: m[2],
		YX: m[3], YY: m[4], Y: m[5],
	}
}

// FromAff3F64 is [FromAff3] for the float64 x/image matrix type.
func FromAff3F64(m f64.Aff3) Transform[float64] {
	return Transform[float64]{
		XX: m[0], XY: m[1], X: m[2],
		YX: m[3], YY: m[4], Y: m[5],
	}
}

// Aff3 returns t as an x/image affine matrix, narrowing the
// coefficients to float32 if necessary.
func (t Transform[T]) Aff3() f32.Aff3 {
	return f32.Aff3{
		float32(t.XX), float32(t.XY), float32(t.X),
		float32(t.YX), float32(t.YY), float32(t.Y),
	}
}

// Aff3F64 returns t as a float64 x/image affine matrix.
func (t Transform[T]) Aff3F64() f64.Aff3 {
	return f64.Aff3{
		float64(t.XX), float64(t.XY), float64(t.X),
		float64(t.YX), float64(t.YY), float64(t.Y),
	}
}
