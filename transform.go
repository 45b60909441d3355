package affine

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular indicates a transform whose linear part has a
// determinant of exactly zero and which therefore cannot be inverted.
var ErrSingular = errors.New("singular transform")

// A Transform is a two-dimensional affine coordinate transform. It
// maps the point (px, py) to
//
//	(XX*px + XY*py + X, YX*px + YY*py + Y)
//
// The coefficients XX, XY, YX, and YY form the linear part of the
// transform, governing rotation, scale, and shear; X and Y are the
// translation.
//
// Transforms are immutable: every operation returns a new value and
// never modifies its operands. The zero value maps every point to the
// origin and is singular; use [Identity] for the do-nothing
// transform.
type Transform[T Float] struct {
	XX, XY, X T
	YX, YY, Y T
}

// Identity returns the transform that maps every point to itself.
func Identity[T Float]() Transform[T] {
	return Transform[T]{XX: 1, YY: 1}
}

// New returns a transform with the given coefficients, row by row:
// the x row first, then the y row.
func New[T Float](xx, xy, x, yx, yy, y T) Transform[T] {
	return Transform[T]{xx, xy, x, yx, yy, y}
}

// Convert returns t with its coefficients converted to To element by
// element. Converting a transform to its own coefficient type leaves
// it unchanged.
func Convert[To, From Float](t Transform[From]) Transform[To] {
	return Transform[To]{
		XX: To(t.XX), XY: To(t.XY), X: To(t.X),
		YX: To(t.YX), YY: To(t.YY), Y: To(t.Y),
	}
}

// Widen returns t with its coefficients widened to float64, the wider
// of Go's two floating-point precisions. Combining a float32
// transform with a float64 one always goes through Widen, so the
// result of a mixed-precision combination carries the wider
// precision.
func Widen(t Transform[float32]) Transform[float64] {
	return Convert[float64](t)
}

// Precision reports the bit width of t's coefficient type.
func (t Transform[T]) Precision() Precision {
	return PrecisionOf[T]()
}

// Apply maps p through t.
func (t Transform[T]) Apply(p Point[T]) Point[T] {
	return Point[T]{
		X: t.XX*p.X + t.XY*p.Y + t.X,
		Y: t.YX*p.X + t.YY*p.Y + t.Y,
	}
}

// ApplyXY is like [Transform.Apply] for a bare coordinate pair.
func (t Transform[T]) ApplyXY(px, py T) (qx, qy T) {
	return t.XX*px + t.XY*py + t.X, t.YX*px + t.YY*py + t.Y
}

// TranslateOutput returns a transform u such that u(p) = t(p) + d for
// all points p.
func (t Transform[T]) TranslateOutput(d Point[T]) Transform[T] {
	t.X += d.X
	t.Y += d.Y
	return t
}

// TranslateInput returns a transform u such that u(p) = t(p + d) for
// all points p.
func (t Transform[T]) TranslateInput(d Point[T]) Transform[T] {
	t.X = t.XX*d.X + t.XY*d.Y + t.X
	t.Y = t.YX*d.X + t.YY*d.Y + t.Y
	return t
}

// ScaleOutput returns a transform u such that u(p) = t(p) scaled by
// s.
func (t Transform[T]) ScaleOutput(s T) Transform[T] {
	return Transform[T]{
		XX: t.XX * s, XY: t.XY * s, X: t.X * s,
		YX: t.YX * s, YY: t.YY * s, Y: t.Y * s,
	}
}

// ScaleInput returns a transform u such that u(p) = t(p scaled by s).
// The translation coefficients are unaffected.
func (t Transform[T]) ScaleInput(s T) Transform[T] {
	t.XX *= s
	t.XY *= s
	t.YX *= s
	t.YY *= s
	return t
}

// RotateOutput returns a transform that applies t and then rotates
// the result by theta radians counter-clockwise about the origin.
func (t Transform[T]) RotateOutput(theta T) Transform[T] {
	s, c := sincos(theta)
	return Transform[T]{
		XX: c*t.XX - s*t.YX,
		XY: c*t.XY - s*t.YY,
		X:  c*t.X - s*t.Y,
		YX: c*t.YX + s*t.XX,
		YY: c*t.YY + s*t.XY,
		Y:  c*t.Y + s*t.X,
	}
}

// RotateInput returns a transform that rotates its input by theta
// radians counter-clockwise about the origin and then applies t.
func (t Transform[T]) RotateInput(theta T) Transform[T] {
	s, c := sincos(theta)
	return Transform[T]{
		XX: t.XX*c + t.XY*s,
		XY: t.XY*c - t.XX*s,
		X:  t.X,
		YX: t.YX*c + t.YY*s,
		YY: t.YY*c - t.YX*s,
		Y:  t.Y,
	}
}

// Determinant returns the determinant of t's linear part. The
// translation coefficients do not contribute.
func (t Transform[T]) Determinant() T {
	return t.XX*t.YY - t.XY*t.YX
}

// Jacobian returns the absolute value of t's determinant.
func (t Transform[T]) Jacobian() T {
	return T(math.Abs(float64(t.Determinant())))
}

// Invert returns the reciprocal of t, the transform u for which both
// t(u(p)) and u(t(p)) reproduce p up to floating-point rounding. It
// returns [ErrSingular] if t's determinant is exactly zero. No
// tolerance is applied: a determinant that is merely close to zero
// inverts normally, with the usual loss of accuracy.
func (t Transform[T]) Invert() (Transform[T], error) {
	d := t.Determinant()
	if d == 0 {
		return Transform[T]{}, ErrSingular
	}

	u := Transform[T]{
		XX: t.YY / d, XY: -t.XY / d,
		YX: -t.YX / d, YY: t.XX / d,
	}
	u.X = -u.XX*t.X - u.XY*t.Y
	u.Y = -u.YX*t.X - u.YY*t.Y
	return u, nil
}

// Intercept returns the point that t maps to the origin. It returns
// [ErrSingular] under the same condition as [Transform.Invert].
func (t Transform[T]) Intercept() (Point[T], error) {
	d := t.Determinant()
	if d == 0 {
		return Point[T]{}, ErrSingular
	}

	return Point[T]{
		X: (t.XY*t.Y - t.YY*t.X) / d,
		Y: (t.YX*t.X - t.XX*t.Y) / d,
	}, nil
}

// String returns a diagnostic rendering of t's coefficients and
// precision. The format is not stable and not meant to be parsed.
func (t Transform[T]) String() string {
	return fmt.Sprintf("Transform[%v]{%v %v %v; %v %v %v}",
		t.Precision(), t.XX, t.XY, t.X, t.YX, t.YY, t.Y)
}

func sincos[T Float](theta T) (sin, cos T) {
	s, c := math.Sincos(float64(theta))
	return T(s), T(c)
}
