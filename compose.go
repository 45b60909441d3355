package affine

import "errors"

// ErrMissingOperand indicates a composition with no operands.
var ErrMissingOperand = errors.New("missing operand")

// After returns the composition of t with u: the resulting transform
// applies u first and t second.
func (t Transform[T]) After(u Transform[T]) Transform[T] {
	return Transform[T]{
		XX: t.XX*u.XX + t.XY*u.YX,
		XY: t.XX*u.XY + t.XY*u.YY,
		X:  t.XX*u.X + t.XY*u.Y + t.X,
		YX: t.YX*u.XX + t.YY*u.YX,
		YY: t.YX*u.XY + t.YY*u.YY,
		Y:  t.YX*u.X + t.YY*u.Y + t.Y,
	}
}

// Then returns the composition of t with u: the resulting transform
// applies t first and u second. It is [Transform.After] with the
// operands swapped.
func (t Transform[T]) Then(u Transform[T]) Transform[T] {
	return u.After(t)
}

// Compose folds ts into a single transform that applies the last
// operand first and the first operand last, matching nested function
// application:
//
//	q, _ := Compose(a, b, c)
//	q.Apply(p) == a.Apply(b.Apply(c.Apply(p)))
//
// Composing a single transform returns it unchanged. Composing
// nothing returns [ErrMissingOperand].
func Compose[T Float](ts ...Transform[T]) (Transform[T], error) {
	if len(ts) == 0 {
		return Transform[T]{}, ErrMissingOperand
	}

	r := ts[0]
	for _, t := range ts[1:] {
		r = r.After(t)
	}
	return r, nil
}

// RightDivide solves x.After(b) == a for x: the transform that,
// applied after b, reproduces a. It returns [ErrSingular] if b is
// singular.
func RightDivide[T Float](a, b Transform[T]) (Transform[T], error) {
	inv, err := b.Invert()
	if err != nil {
		return Transform[T]{}, err
	}
	return a.After(inv), nil
}

// LeftDivide solves a.After(x) == b for x: the transform that,
// applied before a, reproduces b. It returns [ErrSingular] if a is
// singular.
func LeftDivide[T Float](a, b Transform[T]) (Transform[T], error) {
	inv, err := a.Invert()
	if err != nil {
		return Transform[T]{}, err
	}
	return inv.After(b), nil
}
