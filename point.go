package affine

import "fmt"

// A Point is a two-dimensional coordinate pair. Points are transient
// values passed into and out of transforms, not owned by them.
type Point[T Float] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Float](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the point p+p2.
func (p Point[T]) Add(p2 Point[T]) Point[T] {
	return Point[T]{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the point p-p2.
func (p Point[T]) Sub(p2 Point[T]) Point[T] {
	return Point[T]{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}
