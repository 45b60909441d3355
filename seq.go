package affine

import (
	"iter"

	"deedles.dev/xiter"
)

// Points returns an iterator that yields each point of seq mapped
// through t.
func (t Transform[T]) Points(seq iter.Seq[Point[T]]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for p := range seq {
			if !yield(t.Apply(p)) {
				return
			}
		}
	}
}

// ApplyAll maps the points of seq through t and inserts the results
// into dst, stopping when either runs out.
func ApplyAll[T Float](dst []Point[T], t Transform[T], seq iter.Seq[Point[T]]) {
	for i, p := range xiter.Enumerate(t.Points(seq)) {
		if i >= len(dst) {
			return
		}
		dst[i] = p
	}
}
