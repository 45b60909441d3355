//go:build go1.24

package affine_test

import (
	"testing"

	"deedles.dev/affine"
)

var (
	sinkPoint     affine.Point[float64]
	sinkTransform affine.Transform[float64]
)

func BenchmarkApply(b *testing.B) {
	a := affine.New(2.0, 1, 3, -1, 0.5, 4)
	p := affine.Pt(1.5, -2.5)
	for b.Loop() {
		sinkPoint = a.Apply(p)
	}
}

func BenchmarkCompose(b *testing.B) {
	u := affine.New(0.5, 0, -2, 0.25, 3, 1)
	v := affine.New(2.0, 1, 3, -1, 0.5, 4)
	for b.Loop() {
		sinkTransform = u.After(v)
	}
}
