// Package affine provides a two-dimensional affine coordinate
// transform and a closed algebra of operations over it.
//
// The central type is [Transform], an immutable six-coefficient value
// that maps points via application and combines with other transforms
// via composition, translation, scaling, rotation, inversion, and
// division. All operations are pure functions of their inputs, so
// transforms may be shared freely, including between goroutines,
// without synchronization.
//
// Transforms are generic over their coefficient precision. Operations
// combine transforms of a single precision; to combine a float32
// transform with a float64 one, widen the narrower operand first with
// [Widen] or [Convert]. The result then carries the wider precision.
package affine

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Float is a constraint for the coefficient types that affine types
// and functions can handle. The algebra is only defined over
// floating-point scalars.
type Float interface {
	constraints.Float
}

// Precision identifies the bit width of a transform's coefficient
// type.
type Precision int

const (
	Single Precision = 32
	Double Precision = 64
)

func (p Precision) String() string {
	switch p {
	case Single:
		return "float32"
	case Double:
		return "float64"
	default:
		return "float?"
	}
}

// PrecisionOf returns the precision of the floating-point type T.
func PrecisionOf[T Float]() Precision {
	return Precision(reflect.TypeFor[T]().Bits())
}
