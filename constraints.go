package linkage

import "math"

// Float is the set of floating point types supported as dissimilarity
// values throughout this package. Its type set holds exactly the types
// whose underlying type is float32 or float64, so every T has IEEE 754
// semantics and no other kind of type can satisfy it — the Go
// counterpart of kodama's sealed Float trait.
type Float interface {
	~float32 | ~float64
}

// infinity returns positive infinity for T.
func infinity[T Float]() T {
	return T(math.Inf(1))
}

// maxValue returns the largest finite value representable by T.
func maxValue[T Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math.MaxFloat32)
	default:
		v := math.MaxFloat64
		return T(v)
	}
}

// fsqrt returns the square root of v, computed in float64 and converted
// back to T.
func fsqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// fabs returns the absolute value of v.
func fabs[T Float](v T) T {
	return T(math.Abs(float64(v)))
}

// fromInt converts an int to T.
func fromInt[T Float](v int) T {
	return T(v)
}
