package vector

import "math"

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite[F Float](x F) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
