package vector

// Dotter is implemented by vectors that can form an inner product with V.
//
// Dot returns Σ aᵢ·bᵢ and must not modify either operand. Operands of
// different dimension are a contract violation: implementations panic with
// a *DimensionError rather than truncating or padding.
type Dotter[V any, F Float] interface {
	Dot(other V) F
}

// Subber is implemented by vectors supporting elementwise subtraction.
//
// Sub returns a new vector holding receiver - other. Neither operand is
// modified. Mismatched dimensions panic with a *DimensionError.
type Subber[V any] interface {
	Sub(other V) V
}

// Normer is implemented by vectors with a Euclidean magnitude.
//
// Norm is non-negative and finite for every finite input, including the
// zero vector (whose norm is 0).
type Normer[F Float] interface {
	Norm() F
}

// Lener is implemented by vectors that report their dimension.
//
// It is optional; CheckDims uses it to reject mismatched operands before a
// capability method is invoked.
type Lener interface {
	Len() int
}
