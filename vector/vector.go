// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vector

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nlcg/internal/parallel"
	"github.com/born-ml/nlcg/internal/vector"
)

// Float is the constraint satisfied by float32 and float64.
type Float = vector.Float

// Capabilities

// Dotter computes the inner product of the receiver with a V.
type Dotter[V any, F Float] = vector.Dotter[V, F]

// Subber computes the element-wise difference of the receiver and a V.
type Subber[V any] = vector.Subber[V]

// Normer computes the Euclidean norm of the receiver.
type Normer[F Float] = vector.Normer[F]

// Lener reports the dimension of a vector.
type Lener = vector.Lener

// Data types

// DataType identifies the scalar type of a vector.
type DataType = vector.DataType

// Supported data types.
const (
	Float32 = vector.Float32
	Float64 = vector.Float64
)

// ParseDataType parses "float32" or "float64".
func ParseDataType(s string) (DataType, bool) {
	return vector.ParseDataType(s)
}

// Errors

// ErrDimensionMismatch is matched by every DimensionError.
var ErrDimensionMismatch = vector.ErrDimensionMismatch

// DimensionError reports operands of incompatible size.
type DimensionError = vector.DimensionError

// CheckDims reports every operand whose dimension differs from the first.
func CheckDims(operands ...any) error {
	return vector.CheckDims(operands...)
}

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite[F Float](x F) bool {
	return vector.IsFinite(x)
}

// Providers

// Dense is a contiguous vector of F.
type Dense[F Float] = vector.Dense[F]

// NewDense creates a zero vector of length n.
func NewDense[F Float](n int) *Dense[F] {
	return vector.NewDense[F](n)
}

// FromSlice creates a vector holding a copy of data.
func FromSlice[F Float](data []F) *Dense[F] {
	return vector.FromSlice(data)
}

// Sparse stores only the non-zero entries of a vector.
type Sparse[F Float] = vector.Sparse[F]

// NewSparse creates a sparse vector of length n.
// Indices may be in any order but must be unique and in [0, n).
func NewSparse[F Float](n int, indices []int, values []F) (*Sparse[F], error) {
	return vector.NewSparse(n, indices, values)
}

// SparseFromDense creates a sparse vector from the non-zeros of data.
func SparseFromDense[F Float](data []F) *Sparse[F] {
	return vector.SparseFromDense(data)
}

// VecDense adapts gonum's mat.VecDense.
type VecDense = vector.VecDense

// NewVecDense creates a gonum-backed vector holding a copy of data.
func NewVecDense(data []float64) (*VecDense, error) {
	return vector.NewVecDense(data)
}

// WrapVecDense wraps v without copying.
func WrapVecDense(v *mat.VecDense) *VecDense {
	return vector.WrapVecDense(v)
}

// Parallelism

// ParallelConfig controls the parallel reduction in Dense.Dot.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns the default parallel configuration.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetParallelConfig replaces the configuration used by Dense.Dot.
func SetParallelConfig(cfg ParallelConfig) {
	vector.SetParallelConfig(cfg)
}
