package vector

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// VecDense adapts a gonum *mat.VecDense to the capability interfaces.
//
// The wrapped vector is treated as read-only; Sub always allocates.
type VecDense struct {
	v *mat.VecDense
}

// NewVecDense creates a gonum-backed vector holding a copy of data.
// gonum does not support zero-length vectors, so data must not be empty.
func NewVecDense(data []float64) (*VecDense, error) {
	if len(data) == 0 {
		return nil, errors.WithStack(mat.ErrZeroLength)
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return &VecDense{v: mat.NewVecDense(len(cp), cp)}, nil
}

// WrapVecDense adapts an existing gonum vector without copying it.
// The caller must not modify v while the wrapper is in use.
func WrapVecDense(v *mat.VecDense) *VecDense {
	return &VecDense{v: v}
}

// Len returns the dimension of the vector.
func (v *VecDense) Len() int {
	if v == nil || v.v == nil {
		return 0
	}
	return v.v.Len()
}

// Raw returns a copy of the underlying gonum vector.
func (v *VecDense) Raw() *mat.VecDense {
	return mat.VecDenseCopyOf(v.v)
}

// Dot returns the inner product of v and other.
func (v *VecDense) Dot(other *VecDense) float64 {
	mustMatch("dot", v.Len(), other.Len())
	return mat.Dot(v.v, other.v)
}

// Sub returns v - other as a new vector.
func (v *VecDense) Sub(other *VecDense) *VecDense {
	mustMatch("sub", v.Len(), other.Len())
	out := mat.NewVecDense(v.v.Len(), nil)
	out.SubVec(v.v, other.v)
	return &VecDense{v: out}
}

// Norm returns the Euclidean norm of v.
func (v *VecDense) Norm() float64 {
	return mat.Norm(v.v, 2)
}
