package vector

import (
	"fmt"
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/nlcg/internal/parallel"
)

var parallelCfg atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	parallelCfg.Store(&cfg)
}

// SetParallelConfig replaces the configuration used by Dense reductions.
//
// It is meant to be called once at startup; vectors read it on every call.
func SetParallelConfig(cfg parallel.Config) {
	parallelCfg.Store(&cfg)
}

// ParallelConfig returns the configuration used by Dense reductions.
func ParallelConfig() parallel.Config {
	return *parallelCfg.Load()
}

// Dense is a contiguous, slice-backed vector.
//
// A Dense is never modified after construction: Sub allocates its result
// and accessors hand out copies.
type Dense[F Float] struct {
	data []F
}

// NewDense creates a zero vector of dimension n.
func NewDense[F Float](n int) *Dense[F] {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative dimension %d", n))
	}
	return &Dense[F]{data: make([]F, n)}
}

// FromSlice creates a vector holding a copy of data.
func FromSlice[F Float](data []F) *Dense[F] {
	cp := make([]F, len(data))
	copy(cp, data)
	return &Dense[F]{data: cp}
}

// Len returns the dimension of the vector.
func (v *Dense[F]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// At returns the i-th component.
func (v *Dense[F]) At(i int) F {
	return v.data[i]
}

// Data returns a copy of the components.
func (v *Dense[F]) Data() []F {
	cp := make([]F, len(v.data))
	copy(cp, v.data)
	return cp
}

// Dot returns the inner product of v and other.
//
// Large vectors are reduced in parallel chunks; see SetParallelConfig.
func (v *Dense[F]) Dot(other *Dense[F]) F {
	mustMatch("dot", v.Len(), other.Len())
	a, b := v.data, other.data
	return parallel.Sum(len(a), func(lo, hi int) F {
		var s F
		for i := lo; i < hi; i++ {
			s += a[i] * b[i]
		}
		return s
	}, ParallelConfig())
}

// Sub returns v - other as a new vector.
//
// float64 vectors use gonum; other types are split across workers like Dot.
func (v *Dense[F]) Sub(other *Dense[F]) *Dense[F] {
	mustMatch("sub", v.Len(), other.Len())
	out := make([]F, len(v.data))
	if a, ok := any(v.data).([]float64); ok {
		floats.SubTo(any(out).([]float64), a, any(other.data).([]float64))
		return &Dense[F]{data: out}
	}
	a, b := v.data, other.data
	parallel.For(len(out), func(i int) {
		out[i] = a[i] - b[i]
	}, ParallelConfig())
	return &Dense[F]{data: out}
}

// Norm returns the Euclidean norm of v.
func (v *Dense[F]) Norm() F {
	if a, ok := any(v.data).([]float64); ok {
		return F(floats.Norm(a, 2))
	}
	return l2norm(v.data)
}

// String returns the components in fmt's slice notation.
func (v *Dense[F]) String() string {
	return fmt.Sprint(v.data)
}

// l2norm computes the Euclidean norm with a running scale so that the
// squares of large finite components do not overflow.
func l2norm[F Float](xs []F) F {
	var scale F
	ssq := F(1)
	for _, x := range xs {
		if x == 0 {
			continue
		}
		ax := x
		if ax < 0 {
			ax = -ax
		}
		if scale < ax {
			r := scale / ax
			ssq = 1 + ssq*r*r
			scale = ax
		} else {
			r := ax / scale
			ssq += r * r
		}
	}
	return scale * F(math.Sqrt(float64(ssq)))
}
