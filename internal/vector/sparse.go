package vector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Sparse is a vector storing only explicitly set components as
// (index, value) pairs sorted by index.
type Sparse[F Float] struct {
	n       int
	indices []int
	values  []F
}

// NewSparse creates a sparse vector of dimension n from parallel index and
// value slices. Inputs are copied and sorted; out-of-range or duplicate
// indices are rejected.
func NewSparse[F Float](n int, indices []int, values []F) (*Sparse[F], error) {
	if n < 0 {
		return nil, errors.Errorf("negative dimension %d", n)
	}
	if len(indices) != len(values) {
		return nil, errors.WithStack(&DimensionError{Op: "sparse", Left: len(indices), Right: len(values)})
	}

	order := make([]int, len(indices))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return indices[order[a]] < indices[order[b]] })

	s := &Sparse[F]{
		n:       n,
		indices: make([]int, len(indices)),
		values:  make([]F, len(values)),
	}
	for k, j := range order {
		idx := indices[j]
		if idx < 0 || idx >= n {
			return nil, errors.Errorf("index %d out of range [0, %d)", idx, n)
		}
		if k > 0 && s.indices[k-1] == idx {
			return nil, errors.Errorf("duplicate index %d", idx)
		}
		s.indices[k] = idx
		s.values[k] = values[j]
	}
	return s, nil
}

// SparseFromDense creates a sparse vector holding the non-zero components of data.
func SparseFromDense[F Float](data []F) *Sparse[F] {
	s := &Sparse[F]{n: len(data)}
	for i, x := range data {
		if x != 0 {
			s.indices = append(s.indices, i)
			s.values = append(s.values, x)
		}
	}
	return s
}

// Len returns the dimension of the vector.
func (s *Sparse[F]) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// NNZ returns the number of stored components.
func (s *Sparse[F]) NNZ() int {
	return len(s.indices)
}

// Dense returns the vector in dense form.
func (s *Sparse[F]) Dense() *Dense[F] {
	out := NewDense[F](s.n)
	for k, idx := range s.indices {
		out.data[idx] = s.values[k]
	}
	return out
}

// Dot returns the inner product of s and other.
func (s *Sparse[F]) Dot(other *Sparse[F]) F {
	mustMatch("dot", s.Len(), other.Len())
	var sum F
	i, j := 0, 0
	for i < len(s.indices) && j < len(other.indices) {
		switch a, b := s.indices[i], other.indices[j]; {
		case a == b:
			sum += s.values[i] * other.values[j]
			i++
			j++
		case a < b:
			i++
		default:
			j++
		}
	}
	return sum
}

// Sub returns s - other as a new sparse vector.
func (s *Sparse[F]) Sub(other *Sparse[F]) *Sparse[F] {
	mustMatch("sub", s.Len(), other.Len())
	out := &Sparse[F]{
		n:       s.n,
		indices: make([]int, 0, len(s.indices)+len(other.indices)),
		values:  make([]F, 0, len(s.values)+len(other.values)),
	}
	i, j := 0, 0
	for i < len(s.indices) || j < len(other.indices) {
		switch {
		case j == len(other.indices) || (i < len(s.indices) && s.indices[i] < other.indices[j]):
			out.indices = append(out.indices, s.indices[i])
			out.values = append(out.values, s.values[i])
			i++
		case i == len(s.indices) || other.indices[j] < s.indices[i]:
			out.indices = append(out.indices, other.indices[j])
			out.values = append(out.values, -other.values[j])
			j++
		default:
			out.indices = append(out.indices, s.indices[i])
			out.values = append(out.values, s.values[i]-other.values[j])
			i++
			j++
		}
	}
	return out
}

// Norm returns the Euclidean norm of s.
func (s *Sparse[F]) Norm() F {
	return l2norm(s.values)
}

// String lists the stored components as index:value pairs.
func (s *Sparse[F]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sparse(%d)[", s.n)
	for k, idx := range s.indices {
		if k > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%v", idx, s.values[k])
	}
	b.WriteByte(']')
	return b.String()
}
