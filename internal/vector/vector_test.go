package vector

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/nlcg/internal/parallel"
)

// Compile-time checks that the providers satisfy the capabilities.
var (
	_ Dotter[*Dense[float64], float64]  = (*Dense[float64])(nil)
	_ Subber[*Dense[float32]]           = (*Dense[float32])(nil)
	_ Normer[float32]                   = (*Dense[float32])(nil)
	_ Dotter[*Sparse[float64], float64] = (*Sparse[float64])(nil)
	_ Subber[*Sparse[float64]]          = (*Sparse[float64])(nil)
	_ Normer[float64]                   = (*Sparse[float64])(nil)
	_ Dotter[*VecDense, float64]        = (*VecDense)(nil)
	_ Subber[*VecDense]                 = (*VecDense)(nil)
	_ Normer[float64]                   = (*VecDense)(nil)
	_ Lener                             = (*Dense[float64])(nil)
	_ Lener                             = (*Sparse[float64])(nil)
	_ Lener                             = (*VecDense)(nil)
)

func TestDense_Dot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, -4},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSlice(tt.a).Dot(FromSlice(tt.b))
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestDense_DotFloat32(t *testing.T) {
	a := FromSlice([]float32{1, 2, 3})
	b := FromSlice([]float32{4, 5, 6})
	assert.Equal(t, float32(32), a.Dot(b))
}

func TestDense_DotParallelMatchesFloats(t *testing.T) {
	prev := ParallelConfig()
	defer SetParallelConfig(prev)
	SetParallelConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16})

	n := 1000
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = float64(i%13) - 6
		b[i] = float64(i%7) + 0.5
	}

	got := FromSlice(a).Dot(FromSlice(b))
	assert.InDelta(t, floats.Dot(a, b), got, 1e-9)

	// Fixed chunking keeps repeated reductions bit-identical.
	for i := 0; i < 10; i++ {
		assert.Equal(t, got, FromSlice(a).Dot(FromSlice(b)))
	}
}

func TestDense_Sub(t *testing.T) {
	a := FromSlice([]float64{0, 1})
	b := FromSlice([]float64{1, 0})

	d := a.Sub(b)
	assert.Equal(t, []float64{-1, 1}, d.Data())

	// Operands are untouched.
	assert.Equal(t, []float64{0, 1}, a.Data())
	assert.Equal(t, []float64{1, 0}, b.Data())

	d32 := FromSlice([]float32{3, 3}).Sub(FromSlice([]float32{1, 2}))
	assert.Equal(t, []float32{2, 1}, d32.Data())
}

func TestDense_SubParallel(t *testing.T) {
	prev := ParallelConfig()
	defer SetParallelConfig(prev)
	SetParallelConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16})

	n := 1000
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = float32(i)
		b[i] = float32(2 * i)
	}

	d := FromSlice(a).Sub(FromSlice(b))
	for i := 0; i < n; i++ {
		require.Equal(t, float32(-i), d.At(i), "component %d", i)
	}
}

func TestDense_Norm(t *testing.T) {
	assert.InDelta(t, 5.0, FromSlice([]float64{3, 4}).Norm(), 1e-15)
	assert.Equal(t, float32(5), FromSlice([]float32{3, 4}).Norm())
	assert.Equal(t, 0.0, NewDense[float64](3).Norm())
	assert.Equal(t, float32(0), NewDense[float32](3).Norm())
	assert.Equal(t, 0.0, NewDense[float64](0).Norm())
}

func TestDense_NormNoOverflow(t *testing.T) {
	big := float32(1e30)
	got := FromSlice([]float32{big, big}).Norm()
	assert.True(t, IsFinite(got))
	assert.InEpsilon(t, float64(big)*math.Sqrt2, float64(got), 1e-6)
}

func TestDense_FromSliceCopies(t *testing.T) {
	data := []float64{1, 2}
	v := FromSlice(data)
	data[0] = 100
	assert.Equal(t, 1.0, v.At(0))

	out := v.Data()
	out[1] = 100
	assert.Equal(t, 2.0, v.At(1))
}

func TestDense_DimensionMismatchPanics(t *testing.T) {
	a := FromSlice([]float64{1, 2})
	b := FromSlice([]float64{1, 2, 3})

	for name, fn := range map[string]func(){
		"dot": func() { a.Dot(b) },
		"sub": func() { a.Sub(b) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, ErrDimensionMismatch)

				var de *DimensionError
				require.ErrorAs(t, err, &de)
				assert.Equal(t, name, de.Op)
				assert.Equal(t, 2, de.Left)
				assert.Equal(t, 3, de.Right)
			}()
			fn()
		})
	}
}

func TestSparse(t *testing.T) {
	a, err := NewSparse(5, []int{4, 0}, []float64{2, 1})
	require.NoError(t, err)
	b, err := NewSparse(5, []int{0, 2, 4}, []float64{3, 7, -1})
	require.NoError(t, err)

	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 2, a.NNZ())
	assert.Equal(t, []float64{1, 0, 0, 0, 2}, a.Dense().Data())

	// 1*3 + 2*(-1)
	assert.Equal(t, 1.0, a.Dot(b))
	assert.Equal(t, a.Dense().Dot(b.Dense()), a.Dot(b))

	d := a.Sub(b)
	assert.Equal(t, []float64{-2, 0, -7, 0, 3}, d.Dense().Data())

	assert.InDelta(t, math.Sqrt(5), a.Norm(), 1e-15)
	assert.Equal(t, "sparse(5)[0:1 4:2]", a.String())
}

func TestSparse_Invalid(t *testing.T) {
	tests := map[string]struct {
		n       int
		indices []int
		values  []float64
	}{
		"negative dimension": {n: -1},
		"length mismatch":    {n: 3, indices: []int{0, 1}, values: []float64{1}},
		"out of range":       {n: 3, indices: []int{3}, values: []float64{1}},
		"negative index":     {n: 3, indices: []int{-1}, values: []float64{1}},
		"duplicate":          {n: 3, indices: []int{1, 1}, values: []float64{1, 2}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewSparse(tc.n, tc.indices, tc.values)
			assert.Error(t, err)
		})
	}
}

func TestSparse_DimensionMismatchPanics(t *testing.T) {
	a := SparseFromDense([]float64{1, 0})
	b := SparseFromDense([]float64{1, 0, 0})
	assert.Panics(t, func() { a.Dot(b) })
	assert.Panics(t, func() { a.Sub(b) })
}

func TestVecDense(t *testing.T) {
	a, err := NewVecDense([]float64{0, 1})
	require.NoError(t, err)
	b, err := NewVecDense([]float64{1, 0})
	require.NoError(t, err)

	assert.Equal(t, 0.0, a.Dot(b))
	assert.Equal(t, 1.0, a.Dot(a))
	assert.Equal(t, []float64{-1, 1}, a.Sub(b).Raw().RawVector().Data)
	assert.Equal(t, 1.0, b.Norm())

	_, err = NewVecDense(nil)
	assert.Error(t, err)

	c, err := NewVecDense([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Panics(t, func() { a.Dot(c) })
}

func TestCheckDims(t *testing.T) {
	a := FromSlice([]float64{1, 2})
	b := FromSlice([]float64{3, 4})
	c := FromSlice([]float64{1, 2, 3})

	assert.NoError(t, CheckDims(a, b, a))
	assert.NoError(t, CheckDims())
	assert.NoError(t, CheckDims(a, "not a vector", b))

	err := CheckDims(a, c, b, c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Contains(t, err.Error(), "operand 1")
	assert.Contains(t, err.Error(), "operand 3")
	assert.NotContains(t, err.Error(), "operand 2")

	// A nil operand has no dimension to compare.
	assert.NoError(t, CheckDims(a, b, (*Dense[float64])(nil)))
	assert.NoError(t, CheckDims((*Sparse[float64])(nil), a, b))
	assert.Error(t, CheckDims((*Dense[float64])(nil), a, c))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1.0))
	assert.True(t, IsFinite(float32(-3)))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(float32(math.Inf(-1))))
	assert.False(t, IsFinite(math.NaN()))
}

type (
	namedFloat32 float32
	namedFloat64 float64
)

func TestDataType(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, Float32, DataTypeOf[namedFloat32]())
	assert.Equal(t, Float64, DataTypeOf[namedFloat64]())

	for _, dt := range []DataType{Float32, Float64} {
		parsed, ok := ParseDataType(dt.String())
		assert.True(t, ok)
		assert.Equal(t, dt, parsed)
	}
	_, ok := ParseDataType("int8")
	assert.False(t, ok)
	assert.Equal(t, "unknown", DataType(42).String())
}
