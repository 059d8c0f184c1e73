// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector provides the vector capabilities used by the nonlinear
// conjugate gradient beta updates, and three providers implementing them.
//
// # Capabilities
//
// A beta update never sees a concrete vector type. It asks only for the
// operations it needs:
//   - Dotter: inner product, Dot(V) F
//   - Subber: element-wise difference, Sub(V) V
//   - Normer: Euclidean norm, Norm() F
//
// Any type with these methods can be used, including types defined outside
// this module.
//
// # Providers
//
//   - Dense: contiguous float32 or float64 storage. Large inner products
//     are reduced in parallel with a fixed chunking, so results do not
//     depend on scheduling.
//   - Sparse: sorted index/value pairs for gradients with few non-zeros.
//   - VecDense: a wrapper around gonum's mat.VecDense.
//
// # Basic Usage
//
//	g := vector.FromSlice([]float64{3, 4})
//	fmt.Println(g.Dot(g))  // 25
//	fmt.Println(g.Norm())  // 5
//
// Operands of different length cause a panic with a *DimensionError.
// Use CheckDims to validate operands up front.
package vector
