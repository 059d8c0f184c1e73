// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the beta update strategies of nonlinear conjugate
// gradient methods.
//
// # Overview
//
// Nonlinear CG moves along p_{k+1} = -∇f_{k+1} + β_{k+1} p_k. This package
// computes β from the previous gradient, the new gradient and the previous
// direction:
//   - FletcherReeves:   β = ‖∇f_{k+1}‖² / ‖∇f_k‖²
//   - PolakRibiere:     β = ∇f_{k+1}ᵀ(∇f_{k+1} - ∇f_k) / ‖∇f_k‖²
//   - PolakRibierePlus: β = max(0, PolakRibiere)
//   - HestenesStiefel:  β = ∇f_{k+1}ᵀ(∇f_{k+1} - ∇f_k) / p_kᵀ(∇f_{k+1} - ∇f_k)
//
// Strategies hold no state and are safe for concurrent use. They are
// generic over the gradient type G, the direction type P and the scalar
// type F, and require only the vector capabilities they use.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/nlcg/optim"
//	    "github.com/born-ml/nlcg/vector"
//	)
//
//	type vec = *vector.Dense[float64]
//
//	func main() {
//	    update := optim.NewPolakRibierePlus[vec, vec, float64]()
//
//	    gradPrev := vector.FromSlice([]float64{1, 0})
//	    gradNew := vector.FromSlice([]float64{0, 1})
//	    dirPrev := vector.FromSlice([]float64{-1, 0})
//
//	    beta, err := optim.Compute(update, gradPrev, gradNew, dirPrev)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if optim.ShouldRestart(beta) {
//	        // restart along steepest descent
//	    }
//	}
//
// # Degenerate Input
//
// Zero denominators are not errors. They produce ±Inf or NaN, following
// IEEE 754, and the caller decides whether to restart or abort. Operands
// of different dimension are programming errors: Update panics and Compute
// returns an error wrapping vector.ErrDimensionMismatch.
//
// # Selecting at Runtime
//
// New and NewByName return a strategy from a Kind or a name such as "pr+".
// Kinds marshal to their canonical names, so a strategy can be stored in
// JSON or YAML configuration.
package optim
