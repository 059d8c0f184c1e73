// Package optim implements the beta-update strategies of the nonlinear
// conjugate gradient (NLCG) method.
//
// This package provides:
//   - BetaUpdate interface: common contract of every strategy
//   - FletcherReeves, PolakRibiere, PolakRibierePlus, HestenesStiefel
//   - Kind: serializable tag for selecting a strategy at runtime
//
// Each strategy is generic over the gradient type G, the direction type P
// and the scalar type F, and only asks G and P for the vector capabilities
// its formula uses.
//
// Example usage:
//
//	update := optim.NewPolakRibierePlus[*vector.Dense[float64], *vector.Dense[float64], float64]()
//
//	// Outer NLCG iteration, owned by the caller
//	beta := update.Update(gradPrev, gradNew, dirPrev)
//	if optim.ShouldRestart(beta) {
//	    // steepest descent: dir = -gradNew
//	}
//
// Reference: Jorge Nocedal and Stephen J. Wright (2006). Numerical
// Optimization. Springer. ISBN 0-387-30303-0.
package optim

import "github.com/born-ml/nlcg/internal/vector"

// BetaUpdate is the common interface of all beta-update strategies.
//
// Strategies are stateless: Update is a pure function of its arguments,
// never modifies them and is safe for concurrent use.
//
// A zero denominator is not reported as an error. The result is whatever
// IEEE-754 division yields (±Inf or NaN) and the caller is responsible for
// detecting it, typically by restarting along the steepest descent
// direction (see ShouldRestart).
type BetaUpdate[G, P any, F Float] interface {
	// Update returns beta from ∇f_k (gradPrev), ∇f_{k+1} (gradNew) and
	// the previous search direction p_k (dirPrev).
	Update(gradPrev, gradNew G, dirPrev P) F

	// Kind returns the serializable tag of the strategy.
	Kind() Kind
}

// Float is the constraint on scalar results.
type Float = vector.Float

// DotSubber is the capability set required by HestenesStiefel gradients.
type DotSubber[G any, F Float] interface {
	vector.Dotter[G, F]
	vector.Subber[G]
}

// DotSubNormer is the capability set required by PolakRibiere and
// PolakRibierePlus gradients. A type satisfying it can be used with every
// strategy.
type DotSubNormer[G any, F Float] interface {
	vector.Dotter[G, F]
	vector.Subber[G]
	vector.Normer[F]
}
