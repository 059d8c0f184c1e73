// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/sirupsen/logrus"

	"github.com/born-ml/nlcg/internal/optim"
	"github.com/born-ml/nlcg/vector"
)

// BetaUpdate computes β from the previous gradient, the new gradient and the
// previous search direction.
type BetaUpdate[G, P any, F vector.Float] = optim.BetaUpdate[G, P, F]

// DotSubber is satisfied by gradients supporting Dot and Sub.
type DotSubber[G any, F vector.Float] = optim.DotSubber[G, F]

// DotSubNormer is satisfied by gradients supporting Dot, Sub and Norm.
type DotSubNormer[G any, F vector.Float] = optim.DotSubNormer[G, F]

// Kinds

// Kind identifies a beta update strategy.
type Kind = optim.Kind

// Strategy kinds.
const (
	KindUnknown          = optim.KindUnknown
	KindFletcherReeves   = optim.KindFletcherReeves
	KindPolakRibiere     = optim.KindPolakRibiere
	KindPolakRibierePlus = optim.KindPolakRibierePlus
	KindHestenesStiefel  = optim.KindHestenesStiefel
)

// ErrUnknownKind is returned for names that match no strategy.
var ErrUnknownKind = optim.ErrUnknownKind

// Kinds returns every known strategy kind.
func Kinds() []Kind {
	return optim.Kinds()
}

// ParseKind parses a canonical name or alias such as "hs" or "PR+".
func ParseKind(s string) (Kind, error) {
	return optim.ParseKind(s)
}

// Strategies

// FletcherReeves computes β = ‖∇f_{k+1}‖² / ‖∇f_k‖².
type FletcherReeves[G vector.Dotter[G, F], P any, F vector.Float] = optim.FletcherReeves[G, P, F]

// NewFletcherReeves creates a Fletcher-Reeves strategy.
func NewFletcherReeves[G vector.Dotter[G, F], P any, F vector.Float]() FletcherReeves[G, P, F] {
	return optim.NewFletcherReeves[G, P, F]()
}

// PolakRibiere computes β = ∇f_{k+1}ᵀ(∇f_{k+1} - ∇f_k) / ‖∇f_k‖².
type PolakRibiere[G DotSubNormer[G, F], P any, F vector.Float] = optim.PolakRibiere[G, P, F]

// NewPolakRibiere creates a Polak-Ribière strategy.
func NewPolakRibiere[G DotSubNormer[G, F], P any, F vector.Float]() PolakRibiere[G, P, F] {
	return optim.NewPolakRibiere[G, P, F]()
}

// PolakRibierePlus clamps the Polak-Ribière β at zero.
type PolakRibierePlus[G DotSubNormer[G, F], P any, F vector.Float] = optim.PolakRibierePlus[G, P, F]

// NewPolakRibierePlus creates a Polak-Ribière-Plus strategy.
func NewPolakRibierePlus[G DotSubNormer[G, F], P any, F vector.Float]() PolakRibierePlus[G, P, F] {
	return optim.NewPolakRibierePlus[G, P, F]()
}

// HestenesStiefel computes β = ∇f_{k+1}ᵀy / p_kᵀy with y = ∇f_{k+1} - ∇f_k.
type HestenesStiefel[G DotSubber[G, F], P vector.Dotter[G, F], F vector.Float] = optim.HestenesStiefel[G, P, F]

// NewHestenesStiefel creates a Hestenes-Stiefel strategy.
func NewHestenesStiefel[G DotSubber[G, F], P vector.Dotter[G, F], F vector.Float]() HestenesStiefel[G, P, F] {
	return optim.NewHestenesStiefel[G, P, F]()
}

// Selection

// New returns the strategy identified by kind.
func New[G DotSubNormer[G, F], P vector.Dotter[G, F], F vector.Float](kind Kind) (BetaUpdate[G, P, F], error) {
	return optim.New[G, P, F](kind)
}

// NewByName returns the strategy identified by a name or alias.
func NewByName[G DotSubNormer[G, F], P vector.Dotter[G, F], F vector.Float](name string) (BetaUpdate[G, P, F], error) {
	return optim.NewByName[G, P, F](name)
}

// Evaluation

// Compute evaluates u, returning dimension mismatches as errors instead of
// panicking.
func Compute[G, P any, F vector.Float](u BetaUpdate[G, P, F], gradPrev, gradNew G, dirPrev P) (F, error) {
	return optim.Compute(u, gradPrev, gradNew, dirPrev)
}

// Finite reports whether beta is neither infinite nor NaN.
func Finite[F vector.Float](beta F) bool {
	return optim.Finite(beta)
}

// ShouldRestart reports whether the next direction should be steepest
// descent: beta is non-finite or not positive.
func ShouldRestart[F vector.Float](beta F) bool {
	return optim.ShouldRestart(beta)
}

// WithLogger wraps u so that every update is logged to log.
func WithLogger[G, P any, F vector.Float](u BetaUpdate[G, P, F], log *logrus.Entry) BetaUpdate[G, P, F] {
	return optim.WithLogger(u, log)
}
