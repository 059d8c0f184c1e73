package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/nlcg/internal/vector"
)

// New returns the strategy identified by kind.
//
// Runtime selection requires the union of every strategy's capabilities:
// G must support dot, sub and norm, and P must support a dot product with G.
// Callers whose types only support a subset should construct the concrete
// strategy directly.
func New[G DotSubNormer[G, F], P vector.Dotter[G, F], F Float](kind Kind) (BetaUpdate[G, P, F], error) {
	switch kind {
	case KindFletcherReeves:
		return NewFletcherReeves[G, P, F](), nil
	case KindPolakRibiere:
		return NewPolakRibiere[G, P, F](), nil
	case KindPolakRibierePlus:
		return NewPolakRibierePlus[G, P, F](), nil
	case KindHestenesStiefel:
		return NewHestenesStiefel[G, P, F](), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "kind %d", int(kind))
	}
}

// NewByName parses name with ParseKind and returns the matching strategy.
func NewByName[G DotSubNormer[G, F], P vector.Dotter[G, F], F Float](name string) (BetaUpdate[G, P, F], error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return New[G, P, F](kind)
}
