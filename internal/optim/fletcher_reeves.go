package optim

import "github.com/born-ml/nlcg/internal/vector"

// FletcherReeves implements the Fletcher-Reeves (FR) beta update:
//
//	β = (∇f_{k+1}·∇f_{k+1}) / (∇f_k·∇f_k)
//
// It only needs a dot product on gradients. Under a strong Wolfe line
// search FR converges globally, but it can take very small steps near
// degenerate points. β is non-negative for any non-zero ∇f_k.
//
// A zero ∇f_k yields +Inf, or NaN when ∇f_{k+1} is zero as well.
type FletcherReeves[G vector.Dotter[G, F], P any, F Float] struct{}

// NewFletcherReeves creates a Fletcher-Reeves strategy.
func NewFletcherReeves[G vector.Dotter[G, F], P any, F Float]() FletcherReeves[G, P, F] {
	return FletcherReeves[G, P, F]{}
}

// Update returns the Fletcher-Reeves beta. dirPrev is not used.
func (FletcherReeves[G, P, F]) Update(gradPrev, gradNew G, _ P) F {
	return gradNew.Dot(gradNew) / gradPrev.Dot(gradPrev)
}

// Kind returns KindFletcherReeves.
func (FletcherReeves[G, P, F]) Kind() Kind {
	return KindFletcherReeves
}

// MarshalText encodes the strategy as its type tag.
func (FletcherReeves[G, P, F]) MarshalText() ([]byte, error) {
	return KindFletcherReeves.MarshalText()
}

// UnmarshalText accepts only the Fletcher-Reeves tag.
func (*FletcherReeves[G, P, F]) UnmarshalText(text []byte) error {
	return expectKind(KindFletcherReeves, text)
}
