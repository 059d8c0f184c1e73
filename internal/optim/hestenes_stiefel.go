package optim

import "github.com/born-ml/nlcg/internal/vector"

// HestenesStiefel implements the Hestenes-Stiefel (HS) beta update:
//
//	y = ∇f_{k+1} − ∇f_k
//	β = (∇f_{k+1}·y) / (y·p_k)
//
// The denominator is formed as p_k·y, so the direction type only needs a
// dot product against the gradient type. When p_k is nearly orthogonal to
// the gradient change the denominator approaches zero and β blows up.
type HestenesStiefel[G DotSubber[G, F], P vector.Dotter[G, F], F Float] struct{}

// NewHestenesStiefel creates a Hestenes-Stiefel strategy.
func NewHestenesStiefel[G DotSubber[G, F], P vector.Dotter[G, F], F Float]() HestenesStiefel[G, P, F] {
	return HestenesStiefel[G, P, F]{}
}

// Update returns the Hestenes-Stiefel beta.
func (HestenesStiefel[G, P, F]) Update(gradPrev, gradNew G, dirPrev P) F {
	y := gradNew.Sub(gradPrev)
	return gradNew.Dot(y) / dirPrev.Dot(y)
}

// Kind returns KindHestenesStiefel.
func (HestenesStiefel[G, P, F]) Kind() Kind {
	return KindHestenesStiefel
}

// MarshalText encodes the strategy as its type tag.
func (HestenesStiefel[G, P, F]) MarshalText() ([]byte, error) {
	return KindHestenesStiefel.MarshalText()
}

// UnmarshalText accepts only the Hestenes-Stiefel tag.
func (*HestenesStiefel[G, P, F]) UnmarshalText(text []byte) error {
	return expectKind(KindHestenesStiefel, text)
}
