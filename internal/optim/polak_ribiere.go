package optim

// PolakRibiere implements the Polak-Ribière (PR) beta update:
//
//	β = ∇f_{k+1}·(∇f_{k+1} − ∇f_k) / ‖∇f_k‖²
//
// Using the gradient change instead of its magnitude usually converges
// faster than FletcherReeves, at the cost of FR's global convergence
// guarantee. β may be negative.
type PolakRibiere[G DotSubNormer[G, F], P any, F Float] struct{}

// NewPolakRibiere creates a Polak-Ribière strategy.
func NewPolakRibiere[G DotSubNormer[G, F], P any, F Float]() PolakRibiere[G, P, F] {
	return PolakRibiere[G, P, F]{}
}

// Update returns the Polak-Ribière beta. dirPrev is not used.
func (PolakRibiere[G, P, F]) Update(gradPrev, gradNew G, _ P) F {
	return polakRibiere[G, F](gradPrev, gradNew)
}

// Kind returns KindPolakRibiere.
func (PolakRibiere[G, P, F]) Kind() Kind {
	return KindPolakRibiere
}

// MarshalText encodes the strategy as its type tag.
func (PolakRibiere[G, P, F]) MarshalText() ([]byte, error) {
	return KindPolakRibiere.MarshalText()
}

// UnmarshalText accepts only the Polak-Ribière tag.
func (*PolakRibiere[G, P, F]) UnmarshalText(text []byte) error {
	return expectKind(KindPolakRibiere, text)
}

// PolakRibierePlus implements the PR+ beta update:
//
//	β = max(0, PR)
//
// Clamping at zero turns a would-be direction reversal into a restart
// along the steepest descent direction. Every ordered value below zero is
// clamped, -Inf included; -Inf can only come from overflow, since a zero
// previous gradient makes the numerator ‖∇f_{k+1}‖² ≥ 0. NaN is unordered
// and is returned as NaN, so a zero previous gradient stays visible.
type PolakRibierePlus[G DotSubNormer[G, F], P any, F Float] struct{}

// NewPolakRibierePlus creates a Polak-Ribière-Plus strategy.
func NewPolakRibierePlus[G DotSubNormer[G, F], P any, F Float]() PolakRibierePlus[G, P, F] {
	return PolakRibierePlus[G, P, F]{}
}

// Update returns the clamped Polak-Ribière beta. dirPrev is not used.
func (PolakRibierePlus[G, P, F]) Update(gradPrev, gradNew G, _ P) F {
	beta := polakRibiere[G, F](gradPrev, gradNew)
	if beta <= 0 {
		return F(0)
	}
	return beta
}

// Kind returns KindPolakRibierePlus.
func (PolakRibierePlus[G, P, F]) Kind() Kind {
	return KindPolakRibierePlus
}

// MarshalText encodes the strategy as its type tag.
func (PolakRibierePlus[G, P, F]) MarshalText() ([]byte, error) {
	return KindPolakRibierePlus.MarshalText()
}

// UnmarshalText accepts only the Polak-Ribière-Plus tag.
func (*PolakRibierePlus[G, P, F]) UnmarshalText(text []byte) error {
	return expectKind(KindPolakRibierePlus, text)
}

func polakRibiere[G DotSubNormer[G, F], F Float](gradPrev, gradNew G) F {
	norm := gradPrev.Norm()
	return gradNew.Dot(gradNew.Sub(gradPrev)) / (norm * norm)
}
