package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/nlcg/internal/vector"
)

// Compute evaluates u and reports dimension mismatches as errors.
//
// Operands implementing vector.Lener are checked before Update runs; a
// *vector.DimensionError raised by a provider during Update is recovered
// and returned as well. Any other panic is re-raised.
//
// Numerical degeneracies are not errors: a non-finite beta is returned
// with a nil error and must be handled by the caller.
func Compute[G, P any, F Float](u BetaUpdate[G, P, F], gradPrev, gradNew G, dirPrev P) (beta F, err error) {
	if dimErr := vector.CheckDims(gradPrev, gradNew, dirPrev); dimErr != nil {
		return 0, errors.Wrap(dimErr, u.Kind().String())
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var de *vector.DimensionError
		if e, ok := r.(error); ok && errors.As(e, &de) {
			beta, err = 0, errors.Wrap(e, u.Kind().String())
			return
		}
		panic(r)
	}()

	return u.Update(gradPrev, gradNew, dirPrev), nil
}

// Finite reports whether beta is usable as is.
func Finite[F Float](beta F) bool {
	return vector.IsFinite(beta)
}

// ShouldRestart reports whether the caller should discard the previous
// direction and take a steepest descent step: beta is non-finite or not
// positive. The decision stays with the caller; strategies never restart
// on their own.
func ShouldRestart[F Float](beta F) bool {
	return !Finite(beta) || beta <= 0
}
