package optim

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/born-ml/nlcg/internal/vector"
)

// loggedUpdate decorates a strategy with structured logging.
type loggedUpdate[G, P any, F Float] struct {
	BetaUpdate[G, P, F]
	log *logrus.Entry
}

// WithLogger wraps u so that every beta is logged at debug level and every
// non-finite beta at warn level. The returned value is unchanged.
func WithLogger[G, P any, F Float](u BetaUpdate[G, P, F], log *logrus.Entry) BetaUpdate[G, P, F] {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return loggedUpdate[G, P, F]{
		BetaUpdate: u,
		log:        log.WithField("strategy", u.Kind().String()),
	}
}

// MarshalText encodes the wrapped strategy as its type tag.
func (l loggedUpdate[G, P, F]) MarshalText() ([]byte, error) {
	return l.Kind().MarshalText()
}

// Update delegates to the wrapped strategy and logs the result.
func (l loggedUpdate[G, P, F]) Update(gradPrev, gradNew G, dirPrev P) F {
	beta := l.BetaUpdate.Update(gradPrev, gradNew, dirPrev)
	if !vector.IsFinite(beta) {
		// JSON cannot encode Inf or NaN.
		l.log.WithField("beta", strconv.FormatFloat(float64(beta), 'g', -1, 64)).
			Warn("non-finite beta, caller must restart or abort")
		return beta
	}
	l.log.WithField("beta", float64(beta)).Debug("beta updated")
	return beta
}
