package cmd

import (
	"github.com/pkg/errors"

	"github.com/born-ml/nlcg/internal/config"
	"github.com/born-ml/nlcg/internal/optim"
	"github.com/born-ml/nlcg/internal/serialization"
	"github.com/born-ml/nlcg/internal/vector"
)

// result is the beta of one strategy for one set of inputs.
type result struct {
	Strategy optim.Kind `json:"strategy" yaml:"strategy"`
	Beta     float64    `json:"beta" yaml:"beta"`
	Restart  bool       `json:"restart" yaml:"restart"`
}

// inputs are the raw operands of a beta update as read from flags.
type inputs struct {
	gradPrev, gradNew, dirPrev []float64
}

// betas evaluates every kind on in using the configured provider and dtype.
func (a *app) betas(kinds []optim.Kind, in inputs) ([]result, error) {
	dt, err := a.cfg.DataType()
	if err != nil {
		return nil, err
	}

	switch a.cfg.Provider {
	case config.ProviderGonum:
		gp, err := vector.NewVecDense(in.gradPrev)
		if err != nil {
			return nil, errors.Wrap(err, "grad-prev")
		}
		gn, err := vector.NewVecDense(in.gradNew)
		if err != nil {
			return nil, errors.Wrap(err, "grad-new")
		}
		dp, err := vector.NewVecDense(in.dirPrev)
		if err != nil {
			return nil, errors.Wrap(err, "dir-prev")
		}
		return evaluate[*vector.VecDense, float64](a, kinds, gp, gn, dp)
	case config.ProviderSparse:
		if dt == vector.Float32 {
			return evaluate[*vector.Sparse[float32], float32](a, kinds,
				vector.SparseFromDense(toFloat32(in.gradPrev)),
				vector.SparseFromDense(toFloat32(in.gradNew)),
				vector.SparseFromDense(toFloat32(in.dirPrev)))
		}
		return evaluate[*vector.Sparse[float64], float64](a, kinds,
			vector.SparseFromDense(in.gradPrev),
			vector.SparseFromDense(in.gradNew),
			vector.SparseFromDense(in.dirPrev))
	default:
		if dt == vector.Float32 {
			return evaluate[*vector.Dense[float32], float32](a, kinds,
				vector.FromSlice(toFloat32(in.gradPrev)),
				vector.FromSlice(toFloat32(in.gradNew)),
				vector.FromSlice(toFloat32(in.dirPrev)))
		}
		return evaluate[*vector.Dense[float64], float64](a, kinds,
			vector.FromSlice(in.gradPrev),
			vector.FromSlice(in.gradNew),
			vector.FromSlice(in.dirPrev))
	}
}

func evaluate[G optim.DotSubNormer[G, F], F optim.Float](a *app, kinds []optim.Kind, gradPrev, gradNew, dirPrev G) ([]result, error) {
	results := make([]result, 0, len(kinds))
	for _, kind := range kinds {
		var (
			u   optim.BetaUpdate[G, G, F]
			err error
		)
		if a.checkpoint != nil {
			u, err = serialization.Restore[G, G, F](*a.checkpoint)
		} else {
			u, err = optim.New[G, G, F](kind)
		}
		if err != nil {
			return nil, err
		}
		u = optim.WithLogger(u, a.log.WithField("provider", a.cfg.Provider))
		beta, err := optim.Compute(u, gradPrev, gradNew, dirPrev)
		if err != nil {
			return nil, err
		}
		results = append(results, result{
			Strategy: kind,
			Beta:     float64(beta),
			Restart:  optim.ShouldRestart(beta),
		})
	}
	return results, nil
}

func toFloat32(xs []float64) []float32 {
	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = float32(x)
	}
	return out
}
