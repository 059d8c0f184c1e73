package cmd

import (
	"encoding/csv"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/born-ml/nlcg/internal/optim"
)

// sweepOptions describes a sweep of the new gradient around the unit circle.
type sweepOptions struct {
	steps  int
	radius float64
	clip   float64
	out    string
}

// sample is the beta of every strategy at one angle.
type sample struct {
	degrees float64
	results []result
}

func sweepCmd(a *app) *cobra.Command {
	opts := sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Plots beta of every strategy as the new gradient rotates",
		Long: `Rotates the new gradient through a full turn while the previous gradient is
(1, 0) and the previous direction is its steepest descent (-1, 0), then plots
beta of every strategy against the angle. Non-finite values and values beyond
--clip are left out of the plot. With --out - the samples are written to
stdout as CSV instead.`,
		Example: "nlcg sweep --out beta.png --steps 720 --radius 0.5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			samples, err := a.sweep(opts)
			if err != nil {
				return err
			}
			if opts.out == "-" {
				return writeCSV(cmd, samples)
			}
			return a.plotSweep(samples, opts)
		},
	}
	cmd.Flags().IntVar(&opts.steps, "steps", 360, "number of angles to sample")
	cmd.Flags().Float64Var(&opts.radius, "radius", 1, "norm of the new gradient")
	cmd.Flags().Float64Var(&opts.clip, "clip", 10, "leave out points with |beta| above this value")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "beta.png", "output image (.png, .svg, .pdf) or - for CSV")
	return cmd
}

func (a *app) sweep(opts sweepOptions) ([]sample, error) {
	if opts.steps < 1 {
		return nil, errors.Errorf("steps must be positive, got %d", opts.steps)
	}
	if opts.clip <= 0 {
		return nil, errors.Errorf("clip must be positive, got %g", opts.clip)
	}

	in := inputs{
		gradPrev: []float64{1, 0},
		dirPrev:  []float64{-1, 0},
	}
	samples := make([]sample, 0, opts.steps)
	for i := 0; i < opts.steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(opts.steps)
		in.gradNew = []float64{opts.radius * math.Cos(theta), opts.radius * math.Sin(theta)}
		results, err := a.betas(optim.Kinds(), in)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample{degrees: theta * 180 / math.Pi, results: results})
	}
	return samples, nil
}

func (a *app) plotSweep(samples []sample, opts sweepOptions) error {
	p := plot.New()
	p.Title.Text = "Nonlinear CG beta"
	p.X.Label.Text = "angle of new gradient (degrees)"
	p.Y.Label.Text = "beta"
	p.X.Min, p.X.Max = 0, 360
	p.Y.Min, p.Y.Max = -opts.clip, opts.clip
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	kinds := optim.Kinds()
	lines := make([]any, 0, 2*len(kinds))
	for i, kind := range kinds {
		xys := make(plotter.XYs, 0, len(samples))
		skipped := 0
		for _, s := range samples {
			beta := s.results[i].Beta
			if math.IsNaN(beta) || math.Abs(beta) > opts.clip {
				skipped++
				continue
			}
			xys = append(xys, plotter.XY{X: s.degrees, Y: beta})
		}
		if skipped > 0 {
			a.log.WithFields(logrus.Fields{
				"strategy": kind,
				"skipped":  skipped,
			}).Info("points left out of the plot")
		}
		lines = append(lines, kind.String(), xys)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return errors.Wrap(err, "failed to add lines")
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, opts.out); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", opts.out)
	}
	a.log.WithField("path", opts.out).Info("sweep plotted")
	return nil
}

func writeCSV(cmd *cobra.Command, samples []sample) error {
	w := csv.NewWriter(cmd.OutOrStdout())
	header := []string{"degrees"}
	for _, kind := range optim.Kinds() {
		header = append(header, kind.String())
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{strconv.FormatFloat(s.degrees, 'f', -1, 64)}
		for _, r := range s.results {
			row = append(row, strconv.FormatFloat(r.Beta, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
