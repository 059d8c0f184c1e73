package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/nlcg/internal/optim"
	"github.com/born-ml/nlcg/internal/serialization"
)

func betaCmd(a *app) *cobra.Command {
	var (
		in         inputs
		all        bool
		output     string
		checkpoint string
	)
	cmd := &cobra.Command{
		Use:   "beta",
		Short: "Computes beta for one conjugate gradient step",
		Long: `Computes beta from the previous gradient, the new gradient and the previous
search direction using the configured strategy, or every strategy with --all.`,
		Example: "nlcg beta --grad-prev 3,4 --grad-new 4,3 --dir-prev 1,0 --all",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := optim.Kinds()
			switch {
			case checkpoint != "":
				h, err := serialization.Load(checkpoint)
				if err != nil {
					return err
				}
				a.log.WithFields(logrus.Fields{
					"path":     checkpoint,
					"strategy": h.Strategy,
					"dtype":    h.DType,
				}).Debug("strategy restored from checkpoint")
				a.checkpoint = &h
				a.cfg.DType = h.DType
				kinds = []optim.Kind{h.Strategy}
			case !all:
				kind, err := a.cfg.Kind()
				if err != nil {
					return err
				}
				kinds = []optim.Kind{kind}
			}
			results, err := a.betas(kinds, in)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), output, results)
		},
	}

	cmd.Flags().Float64SliceVar(&in.gradPrev, "grad-prev", nil, "previous gradient, comma separated")
	cmd.Flags().Float64SliceVar(&in.gradNew, "grad-new", nil, "new gradient, comma separated")
	cmd.Flags().Float64SliceVar(&in.dirPrev, "dir-prev", nil, "previous search direction, comma separated")
	cmd.Flags().BoolVar(&all, "all", false, "evaluate every strategy")
	cmd.Flags().StringVar(&checkpoint, "checkpoint", "", "take strategy and dtype from a .nlcg checkpoint")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	cmd.MarkFlagsMutuallyExclusive("all", "checkpoint")
	for _, name := range []string{"grad-prev", "grad-new", "dir-prev"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	return cmd
}

func writeResults(w io.Writer, format string, results []result) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "STRATEGY\tBETA\tRESTART")
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%s\t%t\n", r.Strategy, strconv.FormatFloat(r.Beta, 'g', -1, 64), r.Restart)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonResults(results))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

// jsonResult carries beta as a string because JSON has no Inf or NaN.
type jsonResult struct {
	Strategy optim.Kind `json:"strategy"`
	Beta     string     `json:"beta"`
	Restart  bool       `json:"restart"`
}

func jsonResults(results []result) []jsonResult {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{
			Strategy: r.Strategy,
			Beta:     strconv.FormatFloat(r.Beta, 'g', -1, 64),
			Restart:  r.Restart,
		}
	}
	return out
}
