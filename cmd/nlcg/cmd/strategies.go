package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/born-ml/nlcg/internal/optim"
)

func strategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "Lists the available beta update strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STRATEGY\tALIASES\tFORMULA")
			for _, k := range optim.Kinds() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", k, strings.Join(k.Aliases(), ", "), k.Formula())
			}
			return w.Flush()
		},
	}
}
