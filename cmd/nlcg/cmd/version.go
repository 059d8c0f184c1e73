package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/nlcg/internal/serialization"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "nlcg %s (checkpoint format v%d)\n",
				serialization.LibraryVersion, serialization.FormatVersion)
			return err
		},
	}
}
