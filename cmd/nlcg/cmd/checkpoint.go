package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/nlcg/internal/serialization"
)

func checkpointCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkpoint",
		Short: "Saves and inspects .nlcg strategy checkpoints",
	}
	cmd.AddCommand(checkpointSaveCmd(a), checkpointInspectCmd(a))
	return cmd
}

func checkpointSaveCmd(a *app) *cobra.Command {
	var metadata map[string]string
	cmd := &cobra.Command{
		Use:     "save PATH",
		Short:   "Writes the configured strategy and dtype to a checkpoint",
		Example: "nlcg checkpoint save run.nlcg --strategy hs --meta problem=rosenbrock",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := a.cfg.Kind()
			if err != nil {
				return err
			}
			dt, err := a.cfg.DataType()
			if err != nil {
				return err
			}
			h := serialization.NewHeader(kind, dt)
			if len(metadata) > 0 {
				h.Metadata = metadata
			}
			if err := serialization.Save(args[0], h); err != nil {
				return err
			}
			a.log.WithField("path", args[0]).Infof("saved %s checkpoint", kind)
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&metadata, "meta", nil, "custom metadata as key=value pairs")
	return cmd
}

func checkpointInspectCmd(a *app) *cobra.Command {
	var (
		output       string
		skipChecksum bool
	)
	cmd := &cobra.Command{
		Use:   "inspect PATH",
		Short: "Prints the header of a checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := serialization.ReaderOptions{ValidationLevel: serialization.ValidationStrict}
			if skipChecksum {
				a.log.Warn("checksum validation disabled")
				opts = serialization.ReaderOptions{
					SkipChecksumValidation: true,
					ValidationLevel:        serialization.ValidationNormal,
				}
			}
			r, err := serialization.OpenWithOptions(args[0], opts)
			if err != nil {
				return err
			}
			defer func() { _ = r.Close() }()
			h, err := r.ReadHeader()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch output {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(h); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				data, err := json.MarshalIndent(h, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			default:
				return errors.Errorf("unknown output format %q", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVar(&skipChecksum, "skip-checksum", false, "read the header even if its checksum does not match")
	return cmd
}
