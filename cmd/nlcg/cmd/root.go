// Package cmd implements the nlcg subcommands.
package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/born-ml/nlcg/internal/config"
	"github.com/born-ml/nlcg/internal/serialization"
	"github.com/born-ml/nlcg/internal/vector"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *logrus.Logger

	// checkpoint, when set, supplies the strategy instead of cfg.
	checkpoint *serialization.Header
}

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: logrus.New(),
	}
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "nlcg",
		Short: "nlcg evaluates and checkpoints nonlinear conjugate gradient beta updates.",
		// Usage is noise for numeric errors such as a dimension mismatch.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, cfgFile)
			if err != nil {
				return err
			}
			if err := cfg.Log.Apply(a.log); err != nil {
				return err
			}
			a.log.SetOutput(cmd.ErrOrStderr())
			vector.SetParallelConfig(cfg.Parallel)
			a.cfg = cfg
			a.log.WithField("command", cmd.Name()).Debug("configuration loaded")
			return nil
		},
	}

	d := config.Default()
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to a YAML configuration file")
	flags.String("strategy", d.Strategy, "beta update strategy (fr, pr, pr+, hs or full name)")
	flags.String("dtype", d.DType, "scalar type: float32 or float64")
	flags.String("provider", d.Provider, "vector provider: dense, sparse or gonum")
	flags.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	flags.String("log-format", d.Log.Format, "log format: text or json")
	for key, flag := range map[string]string{
		"strategy":   "strategy",
		"dtype":      "dtype",
		"provider":   "provider",
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(errors.Wrapf(err, "binding flag %s", flag))
		}
	}

	cmd.AddCommand(
		versionCmd(),
		strategiesCmd(),
		betaCmd(a),
		checkpointCmd(a),
		sweepCmd(a),
	)

	return cmd
}
