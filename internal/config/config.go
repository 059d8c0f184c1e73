// Package config loads the nlcg command-line configuration from defaults,
// an optional YAML file, NLCG_* environment variables and bound flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/born-ml/nlcg/internal/optim"
	"github.com/born-ml/nlcg/internal/parallel"
	"github.com/born-ml/nlcg/internal/vector"
)

// EnvPrefix is the prefix of environment variables overriding the config.
const EnvPrefix = "NLCG"

// Vector providers selectable from the command line.
const (
	ProviderDense  = "dense"
	ProviderSparse = "sparse"
	ProviderGonum  = "gonum"
)

// Config is the complete nlcg configuration.
type Config struct {
	Strategy string          `mapstructure:"strategy"`
	DType    string          `mapstructure:"dtype"`
	Provider string          `mapstructure:"provider"`
	Parallel parallel.Config `mapstructure:"parallel"`
	Log      LogConfig       `mapstructure:"log"`
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Strategy: optim.KindPolakRibierePlus.String(),
		DType:    vector.Float64.String(),
		Provider: ProviderDense,
		Parallel: parallel.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers Default() on v so that environment variables and
// flags can override individual keys.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("strategy", d.Strategy)
	v.SetDefault("dtype", d.DType)
	v.SetDefault("provider", d.Provider)
	v.SetDefault("parallel.enabled", d.Parallel.Enabled)
	v.SetDefault("parallel.num_workers", d.Parallel.NumWorkers)
	v.SetDefault("parallel.min_chunk_size", d.Parallel.MinChunkSize)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load reads the configuration into a Config. path may be empty, in which
// case only defaults, environment and flags bound to v are used.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var result *multierror.Error

	if _, err := optim.ParseKind(c.Strategy); err != nil {
		result = multierror.Append(result, invalid("strategy", c.Strategy, err.Error()))
	}
	dt, ok := vector.ParseDataType(c.DType)
	if !ok {
		result = multierror.Append(result, invalid("dtype", c.DType, "must be float32 or float64"))
	}
	switch c.Provider {
	case ProviderDense, ProviderSparse:
	case ProviderGonum:
		if ok && dt != vector.Float64 {
			result = multierror.Append(result, invalid("provider", c.Provider, "gonum vectors are float64 only"))
		}
	default:
		result = multierror.Append(result, invalid("provider", c.Provider, "must be dense, sparse or gonum"))
	}
	if c.Parallel.NumWorkers < 0 {
		result = multierror.Append(result, invalid("parallel.num_workers", c.Parallel.NumWorkers, "must not be negative"))
	}
	if c.Parallel.MinChunkSize < 0 {
		result = multierror.Append(result, invalid("parallel.min_chunk_size", c.Parallel.MinChunkSize, "must not be negative"))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, invalid("log.level", c.Log.Level, err.Error()))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		result = multierror.Append(result, invalid("log.format", c.Log.Format, "must be text or json"))
	}

	return result.ErrorOrNil()
}

// Kind returns the configured strategy.
func (c Config) Kind() (optim.Kind, error) {
	return optim.ParseKind(c.Strategy)
}

// DataType returns the configured scalar type.
func (c Config) DataType() (vector.DataType, error) {
	dt, ok := vector.ParseDataType(c.DType)
	if !ok {
		return 0, invalid("dtype", c.DType, "must be float32 or float64")
	}
	return dt, nil
}

// Apply configures logger according to c.
func (c LogConfig) Apply(logger *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return errors.WithStack(invalid("log.level", c.Level, err.Error()))
	}
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)
	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// InvalidArgumentError reports a configuration value that cannot be used.
type InvalidArgumentError struct {
	Name    string // Name of the field, e.g. "dtype"
	Value   any    // The invalid value that was provided
	Message string // Why the value is invalid
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("value %q is invalid for field %q; %s", fmt.Sprint(e.Value), e.Name, e.Message)
}

func invalid(name string, value any, message string) error {
	return &InvalidArgumentError{Name: name, Value: value, Message: message}
}
