package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nlcg/internal/optim"
	"github.com/born-ml/nlcg/internal/vector"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	kind, err := c.Kind()
	require.NoError(t, err)
	assert.Equal(t, optim.KindPolakRibierePlus, kind)

	dt, err := c.DataType()
	require.NoError(t, err)
	assert.Equal(t, vector.Float64, dt)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlcg.yaml")
	content := `
strategy: hs
dtype: float32
provider: sparse
parallel:
  enabled: true
  num_workers: 3
  min_chunk_size: 128
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "hs", c.Strategy)
	assert.Equal(t, "float32", c.DType)
	assert.Equal(t, ProviderSparse, c.Provider)
	assert.True(t, c.Parallel.Enabled)
	assert.Equal(t, 3, c.Parallel.NumWorkers)
	assert.Equal(t, 128, c.Parallel.MinChunkSize)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("NLCG_STRATEGY", "fletcher-reeves")
	t.Setenv("NLCG_PARALLEL_NUM_WORKERS", "7")

	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "fletcher-reeves", c.Strategy)
	assert.Equal(t, 7, c.Parallel.NumWorkers)
	assert.Equal(t, Default().DType, c.DType)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate func(c *Config)
		fields []string
	}{
		"unknown strategy": {
			mutate: func(c *Config) { c.Strategy = "dai-yuan" },
			fields: []string{"strategy"},
		},
		"gonum float32": {
			mutate: func(c *Config) { c.Provider = ProviderGonum; c.DType = "float32" },
			fields: []string{"provider"},
		},
		"everything wrong": {
			mutate: func(c *Config) {
				c.Strategy = ""
				c.DType = "int8"
				c.Provider = "gpu"
				c.Parallel.NumWorkers = -1
				c.Parallel.MinChunkSize = -1
				c.Log.Level = "loud"
				c.Log.Format = "xml"
			},
			fields: []string{"strategy", "dtype", "provider", "parallel.num_workers", "parallel.min_chunk_size", "log.level", "log.format"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			for _, f := range tc.fields {
				assert.Contains(t, err.Error(), `field "`+f+`"`)
			}

			var iae *InvalidArgumentError
			assert.True(t, errors.As(err, &iae))
		})
	}

	c := Default()
	c.Provider = ProviderGonum
	assert.NoError(t, c.Validate())
}

func TestLogConfig_Apply(t *testing.T) {
	logger := logrus.New()

	require.NoError(t, LogConfig{Level: "warn", Format: "json"}.Apply(logger))
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	require.NoError(t, LogConfig{Level: "debug", Format: "text"}.Apply(logger))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	assert.Error(t, LogConfig{Level: "loud"}.Apply(logger))
}
