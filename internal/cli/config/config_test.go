package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/numtower/numeric"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numtower.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Float64("epsilon", DefaultEpsilon, "")
	flags.Int("max-iterations", DefaultMaxIterations, "")
	flags.Bool("allow-complex", true, "")
	flags.Int("decimal-precision", DefaultDecimalPrecision, "")
	flags.StringP("output", "o", DefaultOutput, "")
	flags.BoolP("verbose", "v", false, "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "epsilon: 0.001\nmax_iterations: 500\nallow_complex: false\noutput: json\nseparator: \", \"\nper_line: 4\nchecksum: true\n")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, 0.001, cfg.Epsilon)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.False(t, cfg.AllowComplex)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, ", ", cfg.Separator)
	assert.Equal(t, 4, cfg.PerLine)
	assert.True(t, cfg.Checksum)
	assert.Equal(t, DefaultDecimalPrecision, cfg.DecimalPrecision)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeConfig(t, "epsilon: 0.1\nmax_iterations: 100\noutput: table\n")

	t.Run("env overrides file", func(t *testing.T) {
		ResetConfig()
		t.Setenv("NUMTOWER_EPSILON", "0.01")
		t.Setenv("NUMTOWER_ALLOW_COMPLEX", "false")

		cfg, err := LoadConfig(path, testFlags())
		require.NoError(t, err)
		assert.Equal(t, 0.01, cfg.Epsilon)
		assert.False(t, cfg.AllowComplex)
		assert.Equal(t, 100, cfg.MaxIterations)
		assert.Equal(t, OutputTable, cfg.Output)
	})

	t.Run("flags override env", func(t *testing.T) {
		ResetConfig()
		t.Setenv("NUMTOWER_EPSILON", "0.01")

		flags := testFlags()
		require.NoError(t, flags.Set("epsilon", "0.5"))
		require.NoError(t, flags.Set("max-iterations", "7"))

		cfg, err := LoadConfig(path, flags)
		require.NoError(t, err)
		assert.Equal(t, 0.5, cfg.Epsilon)
		assert.Equal(t, 7, cfg.MaxIterations)
		assert.Equal(t, OutputTable, cfg.Output)
	})

	t.Run("unchanged flags keep file values", func(t *testing.T) {
		ResetConfig()
		cfg, err := LoadConfig(path, testFlags())
		require.NoError(t, err)
		assert.Equal(t, 0.1, cfg.Epsilon)
		assert.Equal(t, DefaultDecimalPrecision, cfg.DecimalPrecision)
	})
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	ResetConfig()
	flags := testFlags()
	require.NoError(t, flags.Set("output", "xml"))

	_, err := LoadConfig("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output must be one of")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero epsilon", func(c *Config) { c.Epsilon = 0 }, ""},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1 }, "epsilon"},
		{"zero iterations", func(c *Config) { c.MaxIterations = 0 }, "max_iterations"},
		{"precision too large", func(c *Config) { c.DecimalPrecision = 5000 }, "decimal_precision"},
		{"precision zero", func(c *Config) { c.DecimalPrecision = 0 }, "decimal_precision"},
		{"bad output", func(c *Config) { c.Output = "yaml" }, "output"},
		{"comma separator", func(c *Config) { c.Separator = ", " }, ""},
		{"pipe separator", func(c *Config) { c.Separator = "|" }, "separator"},
		{"negative per line", func(c *Config) { c.PerLine = -2 }, "per_line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Derived(t *testing.T) {
	cfg := Default()
	cfg.Epsilon = 1e-3
	cfg.MaxIterations = 99
	cfg.DecimalPrecision = 5
	cfg.Separator = ","
	cfg.PerLine = 3

	assert.Equal(t, numeric.Approximator{Epsilon: 1e-3, MaxIterations: 99}, cfg.Approximator())
	assert.Equal(t, uint32(5), cfg.DecimalContext().Precision)

	ro := cfg.ReaderOptions(nil)
	assert.True(t, ro.AllowComplex)

	wo := cfg.WriterOptions()
	assert.Equal(t, ",", wo.Separator)
	assert.Equal(t, 3, wo.PerLine)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := Default()
	cfg.Output = OutputJSON
	ctx = WithConfig(ctx, cfg)
	assert.Same(t, cfg, FromContext(ctx))
}
