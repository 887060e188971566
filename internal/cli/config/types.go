// Package config provides configuration management for the numtower CLI.
package config

import (
	"log/slog"

	"github.com/cockroachdb/apd/v3"

	"github.com/Neumenon/numtower/notation"
	"github.com/Neumenon/numtower/numeric"
)

// Default values for configuration.
const (
	DefaultOutput           = "text"
	DefaultSeparator        = " "
	DefaultDecimalPrecision = 34
	DefaultEpsilon          = numeric.DefaultEpsilon
	DefaultMaxIterations    = numeric.DefaultMaxIterations
)

// Output formats accepted by --output.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// Config holds all CLI configuration options.
type Config struct {
	Epsilon          float64 `koanf:"epsilon"`
	MaxIterations    int     `koanf:"max_iterations"`
	AllowComplex     bool    `koanf:"allow_complex"`
	DecimalPrecision int     `koanf:"decimal_precision"`
	Output           string  `koanf:"output"`
	Verbose          bool    `koanf:"verbose"`
	Separator        string  `koanf:"separator"`
	PerLine          int     `koanf:"per_line"`
	Checksum         bool    `koanf:"checksum"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Epsilon:          DefaultEpsilon,
		MaxIterations:    DefaultMaxIterations,
		AllowComplex:     true,
		DecimalPrecision: DefaultDecimalPrecision,
		Output:           DefaultOutput,
		Separator:        DefaultSeparator,
	}
}

// defaultsMap mirrors Default for the koanf confmap provider.
func defaultsMap() map[string]interface{} {
	return map[string]interface{}{
		"epsilon":           DefaultEpsilon,
		"max_iterations":    DefaultMaxIterations,
		"allow_complex":     true,
		"decimal_precision": DefaultDecimalPrecision,
		"output":            DefaultOutput,
		"verbose":           false,
		"separator":         DefaultSeparator,
		"per_line":          0,
		"checksum":          false,
	}
}

// Approximator returns the float-to-ratio search configured by Epsilon and
// MaxIterations.
func (c *Config) Approximator() numeric.Approximator {
	return numeric.Approximator{Epsilon: c.Epsilon, MaxIterations: c.MaxIterations}
}

// DecimalContext returns an apd context with DecimalPrecision digits.
func (c *Config) DecimalContext() *apd.Context {
	if c.DecimalPrecision <= 0 {
		return numeric.DecimalContext
	}
	return numeric.DecimalContext.WithPrecision(uint32(c.DecimalPrecision))
}

// ReaderOptions returns notation reader options. log may be nil.
func (c *Config) ReaderOptions(log *slog.Logger) notation.ReaderOptions {
	return notation.ReaderOptions{AllowComplex: c.AllowComplex, Logger: log}
}

// WriterOptions returns notation writer options.
func (c *Config) WriterOptions() notation.WriterOptions {
	return notation.WriterOptions{
		Separator: c.Separator,
		PerLine:   c.PerLine,
		Checksum:  c.Checksum,
	}
}
