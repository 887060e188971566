package config

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("epsilon must be a finite number >= 0, got %v", c.Epsilon)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.DecimalPrecision < 1 || c.DecimalPrecision > 1000 {
		return fmt.Errorf("decimal_precision must be between 1 and 1000, got %d", c.DecimalPrecision)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputTable:
	default:
		return fmt.Errorf("output must be one of text, json, table; got %q", c.Output)
	}
	if strings.Trim(c.Separator, " \t\f\v,") != "" {
		return fmt.Errorf("separator may only contain spaces, tabs and commas, got %q", c.Separator)
	}
	if c.PerLine < 0 {
		return fmt.Errorf("per_line must be >= 0, got %d", c.PerLine)
	}
	return nil
}
