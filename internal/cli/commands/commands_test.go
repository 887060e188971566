package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParseCommand(t *testing.T) {
	cmd := NewParseCommand()

	assert.Equal(t, "parse [literal...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("file"))
}

func TestNewApproxCommand(t *testing.T) {
	cmd := NewApproxCommand()

	assert.Equal(t, "approx <x>", cmd.Use)
	for _, flag := range []string{"epsilon", "max-iterations"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewSortCommand(t *testing.T) {
	cmd := NewSortCommand()

	assert.Equal(t, "sort [file]", cmd.Use)
	flags := []string{"dedupe", "reverse", "digest", "verify", "separator", "per-line", "checksum"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestArgumentCounts(t *testing.T) {
	compare := NewCompareCommand()
	assert.Error(t, compare.Args(compare, []string{"1"}))
	assert.NoError(t, compare.Args(compare, []string{"1", "2"}))

	calc := NewCalcCommand()
	assert.Error(t, calc.Args(calc, []string{"1", "+"}))
	assert.NoError(t, calc.Args(calc, []string{"1", "+", "2"}))

	sort := NewSortCommand()
	assert.Error(t, sort.Args(sort, []string{"a", "b"}))
}

// Commands run without a root fall back to the default configuration.
func TestCommandsWithDefaults(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewCalcCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1/2", "+", "1/2"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1/1\n", buf.String())

	buf.Reset()
	cmd = NewSortCommand()
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader("b a"))
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.Contains(buf.String(), "numtower v1.2.3"))
}
