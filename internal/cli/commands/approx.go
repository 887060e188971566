package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Neumenon/numtower/internal/cli/config"
	"github.com/Neumenon/numtower/numeric"
)

type approximation struct {
	Input      string `json:"input"`
	Ratio      string `json:"ratio"`
	Error      string `json:"error"`
	Iterations int    `json:"iterations"`
}

// NewApproxCommand creates the approx command.
func NewApproxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approx <x>",
		Short: "Find the simplest fraction close to a number",
		Long: `Approximate a real number by a fraction using a Stern-Brocot search.

The search stops at the first fraction within --epsilon of x. An epsilon
of 0 asks for the exact float value and may run into --max-iterations.`,
		Example: `  numtower approx 3.14159 --epsilon 0.001
  numtower approx 0.333333333
  numtower approx 0.375 --epsilon 0`,
		Args: cobra.ExactArgs(1),
		RunE: runApprox,
	}

	cmd.Flags().Float64("epsilon", config.DefaultEpsilon, "Maximum absolute error")
	cmd.Flags().Int("max-iterations", config.DefaultMaxIterations, "Limit on direction changes in the search")

	return cmd
}

func runApprox(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())
	log := config.GetLogger(cmd.Context())

	x, err := parseArg(recognizer(cfg), "value", args[0])
	if err != nil {
		return err
	}
	if !x.IsReal() {
		return fmt.Errorf("value: %s is not a real number", numeric.Format(x))
	}

	a, err := cfg.Approximator().Approximate(x.Float64())
	if err != nil {
		return err
	}
	log.Debug("approximated", "x", args[0], "ratio", a.Ratio.String(), "iterations", a.Iterations)

	res := approximation{
		Input:      args[0],
		Ratio:      a.Ratio.String(),
		Error:      floatText(a.Error),
		Iterations: a.Iterations,
	}

	w := cmd.OutOrStdout()
	switch cfg.Output {
	case config.OutputJSON:
		return renderJSON(w, res)
	case config.OutputTable:
		renderTable(w, table.Row{"Input", "Ratio", "Error", "Iterations"},
			[]table.Row{{res.Input, res.Ratio, res.Error, res.Iterations}})
		return nil
	}
	_, err = fmt.Fprintf(w, "%s error=%s iterations=%d\n", res.Ratio, res.Error, res.Iterations)
	return err
}
