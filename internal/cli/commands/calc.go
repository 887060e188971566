package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Neumenon/numtower/internal/cli/config"
	"github.com/Neumenon/numtower/numeric"
)

type calcResult struct {
	Expr   string `json:"expr"`
	Result string `json:"result"`
	Kind   string `json:"kind"`
}

// NewCalcCommand creates the calc command.
func NewCalcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Apply + - * (or x) or / to two numeric literals",
		Long: `Apply one arithmetic operator to two literals.

The result has the widest kind of the operands, in the order
int < bigint < ratio < decimal < float < complex. Integer division yields
an exact ratio. Decimal results use --decimal-precision significant digits.

The operator x is a synonym for * that needs no shell quoting.
Use -- before operands that start with '-' so they are not read as flags.`,
		Example: `  numtower calc 1/3 + 1/6
  numtower calc 2.50M '*' 3
  numtower calc -- -7 / 2`,
		Args: cobra.ExactArgs(3),
		RunE: runCalc,
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())
	rec := recognizer(cfg)

	a, err := parseArg(rec, "first operand", args[0])
	if err != nil {
		return err
	}
	op, err := numeric.ParseOp(args[1])
	if err != nil {
		return err
	}
	b, err := parseArg(rec, "second operand", args[2])
	if err != nil {
		return err
	}

	r, err := numeric.ApplyContext(cfg.DecimalContext(), op, a, b)
	if err != nil {
		return err
	}

	res := calcResult{
		Expr:   fmt.Sprintf("%s %s %s", numeric.Format(a), op, numeric.Format(b)),
		Result: numeric.Format(r),
		Kind:   r.Kind().String(),
	}
	config.GetLogger(cmd.Context()).Debug("calculated", "expr", res.Expr, "kind", res.Kind)

	w := cmd.OutOrStdout()
	switch cfg.Output {
	case config.OutputJSON:
		return renderJSON(w, res)
	case config.OutputTable:
		renderTable(w, table.Row{"Expression", "Result", "Kind"}, []table.Row{{res.Expr, res.Result, res.Kind}})
		return nil
	}
	_, err = fmt.Fprintln(w, res.Result)
	return err
}
