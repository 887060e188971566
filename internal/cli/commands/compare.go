package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Neumenon/numtower/internal/cli/config"
	"github.com/Neumenon/numtower/numeric"
)

// comparison is the JSON shape of a compare result. Order is nil when the
// values have no ordering.
type comparison struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Order *int   `json:"order"`
	Equal bool   `json:"equal"`
	Error string `json:"error,omitempty"`
}

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two numeric literals across kinds",
		Long: `Compare two literals by mathematical value, whatever their kinds.

Prints -1, 0 or 1 followed by equal=true|false. A pair with no ordering
(such as two complex numbers with nonzero imaginary parts) prints only
equal=... and exits with an error.`,
		Example: `  numtower compare 1/2 0.5
  numtower compare 3N 2.99M
  numtower compare 1+2i 1+2i`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())
	rec := recognizer(cfg)

	a, err := parseArg(rec, "first operand", args[0])
	if err != nil {
		return err
	}
	b, err := parseArg(rec, "second operand", args[1])
	if err != nil {
		return err
	}

	res := comparison{A: numeric.Format(a), B: numeric.Format(b), Equal: numeric.Equal(a, b)}
	order, cmpErr := numeric.Compare(a, b)
	if cmpErr != nil {
		res.Error = cmpErr.Error()
	} else {
		res.Order = &order
	}
	config.GetLogger(cmd.Context()).Debug("compared", "a", res.A, "b", res.B, "equal", res.Equal)

	w := cmd.OutOrStdout()
	switch cfg.Output {
	case config.OutputJSON:
		if err := renderJSON(w, res); err != nil {
			return err
		}
	case config.OutputTable:
		ord := "-"
		if res.Order != nil {
			ord = fmt.Sprint(*res.Order)
		}
		renderTable(w, table.Row{"A", "B", "Order", "Equal"}, []table.Row{{res.A, res.B, ord, res.Equal}})
	default:
		if res.Order != nil {
			_, err = fmt.Fprintf(w, "%d equal=%t\n", *res.Order, res.Equal)
		} else {
			_, err = fmt.Fprintf(w, "equal=%t\n", res.Equal)
		}
		if err != nil {
			return err
		}
	}
	return cmpErr
}
