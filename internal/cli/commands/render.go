package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Neumenon/numtower/internal/cli/config"
	"github.com/Neumenon/numtower/numeric"
)

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderTable writes rows as a light-styled table.
func renderTable(w io.Writer, header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	for _, row := range rows {
		t.AppendRow(row)
	}
	t.Render()
}

// floatText renders a float for display. JSON has no NaN or infinities, so
// JSON output carries floats as text too.
func floatText(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// recognizer returns the literal recognizer implied by cfg.
func recognizer(cfg *config.Config) *numeric.Recognizer {
	return numeric.NewRecognizer(numeric.LiteralOptions{AllowComplex: cfg.AllowComplex})
}

// parseArg parses one command-line literal, naming it in errors.
func parseArg(rec *numeric.Recognizer, name, text string) (numeric.Number, error) {
	n, err := rec.Parse(text)
	if err != nil {
		return numeric.Number{}, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// openInput resolves the input source for commands that read literal
// streams. An empty path or "-" reads stdin.
func openInput(cmd *cobra.Command, path string) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}
	f, err := os.Open(path) // #nosec G304 -- path is supplied by the user
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, f.Close, nil
}

// argsReader presents literal arguments as one literal per line.
func argsReader(args []string) io.Reader {
	return strings.NewReader(strings.Join(args, "\n"))
}
