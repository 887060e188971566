package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Neumenon/numtower/internal/cli/config"
	"github.com/Neumenon/numtower/notation"
	"github.com/Neumenon/numtower/numeric"
)

// literalInfo is the JSON shape of one parsed literal.
type literalInfo struct {
	Text    string `json:"text"`
	Literal string `json:"literal"`
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Float   string `json:"float"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "parse [literal...]",
		Short: "Classify and parse numeric literals",
		Long: `Classify each literal, convert it to a number and print its kind,
canonical rendering and nearest float.

Literals come from the arguments or, with --file, from a file of
literals separated by whitespace or commas (';' starts a comment).`,
		Example: `  numtower parse 1/3 1.50M 42N 2+3i
  numtower parse --file values.txt -o table
  echo "1/2, 0.25" | numtower parse --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, file, args)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read literals from file ('-' for stdin)")

	return cmd
}

func runParse(cmd *cobra.Command, file string, args []string) error {
	cfg := config.FromContext(cmd.Context())
	log := config.GetLogger(cmd.Context())

	var src io.Reader
	switch {
	case file != "" && len(args) > 0:
		return errors.New("give literals as arguments or with --file, not both")
	case file != "":
		in, closeFn, err := openInput(cmd, file)
		if err != nil {
			return err
		}
		defer func() { _ = closeFn() }()
		src = in
	case len(args) > 0:
		src = argsReader(args)
	default:
		return errors.New("no literals given")
	}

	items, err := notation.NewReader(src, cfg.ReaderOptions(log)).ReadItems()
	if err != nil {
		return err
	}
	log.Debug("parsed literals", "count", len(items))

	infos := make([]literalInfo, len(items))
	for i, it := range items {
		infos[i] = literalInfo{
			Text:    it.Text,
			Literal: it.Kind.String(),
			Kind:    it.Value.Kind().String(),
			Value:   numeric.Format(it.Value),
			Float:   floatText(it.Value.Float64()),
			Line:    it.Pos.Line,
			Column:  it.Pos.Column,
		}
	}

	w := cmd.OutOrStdout()
	switch cfg.Output {
	case config.OutputJSON:
		return renderJSON(w, infos)
	case config.OutputTable:
		rows := make([]table.Row, len(infos))
		for i, in := range infos {
			rows[i] = table.Row{in.Text, in.Literal, in.Kind, in.Value, in.Float}
		}
		renderTable(w, table.Row{"Literal", "Shape", "Kind", "Value", "Float"}, rows)
		return nil
	}
	for _, in := range infos {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", in.Text, in.Kind, in.Value, in.Float); err != nil {
			return err
		}
	}
	return nil
}
