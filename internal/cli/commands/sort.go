package commands

import (
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Neumenon/numtower/internal/cli/config"
	"github.com/Neumenon/numtower/notation"
	"github.com/Neumenon/numtower/numeric"
)

type sortOptions struct {
	dedupe  bool
	reverse bool
	digest  bool
	verify  bool
}

// NewSortCommand creates the sort command.
func NewSortCommand() *cobra.Command {
	var opts sortOptions

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort a stream of numeric literals by value",
		Long: `Read literals from a file (or stdin), sort them by mathematical value
across kinds and write them back in canonical form.

Values that compare equal keep their input order, or the opposite order
with --reverse. Complex values with a nonzero imaginary part cannot be
ordered and make the command fail.`,
		Example: `  numtower sort values.txt
  printf '3 1/2 0.25M' | numtower sort --per-line 1
  numtower sort values.txt --dedupe --checksum --digest`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runSort(cmd, path, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dedupe, "dedupe", false, "Drop values equal to an earlier one")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "Sort in descending order")
	cmd.Flags().BoolVar(&opts.digest, "digest", false, "Write a sha256 comment identifying the sorted values")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Verify crc32 trailers in the input")
	cmd.Flags().String("separator", config.DefaultSeparator, "Separator between values on a line")
	cmd.Flags().Int("per-line", 0, "Values per output line (0 for a single line)")
	cmd.Flags().Bool("checksum", false, "Append a crc32 trailer to the output")

	return cmd
}

func runSort(cmd *cobra.Command, path string, opts sortOptions) error {
	cfg := config.FromContext(cmd.Context())
	log := config.GetLogger(cmd.Context())

	in, closeFn, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	ropts := cfg.ReaderOptions(log)
	ropts.VerifyChecksum = opts.verify
	nums, err := notation.NewReader(in, ropts).ReadAll()
	if err != nil {
		return err
	}

	if err := numeric.SortNumbers(nums); err != nil {
		return err
	}
	if opts.reverse {
		slices.Reverse(nums)
	}
	if opts.dedupe {
		before := len(nums)
		nums = numeric.Dedupe(nums)
		log.Debug("deduplicated", "before", before, "after", len(nums))
	}
	log.Debug("sorted", "count", len(nums))

	w := cmd.OutOrStdout()
	switch cfg.Output {
	case config.OutputJSON:
		out := struct {
			Values []string `json:"values"`
			Digest string   `json:"digest,omitempty"`
		}{Values: make([]string, len(nums))}
		for i, n := range nums {
			out.Values[i] = numeric.Format(n)
		}
		if opts.digest {
			out.Digest = notation.DigestHex(nums)
		}
		return renderJSON(w, out)
	case config.OutputTable:
		rows := make([]table.Row, len(nums))
		for i, n := range nums {
			rows[i] = table.Row{i + 1, numeric.Format(n), n.Kind().String()}
		}
		renderTable(w, table.Row{"#", "Value", "Kind"}, rows)
		return nil
	}

	nw := notation.NewWriter(w, cfg.WriterOptions())
	if opts.digest {
		if err := nw.Comment("sha256=" + notation.DigestHex(nums)); err != nil {
			return err
		}
	}
	if err := nw.WriteAll(nums); err != nil {
		return err
	}
	return nw.Flush()
}
