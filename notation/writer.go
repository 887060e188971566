package notation

import (
	"bufio"
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/Neumenon/numtower/numeric"
)

// WriterOptions controls output formatting.
type WriterOptions struct {
	// Separator goes between values on the same line. It may only contain
	// whitespace and commas so the output reads back. Empty means " ".
	Separator string

	// PerLine is the number of values per line. 0 puts everything on one
	// line until Flush.
	PerLine int

	// Checksum appends a "; crc32=..." trailer on every Flush.
	Checksum bool
}

// DefaultWriterOptions returns space-separated output on a single line.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{Separator: " "}
}

// LineWriterOptions returns one value per line.
func LineWriterOptions() WriterOptions {
	return WriterOptions{Separator: " ", PerLine: 1}
}

// Writer renders numbers in literal syntax.
type Writer struct {
	w      *bufio.Writer
	opts   WriterOptions
	onLine int    // Values on the current line
	crc    uint32 // CRC-32 of everything written
	err    error  // Sticky error
}

// NewWriter creates a Writer. An invalid separator is reported by the first
// Write or Flush.
func NewWriter(w io.Writer, opts WriterOptions) *Writer {
	if opts.Separator == "" {
		opts.Separator = " "
	}
	nw := &Writer{w: bufio.NewWriter(w), opts: opts}
	if strings.IndexFunc(opts.Separator, func(r rune) bool {
		return r > 0x7f || !isSeparator(byte(r))
	}) >= 0 {
		nw.err = fmt.Errorf("%w: %q", ErrInvalidSeparator, opts.Separator)
	}
	return nw
}

// Write renders one number.
func (w *Writer) Write(n numeric.Number) error {
	if w.err != nil {
		return w.err
	}
	if w.onLine > 0 {
		if w.opts.PerLine > 0 && w.onLine >= w.opts.PerLine {
			w.writeString("\n")
			w.onLine = 0
		} else {
			w.writeString(w.opts.Separator)
		}
	}
	w.writeString(numeric.Format(n))
	w.onLine++
	return w.err
}

// WriteAll renders nums in order, stopping at the first error.
func (w *Writer) WriteAll(nums []numeric.Number) error {
	for _, n := range nums {
		if err := w.Write(n); err != nil {
			return err
		}
	}
	return nil
}

// Flush ends the current line, writes the checksum trailer when enabled,
// and flushes buffered output.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.onLine > 0 {
		w.writeString("\n")
		w.onLine = 0
	}
	if w.opts.Checksum {
		w.writeString(checksumTrailer(w.crc))
	}
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		w.err = err
	}
	return w.err
}

// Comment ends the current line and writes text as a ';' comment line.
// text must not contain a line break, and must not start with the checksum
// prefix, which readers would take for a trailer.
func (w *Writer) Comment(text string) error {
	if w.err != nil {
		return w.err
	}
	if strings.ContainsAny(text, "\r\n") {
		return fmt.Errorf("notation: comment contains a line break: %q", text)
	}
	if strings.HasPrefix(strings.TrimSpace(text), checksumPrefix) {
		return fmt.Errorf("notation: comment %q would read as a checksum trailer", text)
	}
	if w.onLine > 0 {
		w.writeString("\n")
		w.onLine = 0
	}
	w.writeString("; " + text + "\n")
	return w.err
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	w.crc = crc32.Update(w.crc, crcTable, []byte(s))
	if _, err := w.w.WriteString(s); err != nil {
		w.err = err
	}
}

// WriteString renders nums with opts and returns the text.
func WriteString(nums []numeric.Number, opts WriterOptions) (string, error) {
	var sb strings.Builder
	w := NewWriter(&sb, opts)
	if err := w.WriteAll(nums); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
