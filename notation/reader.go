package notation

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Neumenon/numtower/numeric"
)

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	AllowComplex bool // Accept complex literals such as 1+2i

	// VerifyChecksum checks "; crc32=..." trailers written by a Writer with
	// Checksum set. Trailers are ordinary comments when false.
	VerifyChecksum bool

	Logger *slog.Logger // Debug events; nil discards them
}

// DefaultReaderOptions returns options that accept every literal kind.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{AllowComplex: true}
}

// Item is one literal read from the input.
type Item struct {
	Value numeric.Number
	Kind  numeric.LiteralKind
	Text  string   // Literal exactly as written
	Pos   Position // Position of the first byte
}

// Reader reads numeric literals from an io.Reader.
//
// Literals are separated by whitespace or commas. A ';' starts a comment
// that runs to the end of the line.
type Reader struct {
	sc    *scanner
	rec   *numeric.Recognizer
	log   *slog.Logger
	count int
}

// NewReader creates a new Reader over src.
func NewReader(src io.Reader, opts ReaderOptions) *Reader {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Reader{
		sc:  newScanner(src, opts.VerifyChecksum, log),
		rec: numeric.NewRecognizer(numeric.LiteralOptions{AllowComplex: opts.AllowComplex}),
		log: log,
	}
}

// Next reads and returns the next literal.
// Returns io.EOF when no more literals are available.
//
// A malformed literal yields a *ParseError positioned at the offending
// byte; the literal is consumed, so reading can continue after it.
func (r *Reader) Next() (Item, error) {
	tok, err := r.sc.next()
	if err != nil {
		if err == io.EOF {
			r.log.Debug("end of input", "literals", r.count)
		}
		return Item{}, err
	}

	v, kind, err := r.rec.ParseKind(tok.text)
	if err != nil {
		return Item{}, literalError(tok, err)
	}

	r.count++
	r.log.Debug("literal", "pos", tok.pos.String(), "kind", kind.String(), "text", tok.text)
	return Item{Value: v, Kind: kind, Text: tok.text, Pos: tok.pos}, nil
}

// Count returns the number of literals read successfully so far.
func (r *Reader) Count() int {
	return r.count
}

// ReadItems reads every remaining literal, stopping at the first error.
func (r *Reader) ReadItems() ([]Item, error) {
	var items []Item
	for {
		it, err := r.Next()
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, it)
	}
}

// ReadAll reads every remaining value, stopping at the first error.
func (r *Reader) ReadAll() ([]numeric.Number, error) {
	items, err := r.ReadItems()
	return Values(items), err
}

// ReadString reads every value in s.
func ReadString(s string, opts ReaderOptions) ([]numeric.Number, error) {
	return NewReader(strings.NewReader(s), opts).ReadAll()
}

// Values extracts the numbers from items.
func Values(items []Item) []numeric.Number {
	out := make([]numeric.Number, len(items))
	for i, it := range items {
		out[i] = it.Value
	}
	return out
}

// literalError positions a recognizer failure inside the source.
func literalError(tok token, err error) error {
	pos := tok.pos
	msg := fmt.Sprintf("malformed literal %q", tok.text)

	var le *numeric.LiteralError
	if errors.As(err, &le) {
		pos = pos.advance(le.Offset)
		if le.Kind != numeric.LiteralUnknown {
			msg = fmt.Sprintf("invalid %s literal %q", le.Kind, tok.text)
		}
	}
	return &ParseError{Message: msg, Pos: pos, Err: err}
}
