package notation

import (
	"bufio"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"strings"
)

// token is one literal span: a maximal run of bytes that are neither
// separators nor the start of a comment.
type token struct {
	text string
	pos  Position
}

// scanner splits a byte stream into literal tokens, tracking line and
// column as it goes. Input is read incrementally.
type scanner struct {
	r      *bufio.Reader
	pos    Position // position of the next unread byte
	crc    uint32   // CRC-32 of every byte consumed so far
	verify bool
	log    *slog.Logger
	err    error // sticky read error
}

func newScanner(src io.Reader, verify bool, log *slog.Logger) *scanner {
	return &scanner{
		r:      bufio.NewReader(src),
		pos:    Position{Line: 1, Column: 1},
		verify: verify,
		log:    log,
	}
}

// next returns the next literal token, or io.EOF when the input holds only
// separators and comments from here on.
func (s *scanner) next() (token, error) {
	for {
		c, ok := s.peek()
		if !ok {
			return token{}, s.eof()
		}

		switch {
		case isSeparator(c):
			s.advance()
		case c == ';':
			if err := s.skipComment(); err != nil {
				return token{}, err
			}
		default:
			tok := s.scanLiteral()
			if s.err != nil {
				return token{}, s.eof()
			}
			return tok, nil
		}
	}
}

func (s *scanner) scanLiteral() token {
	start := s.pos
	var sb strings.Builder
	for {
		c, ok := s.peek()
		if !ok || isSeparator(c) || c == ';' {
			break
		}
		sb.WriteByte(s.advance())
	}
	return token{text: sb.String(), pos: start}
}

// skipComment consumes ';' through the end of the line. A checksum trailer
// is checked against the bytes before it when verification is on.
func (s *scanner) skipComment() error {
	start := s.pos
	before := s.crc
	s.advance() // consume ;

	var sb strings.Builder
	for {
		c, ok := s.peek()
		if !ok || c == '\n' {
			break
		}
		sb.WriteByte(s.advance())
	}
	if s.err != nil {
		return s.eof()
	}

	body := sb.String()
	want, isChecksum := parseChecksumComment(body)
	if !isChecksum {
		s.log.Debug("skipped comment", "pos", start.String(), "bytes", len(body))
		return nil
	}
	if !s.verify {
		s.log.Debug("ignored checksum trailer", "pos", start.String())
		return nil
	}
	if want != before {
		return &ParseError{
			Message: fmt.Sprintf("trailer says %08x, content is %08x", want, before),
			Pos:     start,
			Err:     ErrChecksumMismatch,
		}
	}
	s.log.Debug("checksum verified", "pos", start.String(), "crc32", fmt.Sprintf("%08x", want))
	return nil
}

func (s *scanner) eof() error {
	if s.err != nil {
		return fmt.Errorf("notation: read at %s: %w", s.pos, s.err)
	}
	return io.EOF
}

// Helper methods

func (s *scanner) peek() (byte, bool) {
	if s.err != nil {
		return 0, false
	}
	c, err := s.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return 0, false
	}
	_ = s.r.UnreadByte()
	return c, true
}

// advance consumes the byte the last peek returned.
func (s *scanner) advance() byte {
	c, _ := s.r.ReadByte()
	s.crc = crc32.Update(s.crc, crcTable, []byte{c})
	if c == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	s.pos.Offset++
	return c
}

// Character classification

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v', ',':
		return true
	}
	return false
}
