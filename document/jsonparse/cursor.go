// Package jsonparse implements the streaming JSON parser: a one-byte
// lookahead tokenizer, RFC 8259 number parser, escape-aware string
// decoder, and a recursive-descent value parser that builds a
// document.Document directly (no intermediate AST).
package jsonparse

import (
	"fmt"

	"github.com/rpcpool/injson/document"
	"github.com/rpcpool/injson/document/jsonsrc"
)

// cursor wraps a byte source with the line/column/offset bookkeeping the
// error model needs.
type cursor struct {
	src  *jsonsrc.Source
	line int
	col  int
	off  int64

	// prevLine/prevCol mark where the current token started, for error
	// records that want to point at "where this value began" as well as
	// "where the error was noticed".
	prevLine int
	prevCol  int
}

func newCursor(src *jsonsrc.Source) *cursor { return &cursor{src: src} }

func (c *cursor) markTokenStart() { c.prevLine, c.prevCol = c.line, c.col }

func (c *cursor) peek() (byte, bool) { return c.src.Peek() }

func (c *cursor) advance() (byte, bool) {
	b, ok := c.src.Advance()
	if !ok {
		return 0, false
	}
	c.off++
	if b == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	return b, true
}

// isWhitespace reports whether b is JSON-insignificant whitespace per the
// spec's recognized set (space, tab, CR, LF, VT, FF).
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', 0x0B, '\f':
		return true
	default:
		return false
	}
}

func (c *cursor) skipWhitespace() {
	for {
		b, ok := c.peek()
		if !ok || !isWhitespace(b) {
			return
		}
		c.advance()
	}
}

func (c *cursor) errorf(kind document.ErrorKind, format string, args ...any) *document.Error {
	msg := fmt.Sprintf(format, args...)
	// An "unexpected end of input" signal from peek/advance is ambiguous:
	// it fires identically on a clean EOF and on a failed underlying read.
	// Surface the read failure under its own error kind when one occurred.
	if kind == document.ErrUnexpectedEOF {
		if ioErr := c.src.Err(); ioErr != nil {
			return document.NewError(document.ErrIO, c.src.Name(), fmt.Sprintf("read failed: %v", ioErr), c.line, c.col, c.prevLine, c.prevCol, c.off)
		}
	}
	return document.NewError(kind, c.src.Name(), msg, c.line, c.col, c.prevLine, c.prevCol, c.off)
}
