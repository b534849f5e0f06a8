// Package jsonprint implements the pretty/compact JSON serializer: a
// write-callback sink, escape-aware string encoding, 17-significant-digit
// number formatting, and composite (object/array) layout driven by a small
// set of boolean flags.
package jsonprint

import (
	"io"

	"github.com/rpcpool/injson/document"
)

// Flag selects a serializer behavior. Flags combine with bitwise OR.
type Flag uint8

const (
	// Pretty enables 4-space-per-depth indentation, a newline after every
	// member/element, and a single space after each colon. Without it
	// output is fully compact.
	Pretty Flag = 1 << iota

	// EscapeUnicode emits non-ASCII codepoints as \uXXXX escapes (a
	// surrogate pair above U+FFFF) instead of raw UTF-8 bytes.
	EscapeUnicode

	// NewlineWindows uses "\r\n" instead of "\n" for Pretty's newlines.
	// Has no effect without Pretty.
	NewlineWindows
)

func (f Flag) has(bit Flag) bool { return f&bit != 0 }

// WriteFunc is the output sink contract: it must write all of p and return
// len(p) on success. Returning a short count (n != len(p)) aborts printing
// with document.ErrShortWrite, mirroring the parser's byte-source
// contract in reverse.
type WriteFunc func(p []byte) (n int, err error)

// sink accumulates the total byte count written and turns short writes
// into an error, standing in for the spec's non-local exit on a failed
// write.
type sink struct {
	write WriteFunc
	n     int64
}

func newSink(w WriteFunc) *sink { return &sink{write: w} }

func (s *sink) writeBytes(p []byte) error {
	n, err := s.write(p)
	s.n += int64(n)
	if err != nil {
		return &document.Error{Kind: document.ErrIO, Message: err.Error()}
	}
	if n != len(p) {
		return &document.Error{Kind: document.ErrShortWrite, Message: "short write"}
	}
	return nil
}

func (s *sink) writeString(str string) error { return s.writeBytes([]byte(str)) }
func (s *sink) writeByte(b byte) error        { return s.writeBytes([]byte{b}) }

// fromWriter adapts an io.Writer to WriteFunc.
func fromWriter(w io.Writer) WriteFunc { return w.Write }
