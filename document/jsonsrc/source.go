// Package jsonsrc implements the parser's byte-source abstraction: an
// in-memory buffer, an *os.File, a user-supplied read callback, or any
// io.Reader. The buffer is read in place; the other three are refilled
// through a fixed-size internal window exactly like the spec's
// file/callback inputs.
package jsonsrc

import (
	"bufio"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// windowSize is the refill chunk size for file/reader/callback sources.
const windowSize = 4096

// ReadFunc is the user-callback byte-source contract: it copies up to
// len(dst) bytes into dst and returns how many bytes were copied.
// Returning fewer than len(dst), and eventually zero repeatedly, signals
// end of input.
type ReadFunc func(dst []byte) (n int)

// Source is a single-pass, buffered byte source with one-byte lookahead,
// as consumed by the parser's tokenizer.
type Source struct {
	name string

	// buf/buffered mode: the whole input is already in memory.
	buf []byte
	pos int

	// refill mode: pull more bytes into window on demand.
	refill  func(dst []byte) (int, error)
	window  []byte
	winLen  int
	winPos  int
	eof     bool
	started bool

	checksum *xxhash.Digest
	closer   io.Closer
	ioErr    error
}

// Close releases any underlying resource (an opened file), if the source
// owns one. Safe to call on sources that don't.
func (s *Source) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// FromBuffer wraps an in-memory byte slice. name is used in error
// messages (truncated to 255 bytes by the caller).
func FromBuffer(name string, b []byte) *Source {
	return &Source{name: name, buf: b}
}

// FromFile wraps an *os.File, refilling a 4096-byte window on demand.
func FromFile(name string, f *os.File) *Source {
	r := bufio.NewReaderSize(f, windowSize)
	return fromReadFunc(name, func(dst []byte) (int, error) { return r.Read(dst) })
}

// FromPath opens path and wraps it like FromFile. The caller is
// responsible for closing the returned Source via Close.
func FromPath(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := FromFile(path, f)
	s.closer = f
	return s, nil
}

// FromReader wraps any io.Reader.
func FromReader(name string, r io.Reader) *Source {
	return fromReadFunc(name, func(dst []byte) (int, error) { return r.Read(dst) })
}

// FromCallback wraps a user ReadFunc matching the spec's byte-source
// contract (§6.2): returning fewer bytes than requested, and eventually
// zero repeatedly, is end-of-input, never an error.
func FromCallback(name string, fn ReadFunc) *Source {
	return fromReadFunc(name, func(dst []byte) (int, error) { return fn(dst), nil })
}

func fromReadFunc(name string, fn func(dst []byte) (int, error)) *Source {
	return &Source{name: name, refill: fn, window: make([]byte, windowSize)}
}

// Name returns the source's identifier for error reporting.
func (s *Source) Name() string { return s.name }

// WithChecksum enables xxhash tracking of every byte read through the
// source, available afterward via Checksum. A diagnostics aid, not part
// of the parse result.
func (s *Source) WithChecksum() *Source {
	s.checksum = xxhash.New()
	return s
}

// Checksum returns the xxhash64 of every byte consumed so far, or 0 if
// WithChecksum was never called.
func (s *Source) Checksum() uint64 {
	if s.checksum == nil {
		return 0
	}
	return s.checksum.Sum64()
}

func (s *Source) track(b byte) {
	if s.checksum != nil {
		s.checksum.Write([]byte{b})
	}
}

// bufferedMode reports whether the source holds the entire input already.
func (s *Source) bufferedMode() bool { return s.refill == nil }

// Peek returns the current byte and true, or (0, false) at end of input.
func (s *Source) Peek() (byte, bool) {
	if s.bufferedMode() {
		if s.pos >= len(s.buf) {
			return 0, false
		}
		return s.buf[s.pos], true
	}
	if err := s.ensureWindow(); err != nil || s.winPos >= s.winLen {
		return 0, false
	}
	return s.window[s.winPos], true
}

// Advance consumes and returns the current byte, or false at end of
// input.
func (s *Source) Advance() (byte, bool) {
	if s.bufferedMode() {
		if s.pos >= len(s.buf) {
			return 0, false
		}
		b := s.buf[s.pos]
		s.pos++
		s.track(b)
		return b, true
	}
	if err := s.ensureWindow(); err != nil || s.winPos >= s.winLen {
		return 0, false
	}
	b := s.window[s.winPos]
	s.winPos++
	s.track(b)
	return b, true
}

func (s *Source) ensureWindow() error {
	for s.winPos >= s.winLen && !s.eof {
		n, err := s.refill(s.window)
		s.winLen = n
		s.winPos = 0
		if n == 0 {
			if err != nil && err != io.EOF {
				s.ioErr = err
				s.eof = true
				return err
			}
			s.eof = true
		}
	}
	return nil
}

// Err returns the first non-EOF read error encountered, or nil if the
// source has hit a clean end-of-input (or hasn't been exhausted yet). A
// parser that observes end-of-input should consult Err before reporting
// an ordinary "unexpected end of input" error, since a failed read looks
// identical to clean EOF from Peek/Advance's boolean signature.
func (s *Source) Err() error { return s.ioErr }
