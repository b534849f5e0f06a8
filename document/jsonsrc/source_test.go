package jsonsrc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s *Source) []byte {
	var out []byte
	for {
		b, ok := s.Advance()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

func TestFromBufferPeekAdvance(t *testing.T) {
	s := FromBuffer("<buf>", []byte("ab"))
	b, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)

	b, ok = s.Advance()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)

	b, ok = s.Advance()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)

	_, ok = s.Advance()
	assert.False(t, ok)
}

func TestFromReaderRefillsAcrossWindow(t *testing.T) {
	input := strings.Repeat("x", windowSize*3+17)
	s := FromReader("<reader>", strings.NewReader(input))
	out := drain(s)
	assert.Equal(t, input, string(out))
}

func TestFromCallbackEndOfInputOnShortRead(t *testing.T) {
	data := []byte("hello")
	pos := 0
	s := FromCallback("<cb>", func(dst []byte) int {
		n := copy(dst, data[pos:])
		pos += n
		return n
	})
	out := drain(s)
	assert.Equal(t, "hello", string(out))
}

func TestChecksumTracksConsumedBytes(t *testing.T) {
	s := FromBuffer("<buf>", []byte("hello")).WithChecksum()
	drain(s)
	assert.NotZero(t, s.Checksum())
}

func TestChecksumZeroWithoutOptIn(t *testing.T) {
	s := FromBuffer("<buf>", []byte("hello"))
	drain(s)
	assert.Zero(t, s.Checksum())
}

type failingReader struct {
	n   int
	err error
}

func (r *failingReader) Read(dst []byte) (int, error) {
	if r.n > 0 {
		n := copy(dst, strings.Repeat("a", r.n))
		r.n = 0
		return n, nil
	}
	return 0, r.err
}

func TestErrSurfacesUnderlyingReadFailure(t *testing.T) {
	sentinel := assert.AnError
	s := FromReader("<reader>", &failingReader{n: 3, err: sentinel})
	assert.Nil(t, s.Err())
	drain(s)
	assert.Equal(t, sentinel, s.Err())
}

func TestErrNilOnCleanEOF(t *testing.T) {
	s := FromBuffer("<buf>", []byte("ab"))
	drain(s)
	assert.Nil(t, s.Err())

	s2 := FromReader("<reader>", strings.NewReader("ab"))
	drain(s2)
	assert.Nil(t, s2.Err())
}
