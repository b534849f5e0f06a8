package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageFormat(t *testing.T) {
	e := NewError(ErrMissingColon, "input.json", `expected ':' after key "foo", found ','`, 2, 5, 2, 1, 42)
	assert.Equal(t, `input.json:3:5: expected ':' after key "foo", found ','`, e.Error())
}

func TestErrorSourceAndMessageTruncation(t *testing.T) {
	longSrc := strings.Repeat("x", 300)
	longMsg := strings.Repeat("y", 300)
	e := NewError(ErrIO, longSrc, longMsg, 0, 0, 0, 0, 0)
	assert.Len(t, e.Source, 255)
	assert.Len(t, e.Message, 255)
}

func TestErrorKindStringNeverEmpty(t *testing.T) {
	for k := ErrUnknown; k <= ErrShortWrite; k++ {
		assert.NotEmpty(t, k.String())
	}
}
