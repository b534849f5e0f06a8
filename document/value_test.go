package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortIntValueRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		n    int64
	}{
		{"Zero", 0},
		{"One", 1},
		{"NegativeOne", -1},
		{"MaxShortInt", MaxShortInt},
		{"MinShortInt", MinShortInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ShortIntValue(tt.n)
			require.True(t, ok)
			assert.Equal(t, TagShortInt, v.Tag())
			assert.Equal(t, tt.n, v.shortIntPayload())
		})
	}
}

func TestShortIntValueOutOfRange(t *testing.T) {
	_, ok := ShortIntValue(MaxShortInt + 1)
	assert.False(t, ok)

	_, ok = ShortIntValue(MinShortInt - 1)
	assert.False(t, ok)
}

func TestBoolValue(t *testing.T) {
	v := BoolValue(true)
	assert.Equal(t, TagBool, v.Tag())
	assert.True(t, v.boolPayload())

	v = BoolValue(false)
	assert.Equal(t, TagBool, v.Tag())
	assert.False(t, v.boolPayload())
}

func TestNilValue(t *testing.T) {
	assert.True(t, Nil.IsNil())
	assert.Equal(t, TagNil, Nil.Tag())
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "object", TagObject.String())
	assert.Equal(t, "unknown", Tag(0xF).String())
}
