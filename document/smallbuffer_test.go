package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmallBufferStaysInlineUnderCap(t *testing.T) {
	var b smallBuffer[int]
	for i := 0; i < smallBufferCap; i++ {
		b.append(i)
	}
	assert.False(t, b.usesHeap())
	assert.Equal(t, smallBufferCap, b.length)
}

func TestSmallBufferMigratesToHeapPastCap(t *testing.T) {
	var b smallBuffer[int]
	for i := 0; i < smallBufferCap+1; i++ {
		b.append(i)
	}
	assert.True(t, b.usesHeap())
	for i, v := range b.entries() {
		assert.Equal(t, i, v)
	}
}

func TestSmallBufferTruncateMigratesBackToInline(t *testing.T) {
	var b smallBuffer[int]
	for i := 0; i < smallBufferCap+3; i++ {
		b.append(i)
	}
	require_ := assert.New(t)
	require_.True(b.usesHeap())

	b.length = smallBufferCap - 1
	b.truncate()
	require_.False(b.usesHeap())
	require_.Equal(smallBufferCap-1, b.length)
	for i, v := range b.entries() {
		require_.Equal(i, v)
	}
}

func TestSmallBufferTruncateStaysHeapWhenStillOverCap(t *testing.T) {
	var b smallBuffer[int]
	for i := 0; i < smallBufferCap+5; i++ {
		b.append(i)
	}
	b.length = smallBufferCap + 2
	b.truncate()
	assert.True(t, b.usesHeap())
	assert.Equal(t, smallBufferCap+2, len(b.entries()))
}
