package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneProducesEqualButIndependentDocument(t *testing.T) {
	d := New()
	o, err := d.RootObject()
	require.NoError(t, err)
	require.NoError(t, o.AddInt("a", 1))
	arr, err := o.AddArray("arr")
	require.NoError(t, err)
	require.NoError(t, arr.PushInt(1))
	require.NoError(t, arr.PushInt(2))

	clone, err := d.Clone()
	require.NoError(t, err)
	assert.Equal(t, 0, d.Compare(clone))

	// Mutating the clone must not affect the original.
	cloneObj, ok := clone.Object(clone.Root())
	require.True(t, ok)
	require.NoError(t, cloneObj.AddInt("b", 2))

	assert.NotEqual(t, 0, d.Compare(clone))
	origObj, ok := d.Object(d.Root())
	require.True(t, ok)
	assert.Equal(t, 2, origObj.Len())
}

func TestCopyIntoInternsStringsInDestination(t *testing.T) {
	src := New()
	srcObj, err := src.RootObject()
	require.NoError(t, err)
	srcObj.AddString("greeting", "hello")

	dst := New()
	v, err := CopyInto(dst, src, src.Root())
	require.NoError(t, err)

	dstObj, ok := dst.Object(v)
	require.True(t, ok)
	sv, ok := dstObj.Find("greeting")
	require.True(t, ok)
	s, ok := dst.String(sv)
	require.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestCopyWithinSameDocumentIsShallow(t *testing.T) {
	d := New()
	arr, err := d.NewArray()
	require.NoError(t, err)
	require.NoError(t, arr.PushInt(1))
	require.NoError(t, arr.PushInt(2))

	copyVal, err := d.CopyWithin(arr.Value())
	require.NoError(t, err)

	copied, ok := d.Array(copyVal)
	require.True(t, ok)
	assert.Equal(t, arr.Len(), copied.Len())
	assert.Equal(t, 0, Compare(d, arr.Value(), d, copyVal))
}

// TestCopyWithinHeapBackedDoesNotAliasBackingArray exercises the point past
// smallBufferCap where the body migrates off the inline array: the copy
// must own its own backing storage, not share the original's heap slice,
// or pushing to one silently overwrites the other's entries.
func TestCopyWithinHeapBackedDoesNotAliasBackingArray(t *testing.T) {
	d := New()
	arr, err := d.NewArray()
	require.NoError(t, err)
	// Push past smallBufferCap so the body migrates to heap storage
	// before CopyWithin ever runs.
	for i := int64(0); i < smallBufferCap+1; i++ {
		require.NoError(t, arr.PushInt(i))
	}

	copyVal, err := d.CopyWithin(arr.Value())
	require.NoError(t, err)
	copied, ok := d.Array(copyVal)
	require.True(t, ok)
	assert.Equal(t, 0, Compare(d, arr.Value(), d, copyVal))

	// Push more onto both sides; each array's storage must be independent.
	require.NoError(t, arr.PushInt(100))
	require.NoError(t, copied.PushInt(200))

	require.Equal(t, smallBufferCap+2, arr.Len())
	require.Equal(t, smallBufferCap+2, copied.Len())

	last, _ := d.Int(arr.At(arr.Len() - 1))
	assert.Equal(t, int64(100), last)

	copiedLast, _ := d.Int(copied.At(copied.Len() - 1))
	assert.Equal(t, int64(200), copiedLast)
}
