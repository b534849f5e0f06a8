package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentRootIsNil(t *testing.T) {
	d := New()
	assert.True(t, d.Root().IsNil())
}

func TestRootObjectCreatesOnNilRoot(t *testing.T) {
	d := New()
	o, err := d.RootObject()
	require.NoError(t, err)
	assert.Equal(t, TagObject, d.Root().Tag())
	assert.Equal(t, 0, o.Len())
}

func TestRootObjectRejectsWrongType(t *testing.T) {
	d := New()
	_, err := d.RootArray()
	require.NoError(t, err)

	_, err = d.RootObject()
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, ErrWrongType, derr.Kind)
}

func TestObjectAddFindEntries(t *testing.T) {
	d := New()
	o, err := d.RootObject()
	require.NoError(t, err)

	o.AddBool("ok", true)
	o.AddString("name", "hello world")
	require.NoError(t, o.AddInt("count", 42))
	require.NoError(t, o.AddNum("ratio", 1.5))
	o.AddNull("missing")

	v, ok := o.Find("name")
	require.True(t, ok)
	s, ok := d.String(v)
	require.True(t, ok)
	assert.Equal(t, "hello world", s)

	v, ok = o.Find("count")
	require.True(t, ok)
	n, ok := d.Int(v)
	require.True(t, ok)
	assert.EqualValues(t, 42, n)

	_, ok = o.Find("nope")
	assert.False(t, ok)

	assert.Equal(t, 5, o.Len())
}

func TestObjectShortKeysAreNotInterned(t *testing.T) {
	d := New()
	o, err := d.RootObject()
	require.NoError(t, err)

	require.NoError(t, o.AddInt("a", 1))
	require.NoError(t, o.AddInt("ab", 2))
	require.NoError(t, o.AddInt("longkey", 3))

	// Only "longkey" reaches the string table.
	assert.Equal(t, 1, d.strs.Len())

	v, ok := o.Find("a")
	require.True(t, ok)
	n, _ := d.Int(v)
	assert.EqualValues(t, 1, n)

	v, ok = o.Find("longkey")
	require.True(t, ok)
	n, _ = d.Int(v)
	assert.EqualValues(t, 3, n)
}

func TestObjectDuplicateKeysFindReturnsFirst(t *testing.T) {
	d := New()
	o, err := d.RootObject()
	require.NoError(t, err)

	require.NoError(t, o.AddInt("dup", 1))
	require.NoError(t, o.AddInt("dup", 2))

	v, ok := o.Find("dup")
	require.True(t, ok)
	n, _ := d.Int(v)
	assert.EqualValues(t, 1, n)

	_, pos, ok := o.FindFrom("dup", 1)
	require.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestNestedObjectLookup(t *testing.T) {
	d := New()
	a, err := d.RootObject()
	require.NoError(t, err)

	b, err := a.AddObject("b")
	require.NoError(t, err)
	c, err := b.AddObject("c")
	require.NoError(t, err)
	require.NoError(t, c.AddInt("v", 42))

	bv, ok := a.Find("b")
	require.True(t, ok)
	bObj, ok := d.Object(bv)
	require.True(t, ok)
	cv, ok := bObj.Find("c")
	require.True(t, ok)
	cObj, ok := d.Object(cv)
	require.True(t, ok)
	vv, ok := cObj.Find("v")
	require.True(t, ok)
	n, ok := d.Int(vv)
	require.True(t, ok)
	assert.EqualValues(t, 42, n)
}

func TestArrayPushAndIterate(t *testing.T) {
	d := New()
	arr, err := d.RootArray()
	require.NoError(t, err)

	arr.PushBool(true)
	arr.PushNull()
	require.NoError(t, arr.PushInt(7))
	require.NoError(t, arr.PushNum(2.5))
	arr.PushString("x")

	require.Equal(t, 5, arr.Len())

	b, ok := d.Bool(arr.At(0))
	require.True(t, ok)
	assert.True(t, b)

	assert.True(t, arr.At(1).IsNil())

	n, ok := d.Int(arr.At(2))
	require.True(t, ok)
	assert.EqualValues(t, 7, n)
}

func TestArrayEachStopsEarly(t *testing.T) {
	d := New()
	arr, err := d.RootArray()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, arr.PushInt(int64(i)))
	}

	seen := 0
	arr.Each(func(i int, v Value) bool {
		seen++
		return i < 2
	})
	assert.Equal(t, 3, seen)
}

func TestClearInvalidatesDocument(t *testing.T) {
	d := New()
	o, err := d.RootObject()
	require.NoError(t, err)
	require.NoError(t, o.AddInt("k", 1))
	assert.Equal(t, 1, o.Len())

	d.Clear()
	assert.True(t, d.Root().IsNil())
}

func TestAddIntValueUsesShortIntWhenInRange(t *testing.T) {
	d := New()
	v, err := d.AddIntValue(10)
	require.NoError(t, err)
	assert.Equal(t, TagShortInt, v.Tag())

	v, err = d.AddIntValue(MaxShortInt + 1)
	require.NoError(t, err)
	assert.Equal(t, TagInt, v.Tag())
}

func TestFloatPromotesIntegerKinds(t *testing.T) {
	d := New()
	v, err := d.AddIntValue(3)
	require.NoError(t, err)
	f, ok := d.Float(v)
	require.True(t, ok)
	assert.Equal(t, 3.0, f)
}
