// Package document implements an in-memory JSON document: a single owning
// container holding structure-of-arrays arenas for numbers, integers,
// object/array headers, and an interned string table, addressed through
// 32-bit tagged Value handles.
package document

import "github.com/rpcpool/injson/document/strtab"

// objHeader is the backing store for one Object value: a small-buffer
// optimized sequence of KeyValue entries in insertion order.
type objHeader struct {
	body smallBuffer[KeyValue]
}

// arrHeader is the backing store for one Array value: a small-buffer
// optimized sequence of Value entries in insertion order.
type arrHeader struct {
	body smallBuffer[Value]
}

// Document owns every entity referenced by Value handles it has produced:
// the number/integer/object/array arenas and the interned string table. A
// Value is only valid while the Document that produced it is alive and has
// not been cleared, and is never valid against a different Document.
type Document struct {
	nums   arena[float64]
	ints   arena[int64]
	objs   arena[objHeader]
	arrays arena[arrHeader]
	strs   *strtab.Table
	root   Value
}

// New returns an empty document whose root is Nil.
func New() *Document {
	return &Document{strs: strtab.New(), root: Nil}
}

// Clear resets the document to the empty state, releasing every arena and
// the string table. Any Value handles obtained before Clear become
// invalid.
func (d *Document) Clear() {
	d.nums = arena[float64]{}
	d.ints = arena[int64]{}
	d.objs = arena[objHeader]{}
	d.arrays = arena[arrHeader]{}
	d.strs = strtab.New()
	d.root = Nil
}

// Root returns the document's root value.
func (d *Document) Root() Value { return d.root }

// SetRoot replaces the document's root value directly. Used by callers
// that build a document programmatically without going through
// RootObject/RootArray.
func (d *Document) SetRoot(v Value) { d.root = v }

// RootObject returns the root as an Object, creating and installing a
// fresh empty object as the root first if the root is currently Nil. It
// reports an error if the root is already a non-object, non-nil value.
func (d *Document) RootObject() (Object, error) {
	if d.root.IsNil() {
		o, err := d.NewObject()
		if err != nil {
			return Object{}, err
		}
		d.root = o.Value()
		return o, nil
	}
	if d.root.Tag() != TagObject {
		return Object{}, &Error{Kind: ErrWrongType, Message: "document root is not an object"}
	}
	return Object{doc: d, idx: d.root.index()}, nil
}

// RootArray is the Array analogue of RootObject.
func (d *Document) RootArray() (Array, error) {
	if d.root.IsNil() {
		a, err := d.NewArray()
		if err != nil {
			return Array{}, err
		}
		d.root = a.Value()
		return a, nil
	}
	if d.root.Tag() != TagArray {
		return Array{}, &Error{Kind: ErrWrongType, Message: "document root is not an array"}
	}
	return Array{doc: d, idx: d.root.index()}, nil
}

// NewObject allocates a fresh, empty object not (yet) attached anywhere in
// the document.
func (d *Document) NewObject() (Object, error) {
	idx, err := d.objs.append(objHeader{})
	if err != nil {
		return Object{}, err
	}
	return Object{doc: d, idx: idx}, nil
}

// NewArray allocates a fresh, empty array not (yet) attached anywhere in
// the document.
func (d *Document) NewArray() (Array, error) {
	idx, err := d.arrays.append(arrHeader{})
	if err != nil {
		return Array{}, err
	}
	return Array{doc: d, idx: idx}, nil
}

// AddIntValue stores n in the appropriate arena, using ShortInt for values
// that fit inline, and returns the resulting handle.
func (d *Document) AddIntValue(n int64) (Value, error) {
	if v, ok := ShortIntValue(n); ok {
		return v, nil
	}
	idx, err := d.ints.append(n)
	if err != nil {
		return 0, err
	}
	return intValue(idx), nil
}

// AddNumValue stores f in the number arena and returns the resulting
// handle.
func (d *Document) AddNumValue(f float64) (Value, error) {
	idx, err := d.nums.append(f)
	if err != nil {
		return 0, err
	}
	return numValue(idx), nil
}

// AddStringValue interns s and returns the resulting handle.
func (d *Document) AddStringValue(s string) Value {
	idx := d.strs.InternString(s)
	return strValue(idx)
}

// Object binds v to an Object cursor if v is an Object value.
func (d *Document) Object(v Value) (Object, bool) {
	if v.Tag() != TagObject {
		return Object{}, false
	}
	return Object{doc: d, idx: v.index()}, true
}

// Array binds v to an Array cursor if v is an Array value.
func (d *Document) Array(v Value) (Array, bool) {
	if v.Tag() != TagArray {
		return Array{}, false
	}
	return Array{doc: d, idx: v.index()}, true
}

// String returns the string payload of a Str value.
func (d *Document) String(v Value) (string, bool) {
	if v.Tag() != TagStr {
		return "", false
	}
	return d.strs.At(v.index()).String(), true
}

// Int returns the integer payload of a ShortInt or Int value.
func (d *Document) Int(v Value) (int64, bool) {
	switch v.Tag() {
	case TagShortInt:
		return v.shortIntPayload(), true
	case TagInt:
		return *d.ints.at(v.index()), true
	default:
		return 0, false
	}
}

// Num returns the float payload of a Num value.
func (d *Document) Num(v Value) (float64, bool) {
	if v.Tag() != TagNum {
		return 0, false
	}
	return *d.nums.at(v.index()), true
}

// Bool returns the boolean payload of a Bool value.
func (d *Document) Bool(v Value) (bool, bool) {
	if v.Tag() != TagBool {
		return false, false
	}
	return v.boolPayload(), true
}

// Float is a convenience that returns a Num or (ShortInt/Int promoted to
// float64) value as a float64, for callers that don't care about the
// distinction.
func (d *Document) Float(v Value) (float64, bool) {
	switch v.Tag() {
	case TagNum:
		return *d.nums.at(v.index()), true
	case TagShortInt:
		return float64(v.shortIntPayload()), true
	case TagInt:
		return float64(*d.ints.at(v.index())), true
	default:
		return 0, false
	}
}
