package document

// Array is a non-owning cursor over one array value's elements.
type Array struct {
	doc *Document
	idx uint32
}

func (a Array) header() *arrHeader { return a.doc.arrays.at(a.idx) }

// Value returns the Array as a Value handle.
func (a Array) Value() Value { return arrValue(a.idx) }

// Len returns the number of elements.
func (a Array) Len() int { return a.header().body.length }

// Reserve preallocates capacity for at least n total elements.
func (a Array) Reserve(n int) { a.header().body.reserve(n) }

// Truncate shrinks the array's backing storage to exactly its current
// length.
func (a Array) Truncate() { a.header().body.truncate() }

// At returns the element at position i.
func (a Array) At(i int) Value { return *a.header().body.at(i) }

// Each calls fn for every element in order, stopping early if fn returns
// false.
func (a Array) Each(fn func(i int, v Value) bool) {
	entries := a.header().body.entries()
	for i := range entries {
		if !fn(i, entries[i]) {
			return
		}
	}
}

// Values materializes every element into a slice.
func (a Array) Values() []Value {
	entries := a.header().body.entries()
	out := make([]Value, len(entries))
	copy(out, entries)
	return out
}

// Push appends v to the array.
func (a Array) Push(v Value) { a.header().body.append(v) }

// PushNull appends Nil.
func (a Array) PushNull() { a.Push(Nil) }

// PushBool appends a Bool value.
func (a Array) PushBool(b bool) { a.Push(BoolValue(b)) }

// PushString appends a Str value, interning s.
func (a Array) PushString(s string) { a.Push(a.doc.AddStringValue(s)) }

// PushInt appends a ShortInt or Int value.
func (a Array) PushInt(n int64) error {
	v, err := a.doc.AddIntValue(n)
	if err != nil {
		return err
	}
	a.Push(v)
	return nil
}

// PushNum appends a Num value.
func (a Array) PushNum(f float64) error {
	v, err := a.doc.AddNumValue(f)
	if err != nil {
		return err
	}
	a.Push(v)
	return nil
}

// PushObject appends a fresh nested object and returns a cursor to it.
func (a Array) PushObject() (Object, error) {
	child, err := a.doc.NewObject()
	if err != nil {
		return Object{}, err
	}
	a.Push(child.Value())
	return child, nil
}

// PushArray appends a fresh nested array and returns a cursor to it.
func (a Array) PushArray() (Array, error) {
	child, err := a.doc.NewArray()
	if err != nil {
		return Array{}, err
	}
	a.Push(child.Value())
	return child, nil
}
