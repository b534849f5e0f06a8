package document

// Object is a non-owning cursor over one object value's entries. It is
// only valid while its Document is alive and unmodified in ways that
// invalidate arena indices (only Clear does that).
type Object struct {
	doc *Document
	idx uint32
}

func (o Object) header() *objHeader { return o.doc.objs.at(o.idx) }

// Value returns the Object as a Value handle.
func (o Object) Value() Value { return objValue(o.idx) }

// Len returns the number of key/value entries, including duplicate keys.
func (o Object) Len() int { return o.header().body.length }

// Reserve preallocates capacity for at least n total entries.
func (o Object) Reserve(n int) { o.header().body.reserve(n) }

// Truncate shrinks the object's backing storage to exactly its current
// length, releasing any unused capacity. Called automatically by the
// parser when a composite finishes parsing.
func (o Object) Truncate() { o.header().body.truncate() }

// addKey appends a new KeyValue for key with value Nil and returns its
// index, interning key into the string table unless it qualifies as a
// short (inline) key.
func (o Object) addKey(key string) int {
	h := o.header()
	var kv KeyValue
	kb := []byte(key)
	if isShortKey(kb) {
		kv.key = inlineKeySlot(kb)
	} else {
		kv.key = indexedKeySlot(o.doc.strs.InternString(key))
	}
	h.body.append(kv)
	return h.body.length - 1
}

func (o Object) setAt(i int, v Value) { o.header().body.at(i).Value = v }

// Add appends key mapped to Nil and returns the new entry's position,
// for callers (the parser) that want to set the value afterward.
func (o Object) Add(key string) int { return o.addKey(key) }

// Set overwrites the value of the entry previously returned by Add.
func (o Object) Set(pos int, v Value) { o.setAt(pos, v) }

// AddNull appends key mapped to Nil.
func (o Object) AddNull(key string) { o.addKey(key) }

// AddBool appends key mapped to a Bool value.
func (o Object) AddBool(key string, b bool) { o.setAt(o.addKey(key), BoolValue(b)) }

// AddString appends key mapped to a Str value.
func (o Object) AddString(key, s string) { o.setAt(o.addKey(key), o.doc.AddStringValue(s)) }

// AddInt appends key mapped to a ShortInt or Int value.
func (o Object) AddInt(key string, n int64) error {
	v, err := o.doc.AddIntValue(n)
	if err != nil {
		return err
	}
	o.setAt(o.addKey(key), v)
	return nil
}

// AddNum appends key mapped to a Num value.
func (o Object) AddNum(key string, f float64) error {
	v, err := o.doc.AddNumValue(f)
	if err != nil {
		return err
	}
	o.setAt(o.addKey(key), v)
	return nil
}

// AddObject appends key mapped to a fresh nested object and returns a
// cursor to it.
func (o Object) AddObject(key string) (Object, error) {
	child, err := o.doc.NewObject()
	if err != nil {
		return Object{}, err
	}
	o.setAt(o.addKey(key), child.Value())
	return child, nil
}

// AddArray appends key mapped to a fresh nested array and returns a cursor
// to it.
func (o Object) AddArray(key string) (Array, error) {
	child, err := o.doc.NewArray()
	if err != nil {
		return Array{}, err
	}
	o.setAt(o.addKey(key), child.Value())
	return child, nil
}

// Find returns the value of the first entry whose key equals key, scanning
// linearly from the start. Keys shorter than 4 bytes are compared inline;
// longer keys are resolved through a single string-table lookup first.
func (o Object) Find(key string) (Value, bool) {
	v, _, ok := o.FindFrom(key, 0)
	return v, ok
}

// FindFrom is the "find next from index" variant: it scans starting at
// position start and returns the matching entry's position alongside its
// value.
func (o Object) FindFrom(key string, start int) (Value, int, bool) {
	h := o.header()
	kb := []byte(key)
	entries := h.body.entries()
	if isShortKey(kb) {
		for i := start; i < len(entries); i++ {
			if entries[i].matchesInline(kb) {
				return entries[i].Value, i, true
			}
		}
		return 0, -1, false
	}
	idx, ok := o.doc.strs.Lookup(kb)
	if !ok {
		return 0, -1, false
	}
	for i := start; i < len(entries); i++ {
		if entries[i].matchesIndex(idx) {
			return entries[i].Value, i, true
		}
	}
	return 0, -1, false
}

// Entry is one (key, value) pair produced by iteration.
type Entry struct {
	Key   string
	Value Value
}

// Entries materializes every entry in insertion order. For iteration
// without allocation, use Each.
func (o Object) Entries() []Entry {
	h := o.header()
	entries := h.body.entries()
	out := make([]Entry, len(entries))
	for i := range entries {
		out[i] = Entry{Key: entries[i].keyString(o.doc), Value: entries[i].Value}
	}
	return out
}

// Each calls fn for every entry in insertion order, stopping early if fn
// returns false.
func (o Object) Each(fn func(key string, v Value) bool) {
	h := o.header()
	entries := h.body.entries()
	for i := range entries {
		if !fn(entries[i].keyString(o.doc), entries[i].Value) {
			return
		}
	}
}

// At returns the i-th entry's key and value.
func (o Object) At(i int) Entry {
	kv := o.header().body.at(i)
	return Entry{Key: kv.keyString(o.doc), Value: kv.Value}
}
