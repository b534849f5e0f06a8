package document

// keySlot is the explicit discriminated union recommended in place of the
// original bit-packed "inline key" trick: a key is either stored inline (by
// length < 4) or as an index into the document's string table. Keeping
// this as its own type means Value's tag bits stay clean (see DESIGN.md).
type keySlot struct {
	indexed   bool
	inlineLen uint8
	inline    [3]byte
	index     uint32
}

func inlineKeySlot(key []byte) keySlot {
	var s keySlot
	s.inlineLen = uint8(len(key))
	copy(s.inline[:], key)
	return s
}

func indexedKeySlot(idx uint32) keySlot {
	return keySlot{indexed: true, index: idx}
}

// isShortKey reports whether key qualifies for inline storage.
func isShortKey(key []byte) bool { return len(key) < 4 }

// KeyValue is one entry of an object's body: a key slot plus the value it
// maps to.
type KeyValue struct {
	key   keySlot
	Value Value
}

// matchesInline reports whether kv is a short (inline) key equal to key.
// Used for keys of length < 4, which are never interned and so can only be
// matched by direct byte comparison.
func (kv *KeyValue) matchesInline(key []byte) bool {
	if kv.key.indexed || int(kv.key.inlineLen) != len(key) {
		return false
	}
	for i := 0; i < len(key); i++ {
		if kv.key.inline[i] != key[i] {
			return false
		}
	}
	return true
}

// matchesIndex reports whether kv is an interned key with string-table
// index idx. Used for keys of length >= 4, after a single string-table
// lookup has resolved the target index.
func (kv *KeyValue) matchesIndex(idx uint32) bool {
	return kv.key.indexed && kv.key.index == idx
}

func (kv *KeyValue) keyBytes(doc *Document) []byte {
	if kv.key.indexed {
		return doc.strs.At(kv.key.index).Bytes()
	}
	return kv.key.inline[:kv.key.inlineLen]
}

func (kv *KeyValue) keyString(doc *Document) string { return string(kv.keyBytes(doc)) }
