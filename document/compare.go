package document

// Compare performs a deep structural 3-way comparison between a value in
// document da and a value in document db, returning -1, 0, or +1.
// Differing type tags compare by tag ordinal; Nil values are always
// equal; Bool compares by bit; strings compare lexicographically with
// shorter-as-prefix ordering less; numbers promote to float64 unless both
// operands are integers; arrays and objects compare by length first, then
// element/entry-wise in insertion order (object keys are not compared).
func Compare(da *Document, a Value, db *Document, b Value) int {
	ta, tb := a.Tag(), b.Tag()
	isNumber := func(t Tag) bool { return t == TagShortInt || t == TagInt || t == TagNum }
	if ta != tb && !(isNumber(ta) && isNumber(tb)) {
		return cmpInt(int(ta), int(tb))
	}
	switch ta {
	case TagNil:
		return 0
	case TagBool:
		return cmpBool(a.boolPayload(), b.boolPayload())
	case TagShortInt, TagInt:
		if tb == TagShortInt || tb == TagInt {
			ai, _ := da.Int(a)
			bi, _ := db.Int(b)
			return cmpInt64(ai, bi)
		}
	case TagNum:
		if tb == TagNum {
			af, _ := da.Num(a)
			bf, _ := db.Num(b)
			return cmpFloat(af, bf)
		}
	case TagStr:
		as, _ := da.String(a)
		bs, _ := db.String(b)
		return cmpString(as, bs)
	case TagArray:
		aa, _ := da.Array(a)
		ba, _ := db.Array(b)
		if c := cmpInt(aa.Len(), ba.Len()); c != 0 {
			return c
		}
		for i := 0; i < aa.Len(); i++ {
			if c := Compare(da, aa.At(i), db, ba.At(i)); c != 0 {
				return c
			}
		}
		return 0
	case TagObject:
		ao, _ := da.Object(a)
		bo, _ := db.Object(b)
		if c := cmpInt(ao.Len(), bo.Len()); c != 0 {
			return c
		}
		for i := 0; i < ao.Len(); i++ {
			if c := Compare(da, ao.At(i).Value, db, bo.At(i).Value); c != 0 {
				return c
			}
		}
		return 0
	}
	// An integer (ShortInt or Int) against a Num: promote both to float64
	// per the spec's "otherwise promote both to Num" rule.
	af, _ := da.Float(a)
	bf, _ := db.Float(b)
	return cmpFloat(af, bf)
}

// Compare compares the roots of two documents.
func (d *Document) Compare(other *Document) int {
	return Compare(d, d.root, other, other.root)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	ai, bi := 0, 0
	if a {
		ai = 1
	}
	if b {
		bi = 1
	}
	return cmpInt(ai, bi)
}

func cmpString(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return cmpInt(len(a), len(b))
}
