package document

// CopyInto deep-copies the value v of srcDoc into dst, interning any
// strings (including object keys) into dst's own string table, and
// returns the corresponding Value in dst. Scalars that carry no arena
// reference (Nil, Bool, ShortInt) are returned unchanged since their
// encoding does not depend on which document they were produced by.
func CopyInto(dst *Document, srcDoc *Document, v Value) (Value, error) {
	switch v.Tag() {
	case TagNil, TagBool, TagShortInt:
		return v, nil
	case TagInt:
		n, _ := srcDoc.Int(v)
		return dst.AddIntValue(n)
	case TagNum:
		f, _ := srcDoc.Num(v)
		return dst.AddNumValue(f)
	case TagStr:
		s, _ := srcDoc.String(v)
		return dst.AddStringValue(s), nil
	case TagArray:
		src, _ := srcDoc.Array(v)
		out, err := dst.NewArray()
		if err != nil {
			return 0, err
		}
		out.Reserve(src.Len())
		for i := 0; i < src.Len(); i++ {
			cv, err := CopyInto(dst, srcDoc, src.At(i))
			if err != nil {
				return 0, err
			}
			out.Push(cv)
		}
		out.Truncate()
		return out.Value(), nil
	case TagObject:
		src, _ := srcDoc.Object(v)
		out, err := dst.NewObject()
		if err != nil {
			return 0, err
		}
		out.Reserve(src.Len())
		for i := 0; i < src.Len(); i++ {
			e := src.At(i)
			cv, err := CopyInto(dst, srcDoc, e.Value)
			if err != nil {
				return 0, err
			}
			out.Set(out.Add(e.Key), cv)
		}
		out.Truncate()
		return out.Value(), nil
	default:
		return v, nil
	}
}

// Clone deep-copies the entire document (root and every reachable value)
// into a fresh Document with its own arenas and string table.
func (d *Document) Clone() (*Document, error) {
	nd := New()
	nv, err := CopyInto(nd, d, d.root)
	if err != nil {
		return nil, err
	}
	nd.root = nv
	return nd, nil
}

// CopyWithin duplicates an object or array header within the same
// document: a shallow memcpy of the header's backing store (the entries
// themselves are not deep-copied; values referencing other arena entries
// still refer to the same underlying entities) into storage of its own,
// matching the spec's "shallow memcpy" same-document copy semantics.
// Scalars are returned unchanged.
func (d *Document) CopyWithin(v Value) (Value, error) {
	switch v.Tag() {
	case TagObject:
		src := d.objs.at(v.index())
		idx, err := d.objs.append(objHeader{body: src.body.clone()})
		if err != nil {
			return 0, err
		}
		return objValue(idx), nil
	case TagArray:
		src := d.arrays.at(v.index())
		idx, err := d.arrays.append(arrHeader{body: src.body.clone()})
		if err != nil {
			return 0, err
		}
		return arrValue(idx), nil
	default:
		return v, nil
	}
}
