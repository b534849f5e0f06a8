package document

import "unsafe"

// arena is an appendable, growable pool of homogeneous entities addressed
// by index, used for the document's top-level nums/ints/objs/arrays pools.
type arena[T any] struct {
	items []T
}

// growCap implements the spec's arena growth policy:
//
//	newCap = max(max(13, requested), min(cap*phi+2, cap+32Mi))
func growCap(curCap, requested int) int {
	const minCap = 13
	const maxStep = 32 << 20 // 32 Mi
	const phi = 1.618

	floor := requested
	if minCap > floor {
		floor = minCap
	}

	grown := int(float64(curCap)*phi) + 2
	if step := curCap + maxStep; step < grown {
		grown = step
	}

	if grown > floor {
		return grown
	}
	return floor
}

func (a *arena[T]) reserve(extra int) {
	need := len(a.items) + extra
	if need <= cap(a.items) {
		return
	}
	newCap := growCap(cap(a.items), need)
	buf := make([]T, len(a.items), newCap)
	copy(buf, a.items)
	a.items = buf
}

// append adds v to the arena and returns its index, or an error if the
// arena has reached the 2^28 entries a Value handle can address.
func (a *arena[T]) append(v T) (uint32, error) {
	if len(a.items) > maxIndex {
		return 0, &Error{Kind: ErrDocumentTooLarge, Message: "arena exceeds 2^28 entries"}
	}
	a.reserve(1)
	idx := len(a.items)
	a.items = append(a.items, v)
	return uint32(idx), nil
}

func (a *arena[T]) at(idx uint32) *T { return &a.items[idx] }

func (a *arena[T]) len() int { return len(a.items) }

func (a *arena[T]) usedBytes() int {
	var zero T
	return len(a.items) * int(unsafe.Sizeof(zero))
}

func (a *arena[T]) reservedBytes() int {
	var zero T
	return cap(a.items) * int(unsafe.Sizeof(zero))
}
