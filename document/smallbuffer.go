package document

// smallBufferCap is the inline capacity shared by object and array bodies
// before they migrate to a heap-backed slice.
const smallBufferCap = 6

// smallBuffer is the small-buffer-optimized backing store shared by object
// and array headers: up to smallBufferCap entries live inline with no heap
// allocation; beyond that, entries live in a growable heap slice sized by
// the same golden-ratio policy as the document's top-level arenas.
type smallBuffer[T any] struct {
	length   int
	capacity int
	inline   [smallBufferCap]T
	heap     []T
}

func (b *smallBuffer[T]) entries() []T {
	if b.heap != nil {
		return b.heap[:b.length]
	}
	return b.inline[:b.length]
}

func (b *smallBuffer[T]) at(i int) *T {
	if b.heap != nil {
		return &b.heap[i]
	}
	return &b.inline[i]
}

// reserve ensures room for n total entries, migrating to the heap the
// first time n exceeds smallBufferCap.
func (b *smallBuffer[T]) reserve(n int) {
	if n <= b.capacity {
		return
	}
	if b.heap == nil && n <= smallBufferCap {
		b.capacity = smallBufferCap
		return
	}
	newCap := growCap(b.capacity, n)
	buf := make([]T, b.length, newCap)
	copy(buf, b.entries())
	b.heap = buf
	b.capacity = newCap
}

func (b *smallBuffer[T]) append(v T) {
	b.reserve(b.length + 1)
	if b.heap != nil {
		b.heap = append(b.heap, v)
	} else {
		b.inline[b.length] = v
	}
	b.length++
}

// truncate shrinks the backing store to exactly length entries, migrating
// back to inline storage if length now fits within smallBufferCap.
func (b *smallBuffer[T]) truncate() {
	if b.length <= smallBufferCap {
		if b.heap != nil {
			copy(b.inline[:b.length], b.heap[:b.length])
			b.heap = nil
		}
		b.capacity = smallBufferCap
		return
	}
	if cap(b.heap) != b.length {
		buf := make([]T, b.length)
		copy(buf, b.heap[:b.length])
		b.heap = buf
	}
	b.capacity = b.length
}

func (b *smallBuffer[T]) usesHeap() bool { return b.heap != nil }

// clone returns a copy of b backed by its own storage: the inline array
// already copies by value, but a heap-backed body needs a freshly
// allocated slice so the clone and the original never alias the same
// backing array (a bare struct copy would leave both pointing at the same
// heap slice, corrupting one on a write through the other).
func (b smallBuffer[T]) clone() smallBuffer[T] {
	if b.heap != nil {
		heap := make([]T, len(b.heap))
		copy(heap, b.heap)
		b.heap = heap
	}
	return b
}
