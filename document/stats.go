package document

import "unsafe"

// ArenaStats reports used and reserved byte totals for one arena.
type ArenaStats struct {
	Used     int64
	Reserved int64
}

// MemoryStats reports per-arena byte usage for a document, for
// diagnostics and the CLI's --stats flag.
type MemoryStats struct {
	Nums    ArenaStats
	Ints    ArenaStats
	Objects ArenaStats
	Arrays  ArenaStats
	Strings ArenaStats
}

// TotalUsed sums the used bytes across every arena.
func (s MemoryStats) TotalUsed() int64 {
	return s.Nums.Used + s.Ints.Used + s.Objects.Used + s.Arrays.Used + s.Strings.Used
}

// TotalReserved sums the reserved bytes across every arena.
func (s MemoryStats) TotalReserved() int64 {
	return s.Nums.Reserved + s.Ints.Reserved + s.Objects.Reserved + s.Arrays.Reserved + s.Strings.Reserved
}

// MemoryStats computes the document's current per-arena memory usage.
func (d *Document) MemoryStats() MemoryStats {
	var s MemoryStats

	s.Nums = ArenaStats{Used: int64(d.nums.usedBytes()), Reserved: int64(d.nums.reservedBytes())}
	s.Ints = ArenaStats{Used: int64(d.ints.usedBytes()), Reserved: int64(d.ints.reservedBytes())}

	s.Objects = arenaBodyStats(d.objs.items, func(h objHeader) (int, int, bool, int) {
		return h.body.length, h.body.capacity, h.body.usesHeap(), kvSize
	})
	s.Arrays = arenaBodyStats(d.arrays.items, func(h arrHeader) (int, int, bool, int) {
		return h.body.length, h.body.capacity, h.body.usesHeap(), valSize
	})

	used, reserved := d.strs.Stats()
	s.Strings = ArenaStats{Used: used, Reserved: reserved}
	return s
}

const (
	kvSize  = int(unsafe.Sizeof(KeyValue{}))
	valSize = int(unsafe.Sizeof(Value(0)))
)

// arenaBodyStats sums the inline-header cost plus any heap-backed body
// storage across every header in an arena.
func arenaBodyStats[T any](items []T, describe func(T) (length, capacity int, heap bool, elemSize int)) ArenaStats {
	var s ArenaStats
	var zero T
	headerSize := int64(unsafe.Sizeof(zero))
	s.Used = int64(len(items)) * headerSize
	s.Reserved = int64(cap(items)) * headerSize
	for _, item := range items {
		length, capacity, usesHeap, elemSize := describe(item)
		if usesHeap {
			s.Used += int64(length) * int64(elemSize)
			s.Reserved += int64(capacity) * int64(elemSize)
		}
	}
	return s
}
