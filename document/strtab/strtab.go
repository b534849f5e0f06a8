// Package strtab implements the document's interned string table: a
// growable pool of unique strings addressed by index, backed by an
// open-addressed-style bucket index keyed on a MurmurHash3 hash.
//
// Strings shorter than 7 bytes are stored inline inside their
// InternedString record; longer strings spill to a heap-allocated copy.
// Every bucket count the table ever grows to is prime, and the table is
// rehashed (never re-hashed byte-by-byte — only the stored hash is reused)
// whenever the load factor would exceed 0.8.
package strtab

import (
	"bytes"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"
)

// inlineCap is the longest string length stored directly inside an
// InternedString without a heap allocation.
const inlineCap = 6

// InternedString is one entry of the table's backing pool.
type InternedString struct {
	length uint32
	hash   uint32
	inline [inlineCap]byte
	heap   []byte
}

// Bytes returns the string's bytes. Stored bytes are never modified after
// insertion and rehash never copies string records, so the returned slice
// keeps its contents for the life of the table even when a later insert
// moves the InternedString record itself to a larger pool.
func (s *InternedString) Bytes() []byte {
	if s.length <= inlineCap {
		return s.inline[:s.length]
	}
	return s.heap
}

func (s *InternedString) String() string { return string(s.Bytes()) }

// Len returns the string's length in bytes.
func (s *InternedString) Len() int { return int(s.length) }

// Table is a per-document interned string pool with a hash-bucket index.
type Table struct {
	seed    uint32
	strings []InternedString
	buckets [][]uint32 // bucket -> string indices
}

// New creates an empty string table with a fresh per-table random seed,
// derived from wall-clock time folded together with a random UUID through
// the table's own hash function, matching the per-document seed scheme
// described for the hash table (spec: seed from clock()+time()).
func New() *Table {
	var seedBytes [24]byte
	now := uint64(time.Now().UnixNano())
	for i := 0; i < 8; i++ {
		seedBytes[i] = byte(now >> (8 * i))
	}
	id := uuid.New()
	copy(seedBytes[8:], id[:])
	seed := murmur3.Sum32WithSeed(seedBytes[:], 0)
	return &Table{seed: seed}
}

// Seed returns the table's per-document hash seed.
func (t *Table) Seed() uint32 { return t.seed }

// Len returns the number of distinct strings stored.
func (t *Table) Len() int { return len(t.strings) }

// Count is a synonym for Len, kept for API symmetry with Object/Array.Len.
func (t *Table) Count() int { return t.Len() }

// At returns the interned string stored at index i.
func (t *Table) At(i uint32) *InternedString { return &t.strings[i] }

// Stats reports used and reserved byte totals for the string pool and its
// bucket index, for Document.MemoryStats.
func (t *Table) Stats() (used, reserved int64) {
	const entrySize = int64(unsafe.Sizeof(InternedString{}))
	used = int64(len(t.strings)) * entrySize
	reserved = int64(cap(t.strings)) * entrySize
	for i := range t.strings {
		if t.strings[i].length > inlineCap {
			used += int64(len(t.strings[i].heap))
			reserved += int64(cap(t.strings[i].heap))
		}
	}
	for _, b := range t.buckets {
		used += int64(len(b)) * 4
		reserved += int64(cap(b)) * 4
	}
	return used, reserved
}

// hashOf returns the MurmurHash3-32 hash of the first min(len(b), 32)
// bytes of b, seeded with the table's per-document seed.
func (t *Table) hashOf(b []byte) uint32 {
	if len(b) > 32 {
		b = b[:32]
	}
	return murmur3.Sum32WithSeed(b, t.seed)
}

// Lookup returns the index of an already-interned string matching b, or
// ok=false if no such string has been inserted yet.
func (t *Table) Lookup(b []byte) (idx uint32, ok bool) {
	if len(t.buckets) == 0 {
		return 0, false
	}
	h := t.hashOf(b)
	bucket := t.buckets[int(h)%len(t.buckets)]
	for _, si := range bucket {
		s := &t.strings[si]
		if s.hash == h && s.length == uint32(len(b)) && bytes.Equal(s.Bytes(), b) {
			return si, true
		}
	}
	return 0, false
}

// Intern returns the index of b in the table, inserting it if this is the
// first occurrence.
func (t *Table) Intern(b []byte) uint32 {
	h := t.hashOf(b)
	if len(t.buckets) > 0 {
		bucket := t.buckets[int(h)%len(t.buckets)]
		for _, si := range bucket {
			s := &t.strings[si]
			if s.hash == h && s.length == uint32(len(b)) && bytes.Equal(s.Bytes(), b) {
				return si
			}
		}
	}

	t.growIfNeeded(len(t.strings) + 1)

	idx := uint32(len(t.strings))
	var is InternedString
	is.length = uint32(len(b))
	is.hash = h
	if len(b) <= inlineCap {
		copy(is.inline[:], b)
	} else {
		buf := make([]byte, len(b))
		copy(buf, b)
		is.heap = buf
	}
	t.strings = append(t.strings, is)

	bi := int(h) % len(t.buckets)
	t.buckets[bi] = appendBucket(t.buckets[bi], idx)
	return idx
}

// InternString is a convenience wrapper around Intern for Go strings.
func (t *Table) InternString(s string) uint32 { return t.Intern([]byte(s)) }

// appendBucket appends idx to a bucket's slot list, growing a full list's
// capacity by the golden ratio (cap*phi+2) rather than by Go's default
// append growth.
func appendBucket(bucket []uint32, idx uint32) []uint32 {
	if len(bucket) == cap(bucket) {
		grown := make([]uint32, len(bucket), int(float64(cap(bucket))*1.618)+2)
		copy(grown, bucket)
		bucket = grown
	}
	return append(bucket, idx)
}

// loadFactor returns the fraction of non-empty buckets.
func (t *Table) loadFactor() float64 {
	if len(t.buckets) == 0 {
		return 0
	}
	nonEmpty := 0
	for _, b := range t.buckets {
		if len(b) > 0 {
			nonEmpty++
		}
	}
	return float64(nonEmpty) / float64(len(t.buckets))
}

// growIfNeeded rehashes the table to a larger prime bucket count whenever
// the load factor would exceed 0.8 for the given target string count. An
// empty table (bucket_count == 0) never triggers a load-factor check; it
// is simply sized for the first insert.
func (t *Table) growIfNeeded(targetStrings int) {
	if len(t.buckets) == 0 {
		t.rehash(nextPrime(13))
		return
	}
	// Project the load factor assuming the new string lands in a fresh
	// bucket; this is the worst case and keeps the bound conservative.
	projected := float64(countNonEmpty(t.buckets)+1) / float64(len(t.buckets))
	if projected <= 0.8 {
		return
	}
	// Target a load factor around 0.3 after rehash.
	targetBuckets := int(float64(targetStrings) / 0.3)
	if targetBuckets < len(t.buckets)*2 {
		targetBuckets = len(t.buckets) * 2
	}
	t.rehash(nextPrime(targetBuckets))
}

func countNonEmpty(buckets [][]uint32) int {
	n := 0
	for _, b := range buckets {
		if len(b) > 0 {
			n++
		}
	}
	return n
}

// rehash reassigns every stored string to a bucket in a freshly sized
// table, reusing each string's stored hash rather than rehashing its
// bytes.
func (t *Table) rehash(bucketCount int) {
	newBuckets := make([][]uint32, bucketCount)
	for i := range t.strings {
		h := t.strings[i].hash
		bi := int(h) % bucketCount
		newBuckets[bi] = appendBucket(newBuckets[bi], uint32(i))
	}
	t.buckets = newBuckets
}

// BucketCount returns the current number of buckets (always zero or
// prime).
func (t *Table) BucketCount() int { return len(t.buckets) }

// LoadFactor exposes the current load factor for diagnostics and tests.
func (t *Table) LoadFactor() float64 { return t.loadFactor() }

// nextPrime returns the smallest prime >= n, starting the search from the
// spec's documented small-prime table before falling back to a 6k±1 sieve
// for larger values.
func nextPrime(n int) int {
	small := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	for _, p := range small {
		if p >= n {
			return p
		}
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
