// Package hashmap provides a generic open-hashing map with an explicit
// bucket layout and load-factor driven resizing.
package hashmap

import (
	"errors"
	"hash/maphash"
	"iter"
)

const (
	// DefaultCapacity is the bucket count of a new map.
	DefaultCapacity = 16

	// DefaultUpperLoadFactor triggers growth when exceeded after an insert.
	DefaultUpperLoadFactor = 0.75

	// DefaultLowerLoadFactor triggers shrinking when undercut after an erase.
	DefaultLowerLoadFactor = 0.25
)

// ErrKeyNotFound is returned by At when the key is not in the map.
var ErrKeyNotFound = errors.New("key not found")

type entry[K comparable, V any] struct {
	key   K
	value V
}

// HashMap maps keys to values using separate chaining. The zero value is not
// usable; create maps with New.
type HashMap[K comparable, V any] struct {
	seed    maphash.Seed
	buckets [][]entry[K, V]
	size    int
	upper   float64
	lower   float64
}

// New returns an empty map with DefaultCapacity buckets.
func New[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{
		seed:    maphash.MakeSeed(),
		buckets: make([][]entry[K, V], DefaultCapacity),
		upper:   DefaultUpperLoadFactor,
		lower:   DefaultLowerLoadFactor,
	}
}

// Size returns the number of entries.
func (m *HashMap[K, V]) Size() int {
	return m.size
}

// Capacity returns the number of buckets.
func (m *HashMap[K, V]) Capacity() int {
	return len(m.buckets)
}

// Empty reports whether the map holds no entries.
func (m *HashMap[K, V]) Empty() bool {
	return m.size == 0
}

// LoadFactor returns size divided by capacity.
func (m *HashMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// Insert adds the key only if it is absent and reports whether it did.
func (m *HashMap[K, V]) Insert(key K, value V) bool {
	if m.ContainsKey(key) {
		return false
	}
	m.add(key, value)
	return true
}

// Set stores value under key, overwriting any previous value.
func (m *HashMap[K, V]) Set(key K, value V) {
	b := m.index(key, len(m.buckets))
	for i := range m.buckets[b] {
		if m.buckets[b][i].key == key {
			m.buckets[b][i].value = value
			return
		}
	}
	m.add(key, value)
}

// ContainsKey reports whether key is present.
func (m *HashMap[K, V]) ContainsKey(key K) bool {
	return m.BucketIndex(key) >= 0
}

// At returns the value stored under key or ErrKeyNotFound.
func (m *HashMap[K, V]) At(key K) (V, error) {
	b := m.index(key, len(m.buckets))
	for _, e := range m.buckets[b] {
		if e.key == key {
			return e.value, nil
		}
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Get is At without the error, for lookups where absence is expected.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	v, err := m.At(key)
	return v, err == nil
}

// Erase removes key and reports whether it was present.
func (m *HashMap[K, V]) Erase(key K) bool {
	b := m.index(key, len(m.buckets))
	for i, e := range m.buckets[b] {
		if e.key != key {
			continue
		}
		last := len(m.buckets[b]) - 1
		m.buckets[b][i] = m.buckets[b][last]
		m.buckets[b][last] = entry[K, V]{}
		m.buckets[b] = m.buckets[b][:last]
		m.size--

		capacity := len(m.buckets)
		for capacity > 1 && float64(m.size)/float64(capacity) < m.lower {
			capacity /= 2
		}
		if capacity != len(m.buckets) {
			m.rehash(capacity)
		}
		return true
	}
	return false
}

// Clear removes all entries and keeps the current capacity.
func (m *HashMap[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// BucketIndex returns the bucket holding key, or -1 if key is absent.
func (m *HashMap[K, V]) BucketIndex(key K) int {
	b := m.index(key, len(m.buckets))
	for _, e := range m.buckets[b] {
		if e.key == key {
			return b
		}
	}
	return -1
}

// BucketSize returns the number of entries in the bucket key hashes to,
// whether or not key itself is present.
func (m *HashMap[K, V]) BucketSize(key K) int {
	return len(m.buckets[m.index(key, len(m.buckets))])
}

// All iterates over every entry in bucket order.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Equal reports whether both maps hold the same keys with equal values.
func Equal[K, V comparable](a, b *HashMap[K, V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for k, v := range a.All() {
		got, ok := b.Get(k)
		if !ok || got != v {
			return false
		}
	}
	return true
}

func (m *HashMap[K, V]) add(key K, value V) {
	m.size++
	capacity := len(m.buckets)
	for float64(m.size)/float64(capacity) > m.upper {
		capacity *= 2
	}
	if capacity != len(m.buckets) {
		m.rehash(capacity)
	}
	b := m.index(key, len(m.buckets))
	m.buckets[b] = append(m.buckets[b], entry[K, V]{key: key, value: value})
}

func (m *HashMap[K, V]) rehash(capacity int) {
	buckets := make([][]entry[K, V], capacity)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			b := m.index(e.key, capacity)
			buckets[b] = append(buckets[b], e)
		}
	}
	m.buckets = buckets
}

// capacity is always a power of two.
func (m *HashMap[K, V]) index(key K, capacity int) int {
	h := maphash.Comparable(m.seed, key)
	return int(h & uint64(capacity-1)) //nolint:gosec // masked to capacity
}
