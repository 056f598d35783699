// Package shardedmap implements a map from uint32 to uint64 that is safe for
// concurrent use. Keys are hashed into a fixed number of buckets, each
// guarded by its own lock, so operations on different buckets do not contend.
package shardedmap

import (
	"syncprim/mutex"
)

func hash(key uint32) uint32 {
	// djb2 with a large multiplier instead of 33
	var h = uint32(5381)
	k := uint32(17000069)
	h = (h * k) + (key & 0xff)
	h = (h * k) + ((key >> 8) & 0xff)
	h = (h * k) + ((key >> 16) & 0xff)
	h = (h * k) + ((key >> 24) & 0xff)
	return h
}

type bucket struct {
	mu      *mutex.Mutex
	entries *shard
}

// A Map is a sharded concurrent map. The number of buckets is fixed at
// construction; the map does not rehash.
type Map struct {
	buckets []*bucket
}

func newBucket() *bucket {
	return &bucket{
		mu:      mutex.New(),
		entries: newShard(),
	}
}

// New creates a Map with numBuckets buckets.
func New(numBuckets uint32) *Map {
	var buckets = []*bucket{}
	for i := uint32(0); i < numBuckets; i++ {
		buckets = append(buckets, newBucket())
	}
	return &Map{buckets: buckets}
}

func (m *Map) bucketFor(key uint32) *bucket {
	idx := uint64(hash(key) % uint32(len(m.buckets)))
	return m.buckets[idx]
}

// Load returns the value stored for key and whether it was present.
func (m *Map) Load(key uint32) (uint64, bool) {
	b := m.bucketFor(key)
	b.mu.Lock()
	v, ok := b.entries.Load(key)
	b.mu.Unlock()
	return v, ok
}

// Store sets the value for key.
func (m *Map) Store(key uint32, val uint64) {
	b := m.bucketFor(key)
	b.mu.Lock()
	b.entries.Store(key, val)
	b.mu.Unlock()
}

// Delete removes the value for key, if any.
func (m *Map) Delete(key uint32) {
	b := m.bucketFor(key)
	b.mu.Lock()
	b.entries.Delete(key)
	b.mu.Unlock()
}
