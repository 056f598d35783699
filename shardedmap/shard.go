package shardedmap

// A shard is logically a map from uint32 to uint64, used within one bucket
// and protected by the bucket's lock. It is not safe for concurrent use on
// its own.
type shard struct {
	m map[uint32]uint64
}

func newShard() *shard {
	return &shard{m: make(map[uint32]uint64)}
}

func (s *shard) Load(key uint32) (uint64, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *shard) Store(key uint32, v uint64) {
	s.m[key] = v
}

func (s *shard) Delete(key uint32) {
	delete(s.m, key)
}
