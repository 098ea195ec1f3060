package core

import (
	"sort"
	"sync"
)

// StateRW is the host runtime's persistent key-value store (spec §6): a
// typed-key map with stable iteration order. The registry itself reads
// TradePairsHashByIndex[0..TradePairsIndex) one key at a time through Get.
type StateRW interface {
	Get(key []byte) ([]byte, bool)
	Set(key, value []byte)
	Delete(key []byte)
	// Iterate calls fn for every key with the given prefix, in ascending
	// key order, until fn returns false.
	Iterate(prefix []byte, fn func(key, value []byte) bool)
}

// MemoryState is a reference StateRW for standalone/demo/test use, backed
// by a sorted slice of keys so Iterate visits keys in a stable, ascending
// order.
type MemoryState struct {
	mu   sync.RWMutex
	data map[string][]byte
	keys []string // kept sorted
}

// NewMemoryState returns an empty store.
func NewMemoryState() *MemoryState {
	return &MemoryState{data: make(map[string][]byte)}
}

func (s *MemoryState) Get(key []byte) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[string(key)]
	return v, ok
}

func (s *MemoryState) Set(key, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := string(key)
	if _, exists := s.data[k]; !exists {
		i := sort.SearchStrings(s.keys, k)
		s.keys = append(s.keys, "")
		copy(s.keys[i+1:], s.keys[i:])
		s.keys[i] = k
	}
	s.data[k] = value
}

func (s *MemoryState) Delete(key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := string(key)
	if _, exists := s.data[k]; !exists {
		return
	}
	delete(s.data, k)
	i := sort.SearchStrings(s.keys, k)
	if i < len(s.keys) && s.keys[i] == k {
		s.keys = append(s.keys[:i], s.keys[i+1:]...)
	}
}

func (s *MemoryState) Iterate(prefix []byte, fn func(key, value []byte) bool) {
	s.mu.RLock()
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	s.mu.RUnlock()

	p := string(prefix)
	for _, k := range keys {
		if len(k) < len(p) || k[:len(p)] != p {
			continue
		}
		s.mu.RLock()
		v, ok := s.data[k]
		s.mu.RUnlock()
		if !ok {
			continue
		}
		if !fn([]byte(k), v) {
			return
		}
	}
}
