package treedist

import "sync"

// Store keeps computed distances. Entries are write-once: saving a key that
// is already present must leave the stored value unchanged.
type Store interface {
	// Load returns the distance stored for key and whether it was present.
	Load(key PairKey) (float64, bool, error)

	// Save records distance for key unless the key is already stored.
	Save(key PairKey, distance float64) error

	// Len reports the number of stored entries.
	Len() (int, error)
}

// MemoryStore is the default map-backed Store.
type MemoryStore struct {
	mu        sync.RWMutex
	distances map[PairKey]float64
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{distances: make(map[PairKey]float64)}
}

func (s *MemoryStore) Load(key PairKey) (float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.distances[key]
	return d, ok, nil
}

func (s *MemoryStore) Save(key PairKey, distance float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.distances[key]; !ok {
		s.distances[key] = distance
	}
	return nil
}

func (s *MemoryStore) Len() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.distances), nil
}

var _ Store = (*MemoryStore)(nil)
