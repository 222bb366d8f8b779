package todo

import "sync"

// MemoryRepository keeps the encoded envelope in memory. SaveErr, when set,
// is returned by Save instead of storing anything.
type MemoryRepository struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	SaveErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load() (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.data == nil {
		return Snapshot{}, ErrNoSnapshot
	}
	return DecodeSnapshot(r.data)
}

func (r *MemoryRepository) Save(snap Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.SaveErr != nil {
		return r.SaveErr
	}
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	r.data = data
	r.saves++
	return nil
}

// SetRaw replaces the stored bytes, e.g. to simulate a corrupt snapshot
func (r *MemoryRepository) SetRaw(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
}

// Raw returns the stored bytes
func (r *MemoryRepository) Raw() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data
}

// Saves counts successful writes
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
