package settings

import (
	"context"
	"sync"
)

// Store is the settings-storage slot.
type Store interface {
	LoadSettings(ctx context.Context) ([]byte, error)
	SaveSettings(ctx context.Context, data []byte) error
}

// Saver persists the current settings. Implementations usually debounce.
type Saver interface {
	Save()
}

// SaverFunc adapts a function to Saver.
type SaverFunc func()

// Save implements Saver.
func (f SaverFunc) Save() { f() }

// MemoryStore keeps the slot in memory.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// LoadSettings implements Store.
func (m *MemoryStore) LoadSettings(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...), nil
}

// SaveSettings implements Store.
func (m *MemoryStore) SaveSettings(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}
