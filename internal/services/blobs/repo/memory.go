// Package repo holds the blob store backends
package repo

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory keeps documents in process. Used by tests and BLOBS_BACKEND=memory
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty store
func NewMemory() *Memory { return &Memory{data: map[string][]byte{}} }

// Get implements domain.Port
func (m *Memory) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append(json.RawMessage(nil), b...), true, nil
}

// Set implements domain.Port
func (m *Memory) Set(_ context.Context, key string, value json.RawMessage) error {
	m.mu.Lock()
	m.data[key] = append([]byte(nil), value...)
	m.mu.Unlock()
	return nil
}
