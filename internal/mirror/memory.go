package mirror

import (
	"context"
	"sync"

	"github.com/AlpianPPLG/workvibe/internal/models"
)

// MemoryMirror holds the snapshot in process memory. Used by tests and by
// ephemeral runs that want no persistence at all. It still round-trips
// through the snapshot codec so the encode path is always exercised.
type MemoryMirror struct {
	mu   sync.Mutex
	data []byte
}

func NewMemory() *MemoryMirror {
	return &MemoryMirror{}
}

func (m *MemoryMirror) Load(_ context.Context) ([]models.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return DecodeSnapshot(m.data)
}

func (m *MemoryMirror) Save(_ context.Context, members []models.Member) error {
	data, err := EncodeSnapshot(members)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryMirror) Close() {}
