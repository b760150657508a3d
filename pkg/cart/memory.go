package cart

import (
	"context"
	"sync"

	"github.com/vitrine-store/gateway/pkg/models"
)

// MemoryMirror keeps cart state in process memory. Used for single-process
// runs without Redis and throughout the tests.
type MemoryMirror struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

func NewMemoryMirror() *MemoryMirror {
	return &MemoryMirror{carts: make(map[string][]models.CartItem)}
}

func (m *MemoryMirror) Get(_ context.Context, userID string) ([]models.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := m.carts[userID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (m *MemoryMirror) Put(_ context.Context, userID string, items []models.CartItem) error {
	stored := make([]models.CartItem, len(items))
	copy(stored, items)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[userID] = stored
	return nil
}

func (m *MemoryMirror) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
	return nil
}
