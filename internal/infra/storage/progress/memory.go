package progress

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
)

// MemoryStore хранилище прогресса в памяти процесса
// Подходит для одного инстанса и тестов
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]domain.CheckoutProgress
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]domain.CheckoutProgress)}
}

// Get возвращает сохранённый прогресс
func (s *MemoryStore) Get(_ context.Context, key string) (*domain.CheckoutProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[key]
	if !ok {
		return nil, ErrProgressNotFound
	}
	return &p, nil
}

// Save перезаписывает прогресс
func (s *MemoryStore) Save(_ context.Context, key string, p domain.CheckoutProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = p
	return nil
}

// Delete удаляет прогресс, отсутствие записи ошибкой не считается
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

// Purge удаляет записи, сохранённые раньше before
func (s *MemoryStore) Purge(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k, p := range s.items {
		if p.Timestamp.Before(before) {
			delete(s.items, k)
			n++
		}
	}
	return n, nil
}
