package draft

import (
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
)

// Store хранилище черновика бронирования одной пользовательской сессии
// Валидацию не выполняет: за неё отвечает вызывающий шаг (select_room, checkout)
type Store struct {
	mu    sync.RWMutex
	draft domain.BookingDraft
	newID func() string
}

// NewStore создает пустое хранилище черновика
func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Set сливает поля патча в текущий черновик (last write wins per field)
// Черновику без nonce назначается новый nonce
func (s *Store) Set(patch domain.DraftPatch) domain.BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = s.draft.Merge(patch)
	if s.draft.Nonce == "" {
		s.draft.Nonce = s.newID()
	}
	return s.draft
}

// Clear сбрасывает черновик
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = domain.BookingDraft{}
}

// Get возвращает копию текущего черновика (пустой после Clear)
func (s *Store) Get() domain.BookingDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.draft
}
