package checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
)

// ProgressStore хранилище прогресса checkout с ключом по пользователю
// Get возвращает progress.ErrProgressNotFound, если снимка нет
type ProgressStore interface {
	Get(ctx context.Context, key string) (*domain.CheckoutProgress, error)
	Save(ctx context.Context, key string, p domain.CheckoutProgress) error
	Delete(ctx context.Context, key string) error
}

// DraftStore черновик бронирования текущей сессии
type DraftStore interface {
	Get() domain.BookingDraft
	Clear()
}

// TransitionRecorder метрики переходов визарда
type TransitionRecorder interface {
	CheckoutTransition(step string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopRecorder struct{}

func (nopRecorder) CheckoutTransition(string) {}
