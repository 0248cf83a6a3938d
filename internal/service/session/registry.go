package session

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-HotelCheckout/internal/service/checkout"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/draft"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/payment"
)

// Session состояние одного пользователя: черновик, визард и платёжный адаптер
type Session struct {
	Key      string
	Draft    *draft.Store
	Checkout *checkout.Machine
	Payment  *payment.Adapter

	lastSeen time.Time
}

// Config параметры создаваемых сессий
type Config struct {
	Checkout checkout.Options
	Clock    TimeProvider
}

// Registry реестр пользовательских сессий
// Сессия создаётся при первом обращении, визард при этом восстанавливает сохранённый прогресс
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	// creating склеивает параллельное создание сессии одного ключа
	creating singleflight.Group

	progress checkout.ProgressStore
	backend  payment.BackendClient
	metrics  Metrics
	cfg      Config
	logger   Logger
}

// NewRegistry создает пустой реестр
func NewRegistry(progress checkout.ProgressStore, backend payment.BackendClient, metrics Metrics, cfg Config, logger Logger) *Registry {
	if cfg.Clock == nil {
		cfg.Clock = &checkout.RealTimeProvider{}
	}
	if metrics != nil {
		cfg.Checkout.Metrics = metrics
	}
	return &Registry{
		sessions: make(map[string]*Session),
		progress: progress,
		backend:  backend,
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
	}
}

// Get возвращает сессию пользователя, создавая её при необходимости
// Восстановление прогресса идёт без глобальной блокировки: медленное хранилище не задерживает других пользователей
func (r *Registry) Get(ctx context.Context, key string) *Session {
	if s, ok := r.touch(key); ok {
		return s
	}

	v, _, _ := r.creating.Do(key, func() (interface{}, error) {
		if s, ok := r.touch(key); ok {
			return s, nil
		}

		s := r.newSession(ctx, key)

		r.mu.Lock()
		defer r.mu.Unlock()
		if existing, ok := r.sessions[key]; ok {
			return existing, nil
		}
		r.sessions[key] = s
		r.logger.Info("Session: created for key=%s", key)
		return s, nil
	})
	return v.(*Session)
}

func (r *Registry) touch(key string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if ok {
		s.lastSeen = r.cfg.Clock.Now()
	}
	return s, ok
}

func (r *Registry) newSession(ctx context.Context, key string) *Session {
	store := draft.NewStore()
	var recorder payment.Recorder
	if r.metrics != nil {
		recorder = r.metrics
	}
	return &Session{
		Key:      key,
		Draft:    store,
		Checkout: checkout.NewMachine(ctx, key, r.progress, store, r.cfg.Checkout, r.logger),
		Payment:  payment.NewAdapter(r.backend, recorder, r.logger),
		lastSeen: r.cfg.Clock.Now(),
	}
}

// Drop удаляет сессию из памяти (logout)
// Сохранённый прогресс не трогается: при следующем входе визард продолжит с того же шага
func (r *Registry) Drop(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		return
	}
	s.Payment.Abandon()
	delete(r.sessions, key)
	r.logger.Info("Session: dropped key=%s", key)
}

// Len количество активных сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Purge выгружает сессии, к которым не обращались с момента before
// Реализует progress.Purger, поэтому запускается тем же janitor-ом
func (r *Registry) Purge(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for key, s := range r.sessions {
		if s.lastSeen.Before(before) {
			s.Payment.Abandon()
			delete(r.sessions, key)
			n++
		}
	}
	return n, nil
}
