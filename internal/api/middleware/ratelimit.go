package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
)

const msgRateLimited = "Too many payment attempts. Please wait a moment and try again."

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов к платёжным эндпоинтам на одного пользователя
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	now      func() time.Time
	logger   Logger
}

func NewRateLimiter(requestsPerSecond float64, burst int, logger Logger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
		logger:   logger,
	}
}

func (l *RateLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = l.now()
	return e.limiter
}

// Middleware отклоняет запрос с 429, если лимит пользователя исчерпан.
// Ключ берётся из сессии, для анонимных запросов используется IP.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := handlers.UserKey(r)
		if !ok {
			key = clientIP(r)
		}

		if !l.get(key).AllowN(l.now(), 1) {
			l.logger.Warn("RateLimit: limit exceeded: key=%s, path=%s", key, r.URL.Path)
			handlers.RespondPaymentError(w, http.StatusTooManyRequests, msgRateLimited, handlers.ActionRetry)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Purge удаляет лимитеры, не использовавшиеся с момента before
func (l *RateLimiter) Purge(_ context.Context, before time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var removed int64
	for key, e := range l.limiters {
		if e.lastSeen.Before(before) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed, nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
