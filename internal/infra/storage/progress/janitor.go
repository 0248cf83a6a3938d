package progress

import (
	"context"
	"time"
)

// Purger хранилище, которое умеет удалять просроченные снимки
// Redis не нужен: записи истекают по TTL
type Purger interface {
	Purge(ctx context.Context, before time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RunJanitor периодически удаляет прогресс старше ttl, пока не отменён ctx
func RunJanitor(ctx context.Context, purger Purger, ttl, interval time.Duration, logger Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := purger.Purge(ctx, now.Add(-ttl))
			if err != nil {
				logger.Error("Progress janitor: purge failed: %v", err)
				continue
			}
			if n > 0 {
				logger.Info("Progress janitor: purged %d stale checkout snapshots", n)
			}
		}
	}
}
