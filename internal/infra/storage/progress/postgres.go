package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/pkg/psqlbuilder"
)

const table = "checkout_progress"

// PostgresStore хранилище прогресса в PostgreSQL (таблица checkout_progress)
type PostgresStore struct {
	db DBExecutor
}

// NewPostgresStore создает новый экземпляр репозитория прогресса
func NewPostgresStore(db DBExecutor) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get получает прогресс по ключу пользователя
func (r *PostgresStore) Get(ctx context.Context, key string) (*domain.CheckoutProgress, error) {
	query, args, err := psqlbuilder.Select("step", "form_data", "saved_at").
		From(table).
		Where(squirrel.Eq{"user_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		p        domain.CheckoutProgress
		step     int
		formData []byte
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&step, &formData, &p.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("%w: Get - scan: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(formData, &p.FormData); err != nil {
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrDecode, key, err)
	}
	p.Step = domain.CheckoutStep(step)

	return &p, nil
}

// Save вставляет или обновляет прогресс (upsert по user_key)
func (r *PostgresStore) Save(ctx context.Context, key string, p domain.CheckoutProgress) error {
	formData, err := json.Marshal(p.FormData)
	if err != nil {
		return fmt.Errorf("%w: Save - key=%s: %v", ErrEncode, key, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("user_key", "step", "form_data", "saved_at").
		Values(key, int(p.Step), formData, p.Timestamp).
		Suffix("ON CONFLICT (user_key) DO UPDATE SET step = EXCLUDED.step, form_data = EXCLUDED.form_data, saved_at = EXCLUDED.saved_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete удаляет прогресс пользователя
func (r *PostgresStore) Delete(ctx context.Context, key string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"user_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// Purge удаляет просроченные снимки, возвращает количество удалённых строк
func (r *PostgresStore) Purge(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Lt{"saved_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Purge - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Purge - execute delete: %v", ErrExecQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Purge - rows affected: %v", ErrExecQuery, err)
	}
	return n, nil
}
