package handlers

import (
	"context"
	"net/http"
)

type userKeyCtx struct{}

// WithUserKey кладёт ключ сессии пользователя в контекст (заполняет middleware.Auth)
func WithUserKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, userKeyCtx{}, key)
}

// UserKey возвращает ключ сессии пользователя запроса
func UserKey(r *http.Request) (string, bool) {
	key, ok := r.Context().Value(userKeyCtx{}).(string)
	return key, ok && key != ""
}
