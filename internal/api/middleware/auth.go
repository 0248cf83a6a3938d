package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

const (
	msgMissingToken   = "Please sign in to continue"
	msgMalformedToken = "Invalid authorization header"
	msgExpiredToken   = "Your session has expired. Please sign in again."
	msgInvalidToken   = "Invalid session. Please sign in again."
)

var (
	// ErrTokenExpired токен просрочен по claim exp
	ErrTokenExpired = errors.New("auth: token expired")

	// ErrMalformedHeader заголовок Authorization не в формате "Bearer <token>"
	ErrMalformedHeader = errors.New("auth: malformed authorization header")

	// ErrInvalidToken подпись или формат JWT не прошли проверку
	ErrInvalidToken = errors.New("auth: invalid token")
)

// identityClaims claims, из которых берётся идентификатор пользователя (по приоритету)
var identityClaims = []string{"sub", "user_id", "id"}

// Authenticator выводит ключ сессии из Bearer токена.
// С секретом подпись JWT проверяется (HS256) и ключ строится по identity claim.
// Без секрета claims не читаются: ключ сессии это хеш самого токена.
type Authenticator struct {
	secret []byte
	now    func() time.Time
	logger Logger
}

// NewAuthenticator создает аутентификатор; пустой secret включает режим opaque-токенов
func NewAuthenticator(secret string, logger Logger) *Authenticator {
	return &Authenticator{secret: []byte(secret), now: time.Now, logger: logger}
}

// WithClock подменяет часы (для тестов)
func (a *Authenticator) WithClock(now func() time.Time) *Authenticator {
	a.now = now
	return a
}

// Middleware кладёт токен в контекст для бэкенд-клиента и ключ сессии для хендлеров
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		token, err := bearerToken(header)
		if err != nil {
			a.logger.Warn("Auth: %v", err)
			handlers.RespondUnauthorized(w, msgMalformedToken)
			return
		}

		key, err := a.SessionKey(token)
		if err != nil {
			a.logger.Warn("Auth: %v", err)
			if errors.Is(err, ErrTokenExpired) {
				handlers.RespondUnauthorized(w, msgExpiredToken)
				return
			}
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		ctx := hotelapi.WithToken(r.Context(), token)
		ctx = handlers.WithUserKey(ctx, key)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMalformedHeader
	}
	return parts[1], nil
}

// SessionKey выводит стабильный ключ сессии из токена.
// Проверенный JWT с identity claim даёт "user:<id>", остальные токены хешируются.
func (a *Authenticator) SessionKey(token string) (string, error) {
	if len(a.secret) == 0 {
		return opaqueKey(token), nil
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(a.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	for _, name := range identityClaims {
		switch v := claims[name].(type) {
		case string:
			if v != "" {
				return "user:" + v, nil
			}
		case float64:
			return "user:" + strconv.FormatFloat(v, 'f', -1, 64), nil
		}
	}
	return opaqueKey(token), nil
}

func opaqueKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "token:" + hex.EncodeToString(sum[:16])
}
