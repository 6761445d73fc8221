package ctxkeys

import (
	"context"

	"github.com/templui/piggypanic/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	UserIDKey     contextKey = "user_id"
	CookieAuthKey contextKey = "cookie_auth"
	ConfigKey     contextKey = "config"
	RequestIDKey  contextKey = "request_id"
)

// UserID returns the authenticated user's id, or "" for anonymous requests.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// CookieAuth reports whether the session came from the auth cookie rather
// than an Authorization header.
func CookieAuth(ctx context.Context) bool {
	v, _ := ctx.Value(CookieAuthKey).(bool)
	return v
}

func WithCookieAuth(ctx context.Context, viaCookie bool) context.Context {
	return context.WithValue(ctx, CookieAuthKey, viaCookie)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
