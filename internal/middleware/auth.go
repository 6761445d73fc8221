package middleware

import (
	"net/http"
	"strings"

	"github.com/templui/piggypanic/internal/ctxkeys"
	"github.com/templui/piggypanic/internal/service"
)

// SessionVerifier resolves a session token to a user id.
type SessionVerifier interface {
	UserIDFromJWT(token string) (string, error)
	ClearJWTCookie(w http.ResponseWriter)
}

// Auth reads the session from the Authorization header (mobile client) or
// the auth cookie (browser) and puts the user id in the context. Requests
// without a valid session continue anonymously.
func Auth(verifier SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearerToken(r); ok {
				userID, err := verifier.UserIDFromJWT(token)
				if err != nil {
					next.ServeHTTP(w, r)
					return
				}
				ctx := ctxkeys.WithUserID(r.Context(), userID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			cookie, err := r.Cookie(service.AuthCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := verifier.UserIDFromJWT(cookie.Value)
			if err != nil {
				// Invalid or expired, clear cookie and continue
				verifier.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithUserID(r.Context(), userID)
			ctx = ctxkeys.WithCookieAuth(ctx, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.UserID(r.Context()) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "please sign in to continue")
			return
		}
		next.ServeHTTP(w, r)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
