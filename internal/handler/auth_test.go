package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/piggypanic/internal/handler"
	"github.com/templui/piggypanic/internal/model"
	"github.com/templui/piggypanic/internal/repository"
	"github.com/templui/piggypanic/internal/savings"
	"github.com/templui/piggypanic/internal/service"
)

func newAuthServer(auth *mockAuthService, userID string) http.Handler {
	h := handler.NewAuthHandler(auth)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", h.SignUp)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("POST /api/auth/password-reset", h.ForgotPassword)
	mux.HandleFunc("POST /api/auth/password-reset/{token}", h.ResetPassword)
	mux.HandleFunc("GET /api/auth/me", h.Me)

	return withSession(userID, "production", mux)
}

func authCookie(rec interface{ Result() *http.Response }) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == service.AuthCookieName {
			return c
		}
	}
	return nil
}

func TestSignUp(t *testing.T) {
	auth := &mockAuthService{
		SignUpFn: func(ctx context.Context, in service.SignUpInput) (*model.User, error) {
			assert.Equal(t, "piggy", in.Username)
			assert.Equal(t, "oink@example.com", in.Email)
			return &model.User{ID: "user-1", Email: in.Email, PasswordHash: "hash", Username: in.Username}, nil
		},
	}
	srv := newAuthServer(auth, "")

	rec := do(t, srv, http.MethodPost, "/api/auth/signup",
		`{"username":"piggy","email":"oink@example.com","password":"secret123","confirm_password":"secret123"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "signed-user-1", body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "piggy", user["username"])
	assert.NotContains(t, user, "password_hash")

	cookie := authCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-user-1", cookie.Value)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		SignUpFn: func(ctx context.Context, in service.SignUpInput) (*model.User, error) {
			return nil, fmt.Errorf("failed to create user: %w", repository.ErrDuplicateEmail)
		},
	}
	srv := newAuthServer(auth, "")

	rec := do(t, srv, http.MethodPost, "/api/auth/signup", `{"email":"oink@example.com"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email_taken", decodeAPIError(t, rec).Error.Code)
}

func TestSignUpValidation(t *testing.T) {
	auth := &mockAuthService{
		SignUpFn: func(ctx context.Context, in service.SignUpInput) (*model.User, error) {
			return nil, fmt.Errorf("%w: passwords do not match", savings.ErrInvalidInput)
		},
	}
	srv := newAuthServer(auth, "")

	rec := do(t, srv, http.MethodPost, "/api/auth/signup", `{"password":"a","confirm_password":"b"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "passwords do not match", decodeAPIError(t, rec).Error.Message)
}

func TestLogin(t *testing.T) {
	auth := &mockAuthService{
		SignInFn: func(ctx context.Context, email, password string) (*model.User, error) {
			if password != "secret123" {
				return nil, service.ErrInvalidCredentials
			}
			return &model.User{ID: "user-1", Email: email}, nil
		},
	}
	srv := newAuthServer(auth, "")

	rec := do(t, srv, http.MethodPost, "/api/auth/login", `{"email":"oink@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "signed-user-1", body["token"])
	assert.Equal(t, time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC).Format(time.RFC3339), body["expires_at"])

	rec = do(t, srv, http.MethodPost, "/api/auth/login", `{"email":"oink@example.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body2 := decodeAPIError(t, rec)
	assert.Equal(t, "invalid_credentials", body2.Error.Code)
	assert.Equal(t, "invalid email or password", body2.Error.Message)
}

func TestLogout(t *testing.T) {
	auth := &mockAuthService{}
	srv := newAuthServer(auth, "user-1")

	rec := do(t, srv, http.MethodPost, "/api/auth/logout", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, auth.signedOut)
	cookie := authCookie(rec)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}

func TestMe(t *testing.T) {
	auth := &mockAuthService{
		CurrentUserFn: func(ctx context.Context, userID string) (*model.User, error) {
			assert.Equal(t, "user-1", userID)
			return &model.User{ID: userID, Email: "oink@example.com", Username: "piggy"}, nil
		},
	}
	srv := newAuthServer(auth, "user-1")

	rec := do(t, srv, http.MethodGet, "/api/auth/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var user map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	assert.Equal(t, "piggy", user["username"])
}

func TestForgotPasswordAlwaysAccepted(t *testing.T) {
	var asked string
	auth := &mockAuthService{
		SendPasswordResetFn: func(ctx context.Context, email string) error {
			asked = email
			return nil
		},
	}
	srv := newAuthServer(auth, "")

	rec := do(t, srv, http.MethodPost, "/api/auth/password-reset", `{"email":"nobody@example.com"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "nobody@example.com", asked)
}

func TestResetPassword(t *testing.T) {
	auth := &mockAuthService{
		ResetPasswordFn: func(ctx context.Context, token, password, confirm string) error {
			if token != "abc123" {
				return service.ErrInvalidResetToken
			}
			return nil
		},
	}
	srv := newAuthServer(auth, "")

	rec := do(t, srv, http.MethodPost, "/api/auth/password-reset/abc123", `{"password":"secret123","confirm_password":"secret123"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/auth/password-reset/used", `{"password":"secret123","confirm_password":"secret123"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "invalid_token", decodeAPIError(t, rec).Error.Code)
}
