package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/templui/piggypanic/internal/ctxkeys"
	"github.com/templui/piggypanic/internal/model"
	"github.com/templui/piggypanic/internal/service"
)

// Authenticator is the part of the auth service the handlers use.
type Authenticator interface {
	SignUp(ctx context.Context, in service.SignUpInput) (*model.User, error)
	SignIn(ctx context.Context, email, password string) (*model.User, error)
	SignOut(w http.ResponseWriter)
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
	SendPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password, confirm string) error
	GenerateJWT(user *model.User) (string, time.Time, error)
	SetJWTCookie(w http.ResponseWriter, token string, expiry time.Time)
}

var _ Authenticator = (*service.AuthService)(nil)

type AuthHandler struct {
	authService Authenticator
}

func NewAuthHandler(authService Authenticator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type sessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

type newPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var in service.SignUpInput
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := h.authService.SignUp(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.startSession(w, r, http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := h.authService.SignIn(r.Context(), in.Email, in.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.startSession(w, r, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.SignOut(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.CurrentUser(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// ForgotPassword handles POST /api/auth/password-reset. The answer is the
// same whether or not the address has an account.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in passwordResetRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	err := h.authService.SendPasswordReset(r.Context(), in.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "if an account exists for that email, a reset link is on its way",
	})
}

// ResetPassword handles POST /api/auth/password-reset/{token}.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in newPasswordRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	err := h.authService.ResetPassword(r.Context(), r.PathValue("token"), in.Password, in.ConfirmPassword)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// startSession issues a token, sets the browser cookie and returns both.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, status int, user *model.User) {
	token, expiresAt, err := h.authService.GenerateJWT(user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.authService.SetJWTCookie(w, token, expiresAt)
	writeJSON(w, status, sessionResponse{Token: token, ExpiresAt: expiresAt, User: user})
}
