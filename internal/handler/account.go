package handler

import (
	"context"
	"net/http"

	"github.com/templui/piggypanic/internal/ctxkeys"
	"github.com/templui/piggypanic/internal/service"
)

type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword, confirmPassword string) error
}

var _ PasswordUpdater = (*service.UserService)(nil)

type AccountHandler struct {
	userService PasswordUpdater
}

func NewAccountHandler(userService PasswordUpdater) *AccountHandler {
	return &AccountHandler{
		userService: userService,
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ChangePassword handles POST /api/account/password.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var in changePasswordRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	err := h.userService.UpdatePassword(r.Context(), ctxkeys.UserID(r.Context()), in.CurrentPassword, in.NewPassword, in.ConfirmPassword)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
