package handler

import (
	"context"
	"net/http"

	"github.com/templui/piggypanic/internal/ctxkeys"
	"github.com/templui/piggypanic/internal/model"
)

type ProfileReader interface {
	ByUserID(ctx context.Context, userID string) (*model.Profile, error)
}

type ProfileHandler struct {
	profileService ProfileReader
}

func NewProfileHandler(profileService ProfileReader) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Show handles GET /api/profile.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.ByUserID(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
