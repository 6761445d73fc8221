package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/templui/piggypanic/internal/ctxkeys"
	"github.com/templui/piggypanic/internal/repository"
	"github.com/templui/piggypanic/internal/service"
)

type GoalLister interface {
	Goals(ctx context.Context, userID, sortBy string, asOf time.Time) ([]*service.GoalDetails, error)
}

type DashboardHandler struct {
	goalService GoalLister
}

func NewDashboardHandler(goalService GoalLister) *DashboardHandler {
	return &DashboardHandler{
		goalService: goalService,
	}
}

// Summary handles GET /api/dashboard.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	goals, err := h.goalService.Goals(r.Context(), ctxkeys.UserID(r.Context()), repository.GoalSortRecent, asOf)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, service.Summarize(goals))
}
