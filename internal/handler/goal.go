package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/templui/piggypanic/internal/ctxkeys"
	"github.com/templui/piggypanic/internal/repository"
	"github.com/templui/piggypanic/internal/savings"
	"github.com/templui/piggypanic/internal/service"
)

// GoalServicer is the part of the goal service the handlers use.
type GoalServicer interface {
	Plan(ctx context.Context, in service.PlanInput) (*service.GoalPlan, error)
	Create(ctx context.Context, userID string, in service.CreateGoalInput) (*service.GoalDetails, error)
	Goals(ctx context.Context, userID, sortBy string, asOf time.Time) ([]*service.GoalDetails, error)
	Goal(ctx context.Context, userID, goalID string, asOf time.Time) (*service.GoalDetails, error)
	CheckIn(ctx context.Context, userID, goalID string, in service.CheckInInput) (*service.CheckInResult, error)
	Export(ctx context.Context, userID string) (*service.GoalExport, error)
}

// Archiver stores exports for later download.
type Archiver interface {
	Archive(ctx context.Context, userID string) (*service.ExportArchive, error)
}

var (
	_ GoalServicer = (*service.GoalService)(nil)
	_ Archiver     = (*service.ExportService)(nil)
)

type GoalHandler struct {
	goalService   GoalServicer
	exportService Archiver
}

func NewGoalHandler(goalService GoalServicer, exportService Archiver) *GoalHandler {
	return &GoalHandler{
		goalService:   goalService,
		exportService: exportService,
	}
}

// Plan handles POST /api/goals/plan.
func (h *GoalHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var in service.PlanInput
	if !decodeJSON(w, r, &in) {
		return
	}

	plan, err := h.goalService.Plan(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// List handles GET /api/goals.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	sortBy := r.URL.Query().Get("sort")
	switch sortBy {
	case "":
		sortBy = repository.GoalSortRecent
	case repository.GoalSortRecent, repository.GoalSortName, repository.GoalSortProgress:
	default:
		respondError(w, r, fmt.Errorf("%w: sort must be recent, name or progress", savings.ErrInvalidInput))
		return
	}

	asOf, err := parseAsOf(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	goals, err := h.goalService.Goals(r.Context(), userID, sortBy, asOf)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"goals": goals})
}

// Create handles POST /api/goals.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateGoalInput
	if !decodeJSON(w, r, &in) {
		return
	}

	goal, err := h.goalService.Create(r.Context(), ctxkeys.UserID(r.Context()), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/goals/"+goal.ID)
	writeJSON(w, http.StatusCreated, goal)
}

// Get handles GET /api/goals/{id}.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	goal, err := h.goalService.Goal(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"), asOf)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

// CheckIn handles POST /api/goals/{id}/check-ins.
func (h *GoalHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var in service.CheckInInput
	if !decodeJSON(w, r, &in) {
		return
	}

	result, err := h.goalService.CheckIn(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Export handles GET /api/goals/export as a file download.
func (h *GoalHandler) Export(w http.ResponseWriter, r *http.Request) {
	export, err := h.goalService.Export(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	body, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		respondError(w, r, fmt.Errorf("failed to encode export: %w", err))
		return
	}

	filename := fmt.Sprintf("piggy-goals-%s.json", export.ExportedAt.Format("20060102"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(append(body, '\n'))
	if err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

// Archive handles POST /api/goals/export.
func (h *GoalHandler) Archive(w http.ResponseWriter, r *http.Request) {
	archive, err := h.exportService.Archive(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, archive)
}

// parseAsOf reads ?as_of=YYYY-MM-DD; zero means today.
func parseAsOf(r *http.Request) (time.Time, error) {
	value := r.URL.Query().Get("as_of")
	if value == "" {
		return time.Time{}, nil
	}

	asOf, err := time.Parse(service.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: as_of must look like 2024-01-31", savings.ErrInvalidInput)
	}
	return asOf, nil
}
