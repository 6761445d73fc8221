package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/piggypanic/internal/storage"
)

var ErrStorageDisabled = errors.New("export storage is not configured")

// ExportArchive points at a stored export the client can download.
type ExportArchive struct {
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	Goals     int       `json:"goals"`
}

type ExportService struct {
	goalService *GoalService
	storage     storage.Storage
}

// NewExportService accepts a nil storage; Archive then fails with ErrStorageDisabled.
func NewExportService(goalService *GoalService, storage storage.Storage) *ExportService {
	return &ExportService{
		goalService: goalService,
		storage:     storage,
	}
}

func (s *ExportService) Enabled() bool {
	return s.storage != nil
}

// Archive writes the user's export to storage and returns a presigned link.
func (s *ExportService) Archive(ctx context.Context, userID string) (*ExportArchive, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	export, err := s.goalService.Export(ctx, userID)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	path := fmt.Sprintf("exports/%s/goals-%s.json", userID, export.ExportedAt.Format("20060102-150405"))

	err = s.storage.Save(ctx, path, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to store export: %w", err)
	}

	url, expiresAt, err := s.storage.PresignedURL(ctx, path)
	if err != nil {
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			slog.Warn("failed to remove unreachable export", "error", delErr, "path", path)
		}
		return nil, fmt.Errorf("failed to sign export link: %w", err)
	}

	slog.Info("goal export archived", "user_id", userID, "path", path, "goals", len(export.Goals))
	return &ExportArchive{Path: path, URL: url, ExpiresAt: expiresAt, Goals: len(export.Goals)}, nil
}
