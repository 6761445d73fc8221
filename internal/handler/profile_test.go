package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/piggypanic/internal/handler"
	"github.com/templui/piggypanic/internal/model"
	"github.com/templui/piggypanic/internal/repository"
)

func TestProfileShow(t *testing.T) {
	profiles := &mockProfileService{
		ByUserIDFn: func(ctx context.Context, userID string) (*model.Profile, error) {
			if userID != "user-1" {
				return nil, repository.ErrProfileNotFound
			}
			return &model.Profile{ID: "p1", UserID: userID, Username: "piggy"}, nil
		},
	}
	h := handler.NewProfileHandler(profiles)

	rec := do(t, withSession("user-1", "production", http.HandlerFunc(h.Show)), http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "piggy", body["username"])

	rec = do(t, withSession("user-2", "production", http.HandlerFunc(h.Show)), http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
