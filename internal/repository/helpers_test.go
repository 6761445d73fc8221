package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/templui/piggypanic/internal/db"
	"github.com/templui/piggypanic/internal/model"
	"github.com/templui/piggypanic/internal/repository"
	"github.com/templui/piggypanic/internal/savings"
)

// newTestDB opens a fresh SQLite file with every migration applied.
// Each test gets its own file, so no cleanup SQL is needed.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "piggy.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	conn, err := db.Init("sqlite", dsn)
	require.NoError(t, err, "open sqlite")
	t.Cleanup(func() { _ = db.Close(conn) })

	require.NoError(t, db.RunMigrations(context.Background(), conn.DB, "sqlite"), "migrate")
	return conn
}

// seedUser inserts a user with a profile and returns it.
func seedUser(t *testing.T, conn *sqlx.DB, email string) *model.User {
	t.Helper()
	ctx := context.Background()

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repository.NewUserRepository(conn).Create(ctx, user))
	require.NoError(t, repository.NewProfileRepository(conn).Create(ctx, &model.Profile{UserID: user.ID, Username: "piggy"}))
	return user
}

func money(s string) model.Money {
	return model.NewMoney(decimal.RequireFromString(s))
}

// goalFixture returns a weekly 500 goal at 50 per week starting 2024-01-01.
func goalFixture(userID string) *model.Goal {
	return &model.Goal{
		UserID:             userID,
		Name:               "New bike",
		TargetAmount:       money("500"),
		SavingPerFrequency: money("50"),
		SavedAmount:        money("0"),
		StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		Frequency:          savings.Weekly,
		Periods:            10,
	}
}
