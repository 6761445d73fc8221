package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/templui/piggypanic/internal/model"
	"github.com/templui/piggypanic/internal/savings"
)

const (
	GoalSortRecent   = "recent"
	GoalSortProgress = "progress"
	GoalSortName     = "name"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// GoalRepository scopes every read and write by the owning user.
// Goals are never deleted.
type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	ByID(ctx context.Context, userID, goalID string) (*model.Goal, error)
	Goals(ctx context.Context, userID, sortBy string) ([]*model.Goal, error)
	IncrementSavedAmount(ctx context.Context, userID, goalID string, delta decimal.Decimal, at time.Time) (*model.Goal, error)
	DueReminders(ctx context.Context) ([]*model.DueGoal, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = now
	}
	if goal.UpdatedAt.IsZero() {
		goal.UpdatedAt = now
	}

	query := `INSERT INTO goals (id, user_id, name, target_amount, saving_per_frequency, saved_amount,
	              start_date, end_date, frequency, periods, last_check_in_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.SavingPerFrequency,
		goal.SavedAmount,
		goal.StartDate.UTC(),
		goal.EndDate.UTC(),
		goal.Frequency,
		goal.Periods,
		goal.LastCheckInDate,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByID(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, goal, query, goalID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *goalRepository) Goals(ctx context.Context, userID, sortBy string) ([]*model.Goal, error) {
	goals := []*model.Goal{}

	// Validate and build ORDER BY clause
	var orderBy string
	switch sortBy {
	case GoalSortProgress:
		orderBy = "ORDER BY saved_amount * 1.0 / target_amount DESC, updated_at DESC"
	case GoalSortName:
		orderBy = "ORDER BY LOWER(name) ASC, created_at DESC"
	default: // GoalSortRecent or empty
		orderBy = "ORDER BY updated_at DESC, created_at DESC"
	}

	query := `SELECT * FROM goals WHERE user_id = $1 ` + orderBy

	err := r.db.SelectContext(ctx, &goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

// IncrementSavedAmount adds delta to the stored balance in one statement and
// stamps the check-in time. The balance guard lives in the WHERE clause, so
// racing withdrawals can never take the goal below zero.
//
// The row is read back inside the same transaction, so the returned goal is
// what this update left behind and never includes a later check-in. Not
// RETURNING *: SQLite drops the declared column types there and the
// timestamps would come back as text.
func (r *goalRepository) IncrementSavedAmount(ctx context.Context, userID, goalID string, delta decimal.Decimal, at time.Time) (*model.Goal, error) {
	cents, err := model.NewMoney(delta).Cents()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", savings.ErrInvalidInput, err)
	}
	at = at.UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `UPDATE goals
	          SET saved_amount = saved_amount + $1, last_check_in_date = $2, updated_at = $3
	          WHERE id = $4 AND user_id = $5 AND saved_amount + $6 >= 0`

	result, err := tx.ExecContext(ctx, query, cents, at, at, goalID, userID, cents)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{}
	err = tx.GetContext(ctx, goal, `SELECT * FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, fmt.Errorf("%w: you can't withdraw more than what's saved", savings.ErrInsufficientBalance)
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// DueReminders lists every unfinished goal together with its owner's email.
// Which of them are due on a given day is decided by the caller.
func (r *goalRepository) DueReminders(ctx context.Context) ([]*model.DueGoal, error) {
	goals := []*model.DueGoal{}

	query := `SELECT g.*, u.email, p.username
	          FROM goals g
	          JOIN users u ON u.id = g.user_id
	          JOIN profiles p ON p.user_id = g.user_id
	          WHERE g.saved_amount < g.target_amount
	          ORDER BY g.user_id, g.created_at`

	err := r.db.SelectContext(ctx, &goals, query)
	if err != nil {
		return nil, err
	}

	return goals, nil
}
