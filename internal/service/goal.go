package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/templui/piggypanic/internal/model"
	"github.com/templui/piggypanic/internal/repository"
	"github.com/templui/piggypanic/internal/savings"
	"github.com/templui/piggypanic/internal/validation"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

type PlanInput struct {
	TargetAmount       string `json:"target_amount"`
	SavingPerFrequency string `json:"saving_per_frequency"`
	Frequency          string `json:"frequency"`
	StartDate          string `json:"start_date"` // YYYY-MM-DD, today when empty
}

type CreateGoalInput struct {
	Name string `json:"name"`
	PlanInput
}

type CheckInInput struct {
	Amount    string `json:"amount"`
	Direction string `json:"direction"`
}

// GoalPlan is the projection shown while a goal is being set up.
type GoalPlan struct {
	TargetAmount       decimal.Decimal   `json:"target_amount"`
	SavingPerFrequency decimal.Decimal   `json:"saving_per_frequency"`
	Frequency          savings.Frequency `json:"frequency"`
	StartDate          time.Time         `json:"start_date"`
	EndDate            time.Time         `json:"end_date"`
	Periods            int               `json:"periods"`
}

// GoalDetails is a stored goal with its progress computed for one day.
type GoalDetails struct {
	*model.Goal
	PeriodsElapsed  int             `json:"periods_elapsed"`
	ExpectedSavings decimal.Decimal `json:"expected_savings"`
	OnTrack         bool            `json:"on_track"`
	Status          savings.Status  `json:"status"`
	Mood            savings.Mood    `json:"mood"`
	MoodEmoji       string          `json:"mood_emoji"`
	PercentComplete decimal.Decimal `json:"percent_complete"`
	NextSavingDate  time.Time       `json:"next_saving_date"`
}

type CheckInResult struct {
	Goal    *GoalDetails `json:"goal"`
	Message string       `json:"message"`
}

type GoalExport struct {
	ExportedAt time.Time      `json:"exported_at"`
	Goals      []*GoalDetails `json:"goals"`
}

type GoalService struct {
	repo repository.GoalRepository
	now  func() time.Time
}

// NewGoalService builds the service; now defaults to time.Now.
func NewGoalService(repo repository.GoalRepository, now func() time.Time) *GoalService {
	if now == nil {
		now = time.Now
	}
	return &GoalService{
		repo: repo,
		now:  now,
	}
}

// Plan runs the projection without storing anything.
func (s *GoalService) Plan(ctx context.Context, in PlanInput) (*GoalPlan, error) {
	target, err := validation.ParseAmount("target amount", in.TargetAmount)
	if err != nil {
		return nil, err
	}

	perPeriod, err := validation.ParseAmount("saving per frequency", in.SavingPerFrequency)
	if err != nil {
		return nil, err
	}

	frequency, err := savings.ParseFrequency(in.Frequency)
	if err != nil {
		return nil, err
	}

	start, err := s.parseStartDate(in.StartDate)
	if err != nil {
		return nil, err
	}

	periods, err := savings.TotalPeriodsDecimal(target, perPeriod)
	if err != nil {
		return nil, err
	}

	err = validation.ValidatePeriods(periods)
	if err != nil {
		return nil, err
	}

	plan, err := savings.Project(target, perPeriod, start, frequency)
	if err != nil {
		return nil, err
	}

	return &GoalPlan{
		TargetAmount:       target,
		SavingPerFrequency: perPeriod,
		Frequency:          frequency,
		StartDate:          start,
		EndDate:            plan.EndDate,
		Periods:            plan.Periods,
	}, nil
}

// Create stores a new goal. Periods and end date are fixed here and never
// recomputed afterwards.
func (s *GoalService) Create(ctx context.Context, userID string, in CreateGoalInput) (*GoalDetails, error) {
	name := strings.TrimSpace(in.Name)
	err := validation.ValidateName("goal name", name)
	if err != nil {
		return nil, err
	}

	plan, err := s.Plan(ctx, in.PlanInput)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	goal := &model.Goal{
		UserID:             userID,
		Name:               name,
		TargetAmount:       model.NewMoney(plan.TargetAmount),
		SavingPerFrequency: model.NewMoney(plan.SavingPerFrequency),
		SavedAmount:        model.NewMoney(decimal.Zero),
		StartDate:          plan.StartDate,
		EndDate:            plan.EndDate,
		Frequency:          plan.Frequency,
		Periods:            plan.Periods,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = s.repo.Create(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Info("goal created", "goal_id", goal.ID, "user_id", userID, "frequency", goal.Frequency, "periods", goal.Periods)
	return s.details(goal, now)
}

// Goals lists the user's goals with progress as of asOf (today when zero).
func (s *GoalService) Goals(ctx context.Context, userID, sortBy string, asOf time.Time) ([]*GoalDetails, error) {
	goals, err := s.repo.Goals(ctx, userID, sortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return s.detailsList(goals, s.asOf(asOf))
}

func (s *GoalService) Goal(ctx context.Context, userID, goalID string, asOf time.Time) (*GoalDetails, error) {
	goal, err := s.repo.ByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	return s.details(goal, s.asOf(asOf))
}

// CheckIn validates a deposit or withdrawal against the current balance and
// persists only the signed delta, so concurrent check-ins cannot overwrite
// each other.
func (s *GoalService) CheckIn(ctx context.Context, userID, goalID string, in CheckInInput) (*CheckInResult, error) {
	amount, err := validation.ParseAmount("amount", in.Amount)
	if err != nil {
		return nil, err
	}

	direction, err := savings.ParseDirection(in.Direction)
	if err != nil {
		return nil, err
	}

	goal, err := s.repo.ByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	checkIn, err := savings.ApplyCheckIn(goal.SavedAmount.Decimal, amount, direction)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	updated, err := s.repo.IncrementSavedAmount(ctx, userID, goalID, checkIn.Delta, now)
	if err != nil {
		return nil, err
	}

	slog.Info("goal check-in", "goal_id", goalID, "user_id", userID, "direction", direction, "amount", amount.String())

	details, err := s.details(updated, now)
	if err != nil {
		return nil, err
	}

	return &CheckInResult{Goal: details, Message: checkIn.Message()}, nil
}

// Export returns every goal of the user for download.
func (s *GoalService) Export(ctx context.Context, userID string) (*GoalExport, error) {
	now := s.now().UTC()

	goals, err := s.Goals(ctx, userID, repository.GoalSortRecent, now)
	if err != nil {
		return nil, err
	}

	return &GoalExport{ExportedAt: now, Goals: goals}, nil
}

func (s *GoalService) asOf(t time.Time) time.Time {
	if t.IsZero() {
		return s.now().UTC()
	}
	return t
}

func (s *GoalService) parseStartDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		y, m, d := s.now().UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}

	start, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start date must look like 2024-01-31", savings.ErrInvalidInput)
	}
	return start, nil
}

func (s *GoalService) detailsList(goals []*model.Goal, asOf time.Time) ([]*GoalDetails, error) {
	out := make([]*GoalDetails, 0, len(goals))
	for _, g := range goals {
		d, err := s.details(g, asOf)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *GoalService) details(goal *model.Goal, asOf time.Time) (*GoalDetails, error) {
	schedule := goal.Schedule()
	progress := savings.EvaluateProgress(schedule, asOf)

	next, err := savings.NextSavingDate(schedule)
	if err != nil {
		return nil, fmt.Errorf("goal %s: %w", goal.ID, err)
	}

	return &GoalDetails{
		Goal:            goal,
		PeriodsElapsed:  progress.PeriodsElapsed,
		ExpectedSavings: progress.ExpectedSavings,
		OnTrack:         progress.OnTrack,
		Status:          progress.Status,
		Mood:            progress.Mood,
		MoodEmoji:       progress.Mood.Emoji(),
		PercentComplete: progress.PercentComplete,
		NextSavingDate:  next,
	}, nil
}
