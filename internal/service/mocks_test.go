package service_test

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/templui/piggypanic/internal/model"
	"github.com/templui/piggypanic/internal/repository"
	"github.com/templui/piggypanic/internal/service"
	"github.com/templui/piggypanic/internal/storage"
)

// ---- mock repos ------------------------------------------------------------

type mockGoalRepo struct {
	create               func(ctx context.Context, goal *model.Goal) error
	byID                 func(ctx context.Context, userID, goalID string) (*model.Goal, error)
	goals                func(ctx context.Context, userID, sortBy string) ([]*model.Goal, error)
	incrementSavedAmount func(ctx context.Context, userID, goalID string, delta decimal.Decimal, at time.Time) (*model.Goal, error)
	dueReminders         func(ctx context.Context) ([]*model.DueGoal, error)
}

func (m *mockGoalRepo) Create(ctx context.Context, goal *model.Goal) error {
	return m.create(ctx, goal)
}
func (m *mockGoalRepo) ByID(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	return m.byID(ctx, userID, goalID)
}
func (m *mockGoalRepo) Goals(ctx context.Context, userID, sortBy string) ([]*model.Goal, error) {
	return m.goals(ctx, userID, sortBy)
}
func (m *mockGoalRepo) IncrementSavedAmount(ctx context.Context, userID, goalID string, delta decimal.Decimal, at time.Time) (*model.Goal, error) {
	return m.incrementSavedAmount(ctx, userID, goalID, delta, at)
}
func (m *mockGoalRepo) DueReminders(ctx context.Context) ([]*model.DueGoal, error) {
	return m.dueReminders(ctx)
}

var _ repository.GoalRepository = (*mockGoalRepo)(nil)

// memUserRepo keeps users in a map; auth flows need several calls to agree.
type memUserRepo struct {
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*model.User{}}
}

func (m *memUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}
func (m *memUserRepo) ByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}
func (m *memUserRepo) ByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}
func (m *memUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

var _ repository.UserRepository = (*memUserRepo)(nil)

type memProfileRepo struct {
	profiles map[string]*model.Profile
}

func (m *memProfileRepo) ByUserID(_ context.Context, userID string) (*model.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return p, nil
}
func (m *memProfileRepo) Create(_ context.Context, profile *model.Profile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

var _ repository.ProfileRepository = (*memProfileRepo)(nil)

type memTokenRepo struct {
	tokens map[string]*model.Token
}

func (m *memTokenRepo) Create(_ context.Context, token *model.Token) error {
	m.tokens[token.Token] = token
	return nil
}
func (m *memTokenRepo) ConsumeToken(_ context.Context, token, tokenType string) (*model.Token, error) {
	t, ok := m.tokens[token]
	if !ok || t.Type != tokenType || t.UsedAt != nil || time.Now().After(t.ExpiresAt) {
		return nil, repository.ErrTokenNotFound
	}
	now := time.Now()
	t.UsedAt = &now
	return t, nil
}
func (m *memTokenRepo) DeleteByUserAndType(_ context.Context, userID, tokenType string) error {
	for k, t := range m.tokens {
		if t.UserID == userID && t.Type == tokenType && t.UsedAt == nil {
			delete(m.tokens, k)
		}
	}
	return nil
}

var _ repository.TokenRepository = (*memTokenRepo)(nil)

// ---- mock storage ----------------------------------------------------------

type mockStorage struct {
	saved   map[string][]byte
	deleted []string
	signErr error
}

func (m *mockStorage) Save(_ context.Context, path, _ string, body io.Reader) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return err
	}
	m.saved[path] = buf.Bytes()
	return nil
}
func (m *mockStorage) Delete(_ context.Context, path string) error {
	m.deleted = append(m.deleted, path)
	return nil
}
func (m *mockStorage) PresignedURL(_ context.Context, path string) (string, time.Time, error) {
	if m.signErr != nil {
		return "", time.Time{}, m.signErr
	}
	return "https://files.example.com/" + path + "?sig=1", time.Date(2024, 1, 22, 13, 0, 0, 0, time.UTC), nil
}

var _ storage.Storage = (*mockStorage)(nil)

// ---- helpers ---------------------------------------------------------------

// devEmail logs instead of sending.
func devEmail() *service.EmailService {
	return service.NewEmailService("", "noreply@example.com", "http://localhost:8090", "Piggy Panic", true)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
