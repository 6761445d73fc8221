package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/templui/piggypanic/internal/config"
	"github.com/templui/piggypanic/internal/ctxkeys"
	"github.com/templui/piggypanic/internal/handler"
	"github.com/templui/piggypanic/internal/model"
	"github.com/templui/piggypanic/internal/service"
)

type mockGoalService struct {
	PlanFn    func(ctx context.Context, in service.PlanInput) (*service.GoalPlan, error)
	CreateFn  func(ctx context.Context, userID string, in service.CreateGoalInput) (*service.GoalDetails, error)
	GoalsFn   func(ctx context.Context, userID, sortBy string, asOf time.Time) ([]*service.GoalDetails, error)
	GoalFn    func(ctx context.Context, userID, goalID string, asOf time.Time) (*service.GoalDetails, error)
	CheckInFn func(ctx context.Context, userID, goalID string, in service.CheckInInput) (*service.CheckInResult, error)
	ExportFn  func(ctx context.Context, userID string) (*service.GoalExport, error)
}

var _ handler.GoalServicer = (*mockGoalService)(nil)

func (m *mockGoalService) Plan(ctx context.Context, in service.PlanInput) (*service.GoalPlan, error) {
	return m.PlanFn(ctx, in)
}

func (m *mockGoalService) Create(ctx context.Context, userID string, in service.CreateGoalInput) (*service.GoalDetails, error) {
	return m.CreateFn(ctx, userID, in)
}

func (m *mockGoalService) Goals(ctx context.Context, userID, sortBy string, asOf time.Time) ([]*service.GoalDetails, error) {
	return m.GoalsFn(ctx, userID, sortBy, asOf)
}

func (m *mockGoalService) Goal(ctx context.Context, userID, goalID string, asOf time.Time) (*service.GoalDetails, error) {
	return m.GoalFn(ctx, userID, goalID, asOf)
}

func (m *mockGoalService) CheckIn(ctx context.Context, userID, goalID string, in service.CheckInInput) (*service.CheckInResult, error) {
	return m.CheckInFn(ctx, userID, goalID, in)
}

func (m *mockGoalService) Export(ctx context.Context, userID string) (*service.GoalExport, error) {
	return m.ExportFn(ctx, userID)
}

type mockArchiver struct {
	ArchiveFn func(ctx context.Context, userID string) (*service.ExportArchive, error)
}

var _ handler.Archiver = (*mockArchiver)(nil)

func (m *mockArchiver) Archive(ctx context.Context, userID string) (*service.ExportArchive, error) {
	return m.ArchiveFn(ctx, userID)
}

type mockAuthService struct {
	SignUpFn            func(ctx context.Context, in service.SignUpInput) (*model.User, error)
	SignInFn            func(ctx context.Context, email, password string) (*model.User, error)
	CurrentUserFn       func(ctx context.Context, userID string) (*model.User, error)
	SendPasswordResetFn func(ctx context.Context, email string) error
	ResetPasswordFn     func(ctx context.Context, token, password, confirm string) error
	signedOut           bool
}

var _ handler.Authenticator = (*mockAuthService)(nil)

func (m *mockAuthService) SignUp(ctx context.Context, in service.SignUpInput) (*model.User, error) {
	return m.SignUpFn(ctx, in)
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	return m.SignInFn(ctx, email, password)
}

func (m *mockAuthService) SignOut(w http.ResponseWriter) {
	m.signedOut = true
	http.SetCookie(w, &http.Cookie{Name: service.AuthCookieName, MaxAge: -1, Path: "/"})
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	return m.CurrentUserFn(ctx, userID)
}

func (m *mockAuthService) SendPasswordReset(ctx context.Context, email string) error {
	return m.SendPasswordResetFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, token, password, confirm string) error {
	return m.ResetPasswordFn(ctx, token, password, confirm)
}

func (m *mockAuthService) GenerateJWT(user *model.User) (string, time.Time, error) {
	return "signed-" + user.ID, time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC), nil
}

func (m *mockAuthService) SetJWTCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{Name: service.AuthCookieName, Value: token, Expires: expiry, Path: "/"})
}

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.err
}

// withSession stands in for the auth and config middleware.
func withSession(userID, env string, next http.Handler) http.Handler {
	cfg := &config.Config{AppEnv: env}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxkeys.WithConfig(r.Context(), cfg)
		if userID != "" {
			ctx = ctxkeys.WithUserID(ctx, userID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type mockProfileService struct {
	ByUserIDFn func(ctx context.Context, userID string) (*model.Profile, error)
}

var _ handler.ProfileReader = (*mockProfileService)(nil)

func (m *mockProfileService) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	return m.ByUserIDFn(ctx, userID)
}

type mockUserService struct {
	UpdatePasswordFn func(ctx context.Context, userID, currentPassword, newPassword, confirmPassword string) error
}

var _ handler.PasswordUpdater = (*mockUserService)(nil)

func (m *mockUserService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword, confirmPassword string) error {
	return m.UpdatePasswordFn(ctx, userID, currentPassword, newPassword, confirmPassword)
}
