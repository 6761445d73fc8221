package routes

import (
	"net/http"

	"github.com/templui/piggypanic/internal/app"
	"github.com/templui/piggypanic/internal/handler"
	"github.com/templui/piggypanic/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService)
	account := handler.NewAccountHandler(app.UserService)
	profile := handler.NewProfileHandler(app.ProfileService)
	dashboard := handler.NewDashboardHandler(app.GoalService)
	goal := handler.NewGoalHandler(app.GoalService, app.ExportService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Health)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /api/auth/signup", rateLimiter(auth.SignUp))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /api/auth/password-reset", rateLimiter(auth.ForgotPassword))
	mux.HandleFunc("POST /api/auth/password-reset/{token}", rateLimiter(auth.ResetPassword))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(auth.Me))
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profile.Show))
	mux.HandleFunc("POST /api/account/password", middleware.RequireAuth(account.ChangePassword))
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboard.Summary))

	// Goals
	mux.HandleFunc("POST /api/goals/plan", middleware.RequireAuth(goal.Plan))
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals/export", middleware.RequireAuth(goal.Export))
	mux.HandleFunc("POST /api/goals/export", middleware.RequireAuth(goal.Archive))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("POST /api/goals/{id}/check-ins", middleware.RequireAuth(goal.CheckIn))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Config(app.Cfg), // Config before CSRF (cookie Secure flag) and handlers (error detail)
		middleware.CORS(app.Cfg.CORSOrigins),
		middleware.Auth(app.AuthService),
		middleware.CSRFProtection, // After Auth: only cookie sessions are checked
	)

	return handler
}
