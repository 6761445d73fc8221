package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/piggypanic/internal/config"
	"github.com/templui/piggypanic/internal/db"
	"github.com/templui/piggypanic/internal/repository"
	"github.com/templui/piggypanic/internal/service"
	"github.com/templui/piggypanic/internal/storage"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	Storage         storage.Storage
	AuthService     *service.AuthService
	UserService     *service.UserService
	ProfileService  *service.ProfileService
	EmailService    *service.EmailService
	GoalService     *service.GoalService
	ExportService   *service.ExportService
	ReminderService *service.ReminderService
}

// New connects to the database, applies migrations and wires the services.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Storage (nil when no bucket is configured)
	exportStorage, err := storage.New(ctx, cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return Wire(cfg, database, exportStorage), nil
}

// Wire builds the services on an open, migrated database.
func Wire(cfg *config.Config, database *sqlx.DB, exportStorage storage.Storage) *App {
	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	tokenRepository := repository.NewTokenRepository(database)
	goalRepository := repository.NewGoalRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		profileRepository,
		tokenRepository,
		emailService,
		cfg.JWTSecret,
		cfg.SecureCookies(),
		cfg.JWTExpiry,
		cfg.TokenPasswordResetExpiry,
	)
	userService := service.NewUserService(userRepository, tokenRepository)
	profileService := service.NewProfileService(profileRepository)
	goalService := service.NewGoalService(goalRepository, time.Now)
	exportService := service.NewExportService(goalService, exportStorage)
	reminderService := service.NewReminderService(goalRepository, emailService)

	return &App{
		Cfg:             cfg,
		DB:              database,
		Storage:         exportStorage,
		AuthService:     authService,
		UserService:     userService,
		ProfileService:  profileService,
		EmailService:    emailService,
		GoalService:     goalService,
		ExportService:   exportService,
		ReminderService: reminderService,
	}
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
