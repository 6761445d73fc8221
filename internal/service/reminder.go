package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/piggypanic/internal/repository"
	"github.com/templui/piggypanic/internal/savings"
)

type ReminderService struct {
	goalRepo     repository.GoalRepository
	emailService *EmailService
}

func NewReminderService(goalRepo repository.GoalRepository, emailService *EmailService) *ReminderService {
	return &ReminderService{
		goalRepo:     goalRepo,
		emailService: emailService,
	}
}

// SendDue emails the owner of every unfinished goal whose next saving date
// falls on day. It keeps going past individual send failures and returns
// how many reminders went out together with the joined failures.
func (s *ReminderService) SendDue(ctx context.Context, day time.Time) (int, error) {
	goals, err := s.goalRepo.DueReminders(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list goals: %w", err)
	}

	sent := 0
	var errs []error
	for _, g := range goals {
		next, err := savings.NextSavingDate(g.Schedule())
		if err != nil {
			errs = append(errs, fmt.Errorf("goal %s: %w", g.ID, err))
			continue
		}
		if !sameDate(next, day) {
			continue
		}

		err = s.emailService.SendSavingReminder(ctx, g.Email, g.Username, g.Name, g.SavingPerFrequency.Decimal, next)
		if err != nil {
			slog.Warn("failed to send saving reminder", "error", err, "goal_id", g.ID)
			errs = append(errs, fmt.Errorf("goal %s: %w", g.ID, err))
			continue
		}
		sent++
	}

	slog.Info("saving reminders processed", "day", day.Format(DateLayout), "candidates", len(goals), "sent", sent)
	return sent, errors.Join(errs...)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
