package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/templui/piggypanic/internal/app"
	"github.com/templui/piggypanic/internal/config"
	"github.com/templui/piggypanic/internal/logger"
)

func RemindCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Email owners of goals with a saving due on the given day",
		Long:  "Meant to run once a day from cron. Completed goals are skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().UTC()
			if date != "" {
				var err error
				day, err = time.Parse(dateLayout, date)
				if err != nil {
					return fmt.Errorf("date must look like 2024-01-31: %w", err)
				}
			}

			cfg := config.Load()
			logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			sent, err := a.ReminderService.SendDue(cmd.Context(), day)
			fmt.Fprintf(cmd.OutOrStdout(), "sent %d reminder(s) for %s\n", sent, day.Format(dateLayout))
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to remind for (YYYY-MM-DD), today when empty")
	return cmd
}
