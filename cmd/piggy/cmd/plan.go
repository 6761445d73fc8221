package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/templui/piggypanic/internal/savings"
	"github.com/templui/piggypanic/internal/validation"
)

const dateLayout = "2006-01-02"

func PlanCmd() *cobra.Command {
	var target, per, frequency, start string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Project how long a savings goal takes",
		Example: `  piggy plan --target 1000 --per 100 --frequency weekly --start 2024-01-01
  piggy plan --target 2500.50 --per 75 --frequency monthly`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, target, per, frequency, start)
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "target amount, e.g. 1000 or 1000.50")
	cmd.Flags().StringVar(&per, "per", "", "amount saved each period")
	cmd.Flags().StringVar(&frequency, "frequency", "weekly", "daily, weekly, fortnightly or monthly")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD), today when empty")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("per")

	return cmd
}

func runPlan(cmd *cobra.Command, target, per, frequency, start string) error {
	targetAmount, err := validation.ParseAmount("target amount", target)
	if err != nil {
		return err
	}

	perPeriod, err := validation.ParseAmount("saving per frequency", per)
	if err != nil {
		return err
	}

	f, err := savings.ParseFrequency(frequency)
	if err != nil {
		return err
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if start != "" {
		startDate, err = time.Parse(dateLayout, start)
		if err != nil {
			return fmt.Errorf("start date must look like 2024-01-31: %w", err)
		}
	}

	plan, err := savings.Project(targetAmount, perPeriod, startDate, f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Target:    %s\n", targetAmount.StringFixed(2))
	fmt.Fprintf(out, "Saving:    %s %s\n", perPeriod.StringFixed(2), f)
	fmt.Fprintf(out, "Starts:    %s\n", startDate.Format(dateLayout))
	noun := f.Noun()
	if plan.Periods != 1 {
		noun += "s"
	}
	fmt.Fprintf(out, "Periods:   %d %s\n", plan.Periods, noun)
	fmt.Fprintf(out, "Finishes:  %s\n", plan.EndDate.Format(dateLayout))
	return nil
}
