package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/templui/piggypanic/cmd/piggy/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "piggy",
		Short:         "Piggy Panic command line tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(cmd.PlanCmd())
	rootCmd.AddCommand(cmd.MigrateCmd())
	rootCmd.AddCommand(cmd.RemindCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
