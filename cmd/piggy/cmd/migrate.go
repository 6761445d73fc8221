package cmd

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/templui/piggypanic/internal/config"
	"github.com/templui/piggypanic/internal/db"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, conn *sqlx.DB, driver string) error {
				return db.RunMigrations(ctx, conn.DB, driver)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, conn *sqlx.DB, driver string) error {
				return db.MigrateDown(ctx, conn.DB, driver)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, conn *sqlx.DB, driver string) error {
				version, err := db.Version(ctx, conn.DB, driver)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (%s)\n", version, driver)
				return nil
			})
		},
	})

	return cmd
}

func withDatabase(ctx context.Context, fn func(ctx context.Context, conn *sqlx.DB, driver string) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	driver, connection := config.Database()
	conn, err := db.Init(driver, connection)
	if err != nil {
		return err
	}
	defer db.Close(conn)

	return fn(ctx, conn, driver)
}
