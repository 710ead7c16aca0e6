package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/migrate"
	"github.com/spf13/cobra"
)

func newMigrateCommand(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), state, func(m *migrate.Migrator) error {
					return m.Up(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), state, func(m *migrate.Migrator) error {
					return m.Down(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the status of every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), state, func(m *migrate.Migrator) error {
					statuses, err := m.Status(cmd.Context())
					if err != nil {
						return err
					}

					tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "VERSION\tNAME\tAPPLIED AT")
					for _, s := range statuses {
						appliedAt := "pending"
						if s.Applied {
							appliedAt = s.AppliedAt.UTC().Format(time.RFC3339)
						}
						fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, s.Name, appliedAt)
					}
					return tw.Flush()
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), state, func(m *migrate.Migrator) error {
					v, err := m.Version(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), v)
					return nil
				})
			},
		},
	)

	return cmd
}

// withMigrator opens the configured database, runs fn and closes it again.
func withMigrator(ctx context.Context, state *cliState, fn func(*migrate.Migrator) error) error {
	if state.config.Database.Driver == config.DriverMemory {
		return fmt.Errorf("the memory driver has no schema to migrate")
	}

	db, err := openDatabase(ctx, state.config.Database, state.logger)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := migrate.New(state.config.Database.Driver, db, state.logger)
	if err != nil {
		return err
	}
	return fn(m)
}
