package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// cliState is shared by all subcommands. It is filled in by the root
// command's PersistentPreRunE before any subcommand runs.
type cliState struct {
	configPath string
	config     *config.Config
	logger     *slog.Logger
}

func newRootCommand() *cobra.Command {
	state := &cliState{}

	root := &cobra.Command{
		Use:   "todo",
		Short: "Task tracking service",
		Long: `todo registers tasks, flags the ones that miss their due date and
marks them done. It can run as an HTTP API server or be driven directly
from the command line.

CONFIGURATION:
  Settings come from config.yaml (or --config) and TODO_* environment
  variables, which take precedence:
    TODO_SERVER_PORT            HTTP port (default: 8080)
    TODO_SERVER_LOG_LEVEL       debug, info, warn or error (default: info)
    TODO_DATABASE_DRIVER        memory, postgres or sqlite (default: memory)
    TODO_DATABASE_URL           connection string or sqlite file path
    TODO_DEADLINES_ENABLED      run the overdue sweep when serving (default: true)
    TODO_DEADLINES_SCHEDULE     cron schedule for the sweep (default: @every 1h)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.load()
		},
	}

	root.PersistentFlags().StringVar(&state.configPath, "config", "", "path to a config file")

	root.AddCommand(
		newServeCommand(state),
		newMigrateCommand(state),
		newTaskCommand(state),
	)

	return root
}

func (s *cliState) load() error {
	cfg, err := config.LoadFile(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	s.config = cfg
	s.logger = logger.Setup(cfg.Server)
	return nil
}
