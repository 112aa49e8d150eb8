package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/keshavkumar4699/cloro-questions/internal/platform/postgres/migrations"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

// MigrationTableName is the table goose records applied versions in.
const MigrationTableName = "schema_migrations"

// migrationCommands maps each migrate subcommand to its goose operation.
var migrationCommands = map[string]struct {
	short string
	run   func(ctx context.Context, db *sql.DB, dir string) error
}{
	"up": {
		short: "Apply all pending migrations",
		run:   func(ctx context.Context, db *sql.DB, dir string) error { return goose.UpContext(ctx, db, dir) },
	},
	"down": {
		short: "Roll back the most recent migration",
		run:   func(ctx context.Context, db *sql.DB, dir string) error { return goose.DownContext(ctx, db, dir) },
	},
	"reset": {
		short: "Roll back all migrations",
		run:   func(ctx context.Context, db *sql.DB, dir string) error { return goose.ResetContext(ctx, db, dir) },
	},
	"status": {
		short: "Print the status of every migration",
		run:   func(ctx context.Context, db *sql.DB, dir string) error { return goose.StatusContext(ctx, db, dir) },
	},
	"version": {
		short: "Print the current schema version",
		run:   func(ctx context.Context, db *sql.DB, dir string) error { return goose.VersionContext(ctx, db, dir) },
	},
}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger by forwarding messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements goose.Logger. It logs at error level and does not exit,
// leaving process exit to main.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	for _, name := range []string{"up", "down", "reset", "status", "version"} {
		name := name
		cmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: migrationCommands[name].short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, log, err := loadAppConfig(opts)
				if err != nil {
					return err
				}

				db, err := setupAppDatabase(cmd.Context(), cfg.Database, log)
				if err != nil {
					return err
				}
				defer func() { _ = db.Close() }()

				return runMigration(cmd.Context(), db, name, log)
			},
		})
	}

	return cmd
}

// configureGoose points goose at the embedded migrations.
func configureGoose(logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetTableName(MigrationTableName)
	goose.SetLogger(&slogGooseLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// runMigration executes the named migration command against db.
func runMigration(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	op, ok := migrationCommands[command]
	if !ok {
		return fmt.Errorf("unknown migration command: %s", command)
	}

	log := logger.With(slog.String("component", "migrations"), slog.String("command", command))

	if err := configureGoose(log); err != nil {
		return err
	}

	log.Info("running migration command")
	if err := op.run(ctx, db, "."); err != nil {
		log.Error("migration command failed", slog.String("error", err.Error()))
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	log.Info("migration command completed")
	return nil
}
