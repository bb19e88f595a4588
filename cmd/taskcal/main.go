// taskcal is the terminal client: a month calendar over a local SQLite file,
// plus maintenance commands shared with the API deployment.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taskcal/internal/board"
	"taskcal/internal/config"
	"taskcal/internal/repo"
	"taskcal/internal/service"
	"taskcal/internal/store"
	"taskcal/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskcal",
	Short: "Todo calendar with drag-to-reschedule",
	Long: `taskcal keeps todos in a month calendar. Grab a todo, walk it to
another day and drop it there to move its due date.

Run without a subcommand to open the calendar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return calendarCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Open the terminal calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		return runCalendar(cmd.Context(), path)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Apply migrations to a SQLite file (--sqlite) or a PostgreSQL database (--pg).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sqlitePath, _ := cmd.Flags().GetString("sqlite")
		dsn, _ := cmd.Flags().GetString("pg")
		return runMigrate(cmd.Context(), sqlitePath, dsn)
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print a bcrypt hash for seeding users",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cost, _ := cmd.Flags().GetInt("cost")
		h, err := bcrypt.GenerateFromPassword([]byte(args[0]), cost)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(h))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "taskcal %s\n", version)
	},
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, calendarCmd} {
		c.Flags().String("config", defaultConfigPath(), "client config file")
	}

	migrateCmd.Flags().String("sqlite", "", "SQLite database file")
	migrateCmd.Flags().String("pg", "", "PostgreSQL DSN")
	migrateCmd.MarkFlagsMutuallyExclusive("sqlite", "pg")
	migrateCmd.MarkFlagsOneRequired("sqlite", "pg")

	hashCmd.Flags().Int("cost", bcrypt.DefaultCost, "bcrypt cost")

	rootCmd.AddCommand(calendarCmd, migrateCmd, hashCmd, versionCmd)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return config.DefaultClientFileName
	}
	return filepath.Join(dir, "taskcal", config.DefaultClientFileName)
}

func runCalendar(ctx context.Context, configPath string) error {
	cfg, err := config.LoadOrCreateClient(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	dbPath := cfg.DBPath
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(filepath.Dir(configPath), dbPath)
	}

	loc := time.Local
	if cfg.Timezone != "" {
		if loc, err = time.LoadLocation(cfg.Timezone); err != nil {
			return fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
		}
	}

	db, err := repo.OpenSQLite(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	// The terminal owns stdout and stderr while the program runs.
	logFile, err := os.OpenFile(filepath.Join(filepath.Dir(dbPath), "taskcal.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := log.NewWithOptions(logFile, log.Options{ReportTimestamp: true, Prefix: "taskcal"})

	st := store.New(service.NewTodoService(repo.NewSQLiteTodoRepo(db), nil), cfg.UserID, store.WithLogger(logger))
	b := board.New(st, board.Settings{
		Location:      loc,
		DragThreshold: cfg.DragThreshold,
		KeepTimeOfDay: cfg.KeepTimeOfDay,
	})
	logger.Info("calendar opened", "db", dbPath, "user", cfg.UserID)

	_, err = tea.NewProgram(ui.New(ctx, b, cfg.Keys), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func runMigrate(ctx context.Context, sqlitePath, dsn string) error {
	if sqlitePath != "" {
		// OpenSQLite migrates on open.
		db, err := repo.OpenSQLite(ctx, sqlitePath)
		if err != nil {
			return err
		}
		fmt.Println("migrated", sqlitePath)
		return db.Close()
	}
	if err := repo.MigratePostgres(ctx, dsn); err != nil {
		return err
	}
	fmt.Println("migrated postgres")
	return nil
}
