package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"text/tabwriter"
	"time"

	"breneo/internal/config"
	"breneo/internal/database"
	"breneo/internal/database/migration"
	dbpostgres "breneo/internal/database/postgres"
	"breneo/internal/database/seeder"
	"breneo/migrations"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether each is applied",
	RunE:  runMigrateStatus,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Apply migrations and load the demo jobs and academies",
	RunE:  runSeed,
}

var (
	migrateTimeout time.Duration
	seedOnly       []string
)

func init() {
	migrateCmd.PersistentFlags().DurationVar(&migrateTimeout, "timeout", 2*time.Minute, "Overall deadline")
	seedCmd.Flags().DurationVar(&migrateTimeout, "timeout", 2*time.Minute, "Overall deadline")
	migrateCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd, seedCmd)
	seedCmd.Flags().StringSliceVar(&seedOnly, "only", nil, "Seeders to run, e.g. --only jobs,academies (default all)")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	return withDB(cmd, func(context.Context, database.DB, *log.Logger) error {
		return nil
	})
}

func runMigrateStatus(cmd *cobra.Command, _ []string) error {
	return connect(cmd, func(ctx context.Context, db database.DB, r migration.Runner, _ *log.Logger) error {
		states, err := r.Status(ctx, db)
		if err != nil && len(states) == 0 {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tNAME\tAPPLIED")
		for _, st := range states {
			applied := "pending"
			if st.Applied() {
				applied = st.AppliedAt.Local().Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", st.Version, st.Name, applied)
		}
		if ferr := w.Flush(); ferr != nil {
			return ferr
		}
		return err
	})
}

func runSeed(cmd *cobra.Command, _ []string) error {
	seeders, err := seeder.ByName(seeder.Defaults(), seedOnly...)
	if err != nil {
		return err
	}
	return withDB(cmd, func(ctx context.Context, db database.DB, logger *log.Logger) error {
		results, err := seeder.Runner{Seeders: seeders, Logger: logger}.Run(ctx, db)
		for _, res := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", res.Name)
		}
		return err
	})
}

// withDB connects, applies migrations and then runs fn.
func withDB(cmd *cobra.Command, fn func(context.Context, database.DB, *log.Logger) error) error {
	return connect(cmd, func(ctx context.Context, db database.DB, r migration.Runner, logger *log.Logger) error {
		n, err := r.Run(ctx, db)
		if err != nil {
			return err
		}
		logger.Printf("Migration | done | applied=%d", n)
		return fn(ctx, db, logger)
	})
}

func connect(cmd *cobra.Command, fn func(context.Context, database.DB, migration.Runner, *log.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Database.Configured() {
		return errors.New("database not configured: set DB_HOST, DB_NAME and DB_USER")
	}
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	r := migration.Runner{Dir: cfg.App.MigrationsDir, FS: migrations.FS, Logger: logger}
	return fn(ctx, db, r, logger)
}
