package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/personnel/internal/app/migrations"
	"github.com/yigit/personnel/internal/config"
	"github.com/yigit/personnel/internal/pkg/logger"
)

func main() {
	var configPath, migrationsDir string

	// newMigrator loads the config lazily so --help works without one
	newMigrator := func() (*migrations.Migrator, zerolog.Logger, error) {
		if configPath == "" {
			configPath = config.ResolvePath()
		}
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, zerolog.Logger{}, fmt.Errorf("failed to load config: %w", err)
		}

		lgr := logger.Configure(logger.Config{
			Level:  logger.LogLevel(cfg.Logging.Level),
			Pretty: logger.ParseFormat(cfg.Logging.Format),
		})

		dir := migrationsDir
		if dir == "" {
			dir = cfg.Database.MigrationsDir
		}
		return migrations.NewMigrator(dir, cfg.GetPostgresConnectionString(), lgr), lgr, nil
	}

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the personnel database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (defaults to CONFIG_PATH env or configs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "", "directory containing migration files (defaults to database.migrations_dir)")

	action := func(use, short string, run func(*migrations.Migrator) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				m, _, err := newMigrator()
				if err != nil {
					return err
				}
				return run(m)
			},
		}
	}

	rootCmd.AddCommand(action("up", "Apply all pending migrations", (*migrations.Migrator).Up))
	rootCmd.AddCommand(action("down", "Revert all applied migrations", (*migrations.Migrator).Down))
	rootCmd.AddCommand(action("drop", "Drop everything in the database", (*migrations.Migrator).Drop))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, lgr, err := newMigrator()
			if err != nil {
				return err
			}

			version, dirty, ok, err := m.Version()
			if err != nil {
				return err
			}
			if !ok {
				lgr.Info().Msg("No migration applied")
				return nil
			}
			lgr.Info().Uint("version", version).Bool("dirty", dirty).Msg("Migration version")
			return nil
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
