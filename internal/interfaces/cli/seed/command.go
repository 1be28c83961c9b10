package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/polyforma/qualitrack/internal/infrastructure/config"
	"github.com/polyforma/qualitrack/internal/infrastructure/database"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/seeds"
	"github.com/polyforma/qualitrack/internal/infrastructure/repository"
	"github.com/polyforma/qualitrack/internal/shared/db"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

var (
	env          string
	configPath   string
	fixturesPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load products and directory users from a fixture file",
		Long: `Upsert the product catalog and user directory from a YAML fixture.
Products are matched by code and users by email.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&fixturesPath, "file", "f", "./configs/seed.yaml", "Fixture file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	f, err := os.Open(fixturesPath)
	if err != nil {
		return fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()

	fixtures, err := seeds.Parse(f)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gdb := database.Get()
	var result seeds.Result
	err = db.NewTransactionManager(gdb).RunInTransaction(cmd.Context(), func(ctx context.Context) error {
		var applyErr error
		result, applyErr = seeds.Apply(ctx, fixtures,
			repository.NewProductCatalogRepository(gdb),
			repository.NewUserDirectoryRepository(gdb),
		)
		return applyErr
	})
	if err != nil {
		log.Errorw("seeding failed", "file", fixturesPath, "error", err)
		return err
	}

	log.Infow("seed completed", "file", fixturesPath, "products", result.Products, "users", result.Users)
	return nil
}
