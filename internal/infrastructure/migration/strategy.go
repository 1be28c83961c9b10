package migration

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

//go:embed scripts/mysql/*.sql scripts/postgres/*.sql scripts/sqlite/*.sql
var scripts embed.FS

// goose keeps its dialect and base FS in package state.
var gooseMu sync.Mutex

type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// GooseStrategy applies the versioned SQL scripts embedded in the binary.
type GooseStrategy struct {
	driver string
	logger logger.Interface
}

func NewGooseStrategy(driver string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		driver: driver,
		logger: log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) dialect() (string, string, error) {
	switch s.driver {
	case "mysql", "":
		return "mysql", "scripts/mysql", nil
	case "postgres":
		return "postgres", "scripts/postgres", nil
	case "sqlite":
		return "sqlite3", "scripts/sqlite", nil
	default:
		return "", "", fmt.Errorf("no migration scripts for driver %q", s.driver)
	}
}

// withGoose configures goose for this driver and hands fn the script dir.
func (s *GooseStrategy) withGoose(fn func(dir string) error) error {
	dialect, dir, err := s.dialect()
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn(dir)
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.withGoose(func(dir string) error {
		currentVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
		s.logger.Infow("starting goose migration", "driver", s.driver, "version", currentVersion)

		if err := goose.Up(sqlDB, dir); err != nil {
			s.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		finalVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}
		s.logger.Infow("migration completed successfully",
			"from_version", currentVersion,
			"to_version", finalVersion)
		return nil
	})
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.withGoose(func(dir string) error {
		s.logger.Infow("starting down migration", "steps", steps)
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, dir); err != nil {
				s.logger.Errorw("down migration failed", "error", err)
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		s.logger.Infow("down migration completed successfully")
		return nil
	})
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	var version int64
	err = s.withGoose(func(string) error {
		v, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

// Pending lists the embedded script names not yet applied.
func (s *GooseStrategy) Pending(db *gorm.DB) ([]string, error) {
	current, err := s.GetVersion(db)
	if err != nil {
		return nil, err
	}
	_, dir, err := s.dialect()
	if err != nil {
		return nil, err
	}

	var pending []string
	err = s.withGoose(func(string) error {
		migrations, err := goose.CollectMigrations(dir, current, goose.MaxVersion)
		if err != nil && err != goose.ErrNoMigrationFiles {
			return fmt.Errorf("failed to collect migrations: %w", err)
		}
		for _, m := range migrations {
			pending = append(pending, m.Source)
		}
		return nil
	})
	return pending, err
}

// Scripts exposes the embedded migrations, mainly for tests.
func Scripts() fs.FS {
	return scripts
}

// GormAutoMigrateStrategy creates tables straight from the gorm models. It
// is meant for throwaway sqlite databases.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("running gorm automigrate", "models_count", len(all))
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("failed to automigrate models: %w", err)
	}
	return nil
}
