package postgres_client

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/init-pkg/column-mapper/internal/config"
	"github.com/init-pkg/column-mapper/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens the database/sql pool through lib/pq.
func Open(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.Dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// New returns a gorm handle sharing the lib/pq pool, or nil when the
// database is disabled. Migrations run on start when configured.
func New(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	if !cfg.Database.Enabled {
		return nil, nil
	}

	sqlDB, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := sqlDB.PingContext(ctx); err != nil {
				return fmt.Errorf("postgres ping: %w", err)
			}
			if cfg.Database.MigrateOnStart {
				if err := migrations.Up(ctx, sqlDB); err != nil {
					return err
				}
				log.Info("migrations applied")
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}
