package pg

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/tipsters/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

const migrationsDialect = "postgres"

// RunMigrations applies the embedded schema and returns the version the
// database ended up at.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) (version int64, err error) {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(migrationsDialect); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if cErr := db.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("failed to close db: %w", cErr)
		}
	}()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return 0, fmt.Errorf("failed to run migrations: %w", err)
	}
	version, err = goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	zap.L().Info("schema up to date", zap.Int64("version", version))
	return version, nil
}
