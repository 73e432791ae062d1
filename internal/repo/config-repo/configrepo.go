package configrepo

import (
	"context"

	"github.com/GlebRadaev/tipsters/internal/pg"
	"go.uber.org/zap"
)

// Repository reads the key/value settings an administrator can override.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Values returns every setting whose key starts with prefix.
func (r *Repository) Values(ctx context.Context, prefix string) (map[string]string, error) {
	rows, err := r.db.Query(ctx, `SELECT config_key, config_value FROM admin_config WHERE config_key LIKE $1`, prefix+"%")
	if err != nil {
		zap.L().Error("can't read admin config", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			zap.L().Error("can't scan admin config row", zap.Error(err))
			return nil, err
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("admin config rows error", zap.Error(err))
		return nil, err
	}
	return values, nil
}
