package lockrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/tipsters/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Exists(ctx context.Context, userID, betID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bet_locks WHERE user_id = $1 AND bet_id = $2)`, userID, betID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check bet lock", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Insert records a purchase. It reports false without error when the buyer
// already holds a lock on the slip.
func (r *Repository) Insert(ctx context.Context, userID, betID int, price float64) (bool, error) {
	query := `
		INSERT INTO bet_locks (user_id, bet_id, purchased_price)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, bet_id) DO NOTHING
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query, userID, betID, price).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't save bet lock", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) CountByBet(ctx context.Context, betID int) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)::int FROM bet_locks WHERE bet_id = $1`, betID).Scan(&count); err != nil {
		zap.L().Error("can't count bet locks", zap.Error(err))
		return 0, err
	}
	return count, nil
}
