package walletrepo

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

// GetBalance returns 0 for users without a wallet.
func (r *Repository) GetBalance(ctx context.Context, userID int) (float64, error) {
	return r.balance(ctx, `SELECT balance_euro::float8 FROM advisor_wallets WHERE user_id = $1`, userID)
}

// LockBalance is GetBalance holding a row lock until the surrounding
// transaction ends.
func (r *Repository) LockBalance(ctx context.Context, userID int) (float64, error) {
	return r.balance(ctx, `SELECT balance_euro::float8 FROM advisor_wallets WHERE user_id = $1 FOR UPDATE`, userID)
}

func (r *Repository) balance(ctx context.Context, query string, userID int) (float64, error) {
	var balance float64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		zap.L().Error("can't read advisor wallet", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// Credit creates the wallet on first sale and increments it afterwards.
func (r *Repository) Credit(ctx context.Context, userID int, amount float64) error {
	query := `
		INSERT INTO advisor_wallets (user_id, balance_euro)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance_euro = advisor_wallets.balance_euro + $2
	`
	if _, err := r.db.Exec(ctx, query, userID, amount); err != nil {
		zap.L().Error("can't credit advisor wallet", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Debit(ctx context.Context, userID int, amount float64) error {
	query := `
		UPDATE advisor_wallets
		SET balance_euro = balance_euro - $1
		WHERE user_id = $2
	`
	if _, err := r.db.Exec(ctx, query, amount, userID); err != nil {
		zap.L().Error("can't debit advisor wallet", zap.Error(err))
		return err
	}
	return nil
}
