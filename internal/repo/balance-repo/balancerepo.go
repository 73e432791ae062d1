package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/pg"
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

// GetUserBalance returns nil when the user has no balance row yet.
func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
		SELECT user_id, balance::float8
		FROM gp_balances
		WHERE user_id = $1
	`
	var balance domain.Balance
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance.UserID, &balance.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// EnsureUserBalance creates the default row if it is missing.
func (r *Repository) EnsureUserBalance(ctx context.Context, userID int) error {
	query := `
		INSERT INTO gp_balances (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID, domain.DefaultBalance); err != nil {
		zap.L().Error("failed to ensure user balance", zap.Error(err))
		return err
	}
	return nil
}

// LockUserBalance reads the balance holding a row lock until the
// surrounding transaction ends.
func (r *Repository) LockUserBalance(ctx context.Context, userID int) (float64, error) {
	query := `
		SELECT balance::float8
		FROM gp_balances
		WHERE user_id = $1
		FOR UPDATE
	`
	var balance float64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		zap.L().Error("failed to lock user balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) DebitUserBalance(ctx context.Context, userID int, amount float64) (float64, error) {
	query := `
		UPDATE gp_balances
		SET balance = balance - $1
		WHERE user_id = $2
		RETURNING balance::float8
	`
	var balance float64
	if err := r.db.QueryRow(ctx, query, amount, userID).Scan(&balance); err != nil {
		zap.L().Error("failed to debit user balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// CreditUserBalance adds amount, starting from the default balance when the
// row does not exist yet.
func (r *Repository) CreditUserBalance(ctx context.Context, userID int, amount float64) (float64, error) {
	query := `
		INSERT INTO gp_balances (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance = gp_balances.balance + $3
		RETURNING balance::float8
	`
	var balance float64
	err := r.db.QueryRow(ctx, query, userID, domain.DefaultBalance+amount, amount).Scan(&balance)
	if err != nil {
		zap.L().Error("failed to credit user balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}
