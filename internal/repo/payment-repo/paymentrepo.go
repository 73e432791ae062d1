package paymentrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/tipsters/internal/domain"
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

func (r *Repository) Create(ctx context.Context, order *domain.PaymentOrder) error {
	query := `
		INSERT INTO payment_orders (order_id, buyer_id, bet_id, amount, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, order.OrderID, order.BuyerID, order.BetID, order.Amount, order.Status)
	if err != nil {
		zap.L().Error("can't save payment order", zap.Error(err))
		return err
	}
	return nil
}

// LockByID returns the order holding a row lock, or nil when unknown.
func (r *Repository) LockByID(ctx context.Context, orderID string) (*domain.PaymentOrder, error) {
	query := `
		SELECT order_id, buyer_id, bet_id, amount::float8, status, created_at
		FROM payment_orders
		WHERE order_id = $1
		FOR UPDATE
	`
	var o domain.PaymentOrder
	err := r.db.QueryRow(ctx, query, orderID).Scan(&o.OrderID, &o.BuyerID, &o.BetID, &o.Amount, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't load payment order", zap.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *Repository) MarkCaptured(ctx context.Context, orderID string, amount float64) error {
	query := `
		UPDATE payment_orders
		SET status = $1, amount = $2
		WHERE order_id = $3
	`
	if _, err := r.db.Exec(ctx, query, domain.OrderCaptured, amount, orderID); err != nil {
		zap.L().Error("can't mark payment order captured", zap.Error(err))
		return err
	}
	return nil
}
