package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO payment_orders (order_id, buyer_id, bet_id, amount, status)`)
	order := &domain.PaymentOrder{OrderID: "5O190127TN364715T", BuyerID: 5, BetID: 9, Amount: 3.5, Status: domain.OrderCreated}

	mock.ExpectExec(query).WithArgs("5O190127TN364715T", 5, 9, 3.5, "CREATED").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Create(context.Background(), order))

	mock.ExpectExec(query).WithArgs("5O190127TN364715T", 5, 9, 3.5, "CREATED").WillReturnError(errors.New("duplicate key"))
	assert.Error(t, repo.Create(context.Background(), order))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`FROM payment_orders WHERE order_id = $1 FOR UPDATE`)
	columns := []string{"order_id", "buyer_id", "bet_id", "amount", "status", "created_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.PaymentOrder
	}{
		{
			name: "Order found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ORDER-1").
					WillReturnRows(pgxmock.NewRows(columns).AddRow("ORDER-1", 5, 9, 3.5, "CREATED", created))
			},
			result: &domain.PaymentOrder{OrderID: "ORDER-1", BuyerID: 5, BetID: 9, Amount: 3.5, Status: "CREATED", CreatedAt: created},
		},
		{
			name: "Unknown order",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ORDER-1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ORDER-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.LockByID(context.Background(), "ORDER-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkCaptured(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE payment_orders SET status = $1, amount = $2 WHERE order_id = $3`)

	mock.ExpectExec(query).WithArgs("CAPTURED", 3.5, "ORDER-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.MarkCaptured(context.Background(), "ORDER-1", 3.5))

	mock.ExpectExec(query).WithArgs("CAPTURED", 3.5, "ORDER-1").WillReturnError(errors.New("database error"))
	assert.Error(t, repo.MarkCaptured(context.Background(), "ORDER-1", 3.5))

	assert.NoError(t, mock.ExpectationsWereMet())
}
