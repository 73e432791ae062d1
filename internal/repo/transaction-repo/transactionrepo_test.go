package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO transactions (user_id, amount, type, status, payment_email) VALUES ($1, $2, $3, $4, NULLIF($5, ''))`)

	tests := []struct {
		name      string
		input     *domain.Transaction
		mockSetup func()
		expectErr bool
		result    *domain.Transaction
	}{
		{
			name:  "Sale without payer email",
			input: &domain.Transaction{UserID: 3, Amount: 1.75, Type: domain.TxTypeSale, Status: domain.TxStatusCompleted},
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3, 1.75, "sale", "completed", "").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))
			},
			result: &domain.Transaction{ID: 1, UserID: 3, Amount: 1.75, Type: "sale", Status: "completed", CreatedAt: created},
		},
		{
			name:  "Withdrawal with email",
			input: &domain.Transaction{UserID: 3, Amount: 10, Type: domain.TxTypeWithdrawal, Status: domain.TxStatusPending, PaymentEmail: "pay@example.com"},
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3, 10.0, "withdrawal", "pending", "pay@example.com").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(2, created))
			},
			result: &domain.Transaction{ID: 2, UserID: 3, Amount: 10, Type: "withdrawal", Status: "pending", PaymentEmail: "pay@example.com", CreatedAt: created},
		},
		{
			name:  "Insert fails",
			input: &domain.Transaction{UserID: 3, Amount: 10, Type: "bogus", Status: "pending"},
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3, 10.0, "bogus", "pending", "").
					WillReturnError(errors.New("check constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateTransaction(context.Background(), tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetTransactionsByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`FROM transactions WHERE user_id = $1 ORDER BY created_at DESC, id DESC`)
	columns := []string{"id", "user_id", "amount", "type", "status", "payment_email", "created_at"}

	mock.ExpectQuery(query).WithArgs(3).WillReturnRows(
		pgxmock.NewRows(columns).
			AddRow(2, 3, 10.0, "withdrawal", "pending", "pay@example.com", created.Add(time.Hour)).
			AddRow(1, 3, 1.75, "sale", "completed", "", created),
	)
	result, err := repo.GetTransactionsByUserID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, domain.TxTypeWithdrawal, result[0].Type)
	assert.Equal(t, "", result[1].PaymentEmail)

	mock.ExpectQuery(query).WithArgs(3).WillReturnRows(pgxmock.NewRows(columns))
	result, err = repo.GetTransactionsByUserID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Empty(t, result)

	mock.ExpectQuery(query).WithArgs(3).WillReturnError(errors.New("database error"))
	_, err = repo.GetTransactionsByUserID(context.Background(), 3)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
