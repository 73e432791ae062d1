package balancerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepository_GetUserBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT user_id, balance::float8 FROM gp_balances WHERE user_id = $1`)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Balance
	}{
		{
			name:   "Existing balance",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "balance"}).AddRow(1, 80.0))
			},
			result: &domain.Balance{UserID: 1, Balance: 80},
		},
		{
			name:   "No row yet",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetUserBalance(context.Background(), tt.userID)
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

func TestRepository_EnsureUserBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO gp_balances (user_id, balance) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`)

	mock.ExpectExec(query).WithArgs(1, 100.0).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.EnsureUserBalance(context.Background(), 1))

	mock.ExpectExec(query).WithArgs(1, 100.0).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.EnsureUserBalance(context.Background(), 1))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockUserBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`FROM gp_balances WHERE user_id = $1 FOR UPDATE`)

	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(100.0))
	balance, err := repo.LockUserBalance(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, balance)

	mock.ExpectQuery(query).WithArgs(1).WillReturnError(pgx.ErrNoRows)
	_, err = repo.LockUserBalance(context.Background(), 1)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DebitUserBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE gp_balances SET balance = balance - $1 WHERE user_id = $2`)

	mock.ExpectQuery(query).WithArgs(20.0, 1).WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(80.0))
	balance, err := repo.DebitUserBalance(context.Background(), 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, 80.0, balance)

	mock.ExpectQuery(query).WithArgs(20.0, 1).WillReturnError(errors.New("database error"))
	_, err = repo.DebitUserBalance(context.Background(), 1, 20)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreditUserBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE SET balance = gp_balances.balance + $3`)

	tests := []struct {
		name      string
		amount    float64
		mockSetup func()
		expectErr bool
		result    float64
	}{
		{
			name:   "Credit existing row",
			amount: 100,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 200.0, 100.0).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(180.0))
			},
			result: 180,
		},
		{
			name:   "Database error",
			amount: 50,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 150.0, 50.0).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreditUserBalance(context.Background(), 1, tt.amount)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
