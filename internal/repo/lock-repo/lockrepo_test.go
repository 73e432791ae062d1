package lockrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Exists(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM bet_locks WHERE user_id = $1 AND bet_id = $2)`)

	mock.ExpectQuery(query).WithArgs(5, 9).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	exists, err := repo.Exists(context.Background(), 5, 9)
	assert.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(query).WithArgs(5, 9).WillReturnError(errors.New("database error"))
	_, err = repo.Exists(context.Background(), 5, 9)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`ON CONFLICT (user_id, bet_id) DO NOTHING RETURNING id`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		created   bool
	}{
		{
			name: "New lock",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(5, 9, 3.5).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			created: true,
		},
		{
			name: "Already unlocked",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(5, 9, 3.5).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(5, 9, 3.5).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Insert(context.Background(), 5, 9, 3.5)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.created, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CountByBet(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT COUNT(*)::int FROM bet_locks WHERE bet_id = $1`)

	mock.ExpectQuery(query).WithArgs(9).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	count, err := repo.CountByBet(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	mock.ExpectQuery(query).WithArgs(9).WillReturnError(errors.New("database error"))
	_, err = repo.CountByBet(context.Background(), 9)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
