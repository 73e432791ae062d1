package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, email, password_hash, display_name, is_admin, is_blocked, email_verified, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName,
		&user.IsAdmin, &user.IsBlocked, &user.EmailVerified, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE LOWER(email) = LOWER($1)", email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Leaderboard lists users ordered by GP balance, then by number of slips.
func (repo *Repository) Leaderboard(ctx context.Context, limit int) ([]domain.Tipster, error) {
	query := `
		SELECT u.id, u.email, u.display_name,
		       COALESCE(b.balance, 0)::float8 AS balance,
		       (SELECT COUNT(*) FROM saved_bets sb WHERE sb.user_id = u.id)::int AS total_bets
		FROM users u
		LEFT JOIN gp_balances b ON b.user_id = u.id
		WHERE NOT u.is_blocked
		ORDER BY balance DESC, total_bets DESC
		LIMIT $1
	`
	rows, err := repo.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't load leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tipsters []domain.Tipster
	for rows.Next() {
		var t domain.Tipster
		if err := rows.Scan(&t.ID, &t.Email, &t.DisplayName, &t.Balance, &t.TotalBets); err != nil {
			zap.L().Error("can't scan leaderboard row", zap.Error(err))
			return nil, err
		}
		tipsters = append(tipsters, t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("leaderboard rows error", zap.Error(err))
		return nil, err
	}
	return tipsters, nil
}

// FindTipster returns the public profile of one user, or nil if unknown.
func (repo *Repository) FindTipster(ctx context.Context, id int) (*domain.Tipster, error) {
	query := `
		SELECT u.id, u.email, u.display_name,
		       COALESCE(b.balance, 0)::float8 AS balance,
		       (SELECT COUNT(*) FROM saved_bets sb WHERE sb.user_id = u.id)::int AS total_bets
		FROM users u
		LEFT JOIN gp_balances b ON b.user_id = u.id
		WHERE u.id = $1
	`
	var t domain.Tipster
	err := repo.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.Email, &t.DisplayName, &t.Balance, &t.TotalBets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find tipster", zap.Error(err))
		return nil, err
	}
	return &t, nil
}
