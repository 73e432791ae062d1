package betrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const slipColumns = `id, user_id, total_odds::float8, stake::float8, potential_win::float8, is_settled, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, slip *domain.BetSlip) (int, error) {
	query := `
		INSERT INTO saved_bets (user_id, total_odds, stake, potential_win)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query, slip.UserID, slip.TotalOdds, slip.Stake, slip.PotentialWin).Scan(&id)
	if err != nil {
		zap.L().Error("can't save bet slip", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *Repository) AddSelection(ctx context.Context, betID int, s domain.Selection) error {
	query := `
		INSERT INTO saved_bet_selections (saved_bet_id, match_id, market, selection, odd)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, betID, s.MatchID, s.Market, s.Selection, s.Odd); err != nil {
		zap.L().Error("can't save bet selection", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.BetSlip, error) {
	query := `SELECT ` + slipColumns + ` FROM saved_bets WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get bet slips", zap.Error(err))
		return nil, err
	}
	return collectSlips(rows)
}

func (r *Repository) FindByID(ctx context.Context, betID int) (*domain.BetSlip, error) {
	query := `SELECT ` + slipColumns + ` FROM saved_bets WHERE id = $1`
	var s domain.BetSlip
	err := r.db.QueryRow(ctx, query, betID).
		Scan(&s.ID, &s.UserID, &s.TotalOdds, &s.Stake, &s.PotentialWin, &s.IsSettled, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find bet slip", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// FindSettleCandidates pages through unsettled slips created since the given
// time whose matches have all finished, ordered by id after the cursor.
func (r *Repository) FindSettleCandidates(ctx context.Context, since time.Time, afterID, limit int) ([]domain.BetSlip, error) {
	query := `SELECT ` + slipColumns + ` FROM saved_bets b
		WHERE NOT b.is_settled
		  AND b.created_at >= $1
		  AND b.id > $2
		  AND EXISTS (SELECT 1 FROM saved_bet_selections s WHERE s.saved_bet_id = b.id)
		  AND NOT EXISTS (
			SELECT 1 FROM saved_bet_selections s
			JOIN matches m ON m.fixture_id = s.match_id
			WHERE s.saved_bet_id = b.id AND m.status <> 'FT'
		  )
		ORDER BY b.id
		LIMIT $3`
	rows, err := r.db.Query(ctx, query, since, afterID, limit)
	if err != nil {
		zap.L().Error("can't get settle candidates", zap.Error(err))
		return nil, err
	}
	return collectSlips(rows)
}

func collectSlips(rows pgx.Rows) ([]domain.BetSlip, error) {
	defer rows.Close()

	slips := make([]domain.BetSlip, 0)
	for rows.Next() {
		var s domain.BetSlip
		if err := rows.Scan(&s.ID, &s.UserID, &s.TotalOdds, &s.Stake, &s.PotentialWin, &s.IsSettled, &s.CreatedAt); err != nil {
			zap.L().Error("can't scan bet slip", zap.Error(err))
			return nil, err
		}
		slips = append(slips, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("bet slip rows error", zap.Error(err))
		return nil, err
	}
	return slips, nil
}

// Selections loads the legs of the given slips joined with their matches.
func (r *Repository) Selections(ctx context.Context, betIDs []int) ([]domain.Selection, error) {
	if len(betIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT s.id, s.saved_bet_id, s.match_id, s.market, s.selection, s.odd::float8,
		       m.home_team, m.away_team, m.league_name, m.fixture_date, m.status,
		       COALESCE(m.goals_home, -1), COALESCE(m.goals_away, -1), COALESCE(m.minute, 0)
		FROM saved_bet_selections s
		JOIN matches m ON m.fixture_id = s.match_id
		WHERE s.saved_bet_id = ANY($1)
		ORDER BY s.saved_bet_id, s.id
	`
	rows, err := r.db.Query(ctx, query, betIDs)
	if err != nil {
		zap.L().Error("can't get bet selections", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var selections []domain.Selection
	for rows.Next() {
		var s domain.Selection
		err := rows.Scan(
			&s.ID, &s.BetID, &s.MatchID, &s.Market, &s.Selection, &s.Odd,
			&s.HomeTeam, &s.AwayTeam, &s.LeagueName, &s.FixtureDate, &s.MatchStatus,
			&s.GoalsHome, &s.GoalsAway, &s.Minute,
		)
		if err != nil {
			zap.L().Error("can't scan bet selection", zap.Error(err))
			return nil, err
		}
		selections = append(selections, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("bet selection rows error", zap.Error(err))
		return nil, err
	}
	return selections, nil
}

// LockSettled reads the settled flag holding a row lock on the slip until
// the surrounding transaction ends.
func (r *Repository) LockSettled(ctx context.Context, betID int) (bool, error) {
	var settled bool
	err := r.db.QueryRow(ctx, `SELECT is_settled FROM saved_bets WHERE id = $1 FOR UPDATE`, betID).Scan(&settled)
	if err != nil {
		zap.L().Error("can't lock bet slip", zap.Error(err))
		return false, err
	}
	return settled, nil
}

func (r *Repository) MarkSettled(ctx context.Context, betID int) error {
	if _, err := r.db.Exec(ctx, `UPDATE saved_bets SET is_settled = TRUE WHERE id = $1`, betID); err != nil {
		zap.L().Error("can't mark bet slip settled", zap.Error(err))
		return err
	}
	return nil
}

// Delete removes a slip of the user; false means nothing matched.
func (r *Repository) Delete(ctx context.Context, userID, betID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM saved_bets WHERE id = $1 AND user_id = $2`, betID, userID)
	if err != nil {
		zap.L().Error("can't delete bet slip", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindPublicByUser lists a tipster's slips with the lock state of the viewer.
// viewerID 0 means anonymous.
func (r *Repository) FindPublicByUser(ctx context.Context, tipsterID, viewerID int) ([]domain.PublicBet, error) {
	query := `
		SELECT b.id, b.total_odds::float8, b.stake::float8, b.potential_win::float8,
		       (SELECT COUNT(*) FROM saved_bet_selections s WHERE s.saved_bet_id = b.id)::int AS match_count,
		       EXISTS (SELECT 1 FROM bet_locks l WHERE l.user_id = $1 AND l.bet_id = b.id) AS is_unlocked,
		       b.created_at
		FROM saved_bets b
		WHERE b.user_id = $2
		ORDER BY b.created_at DESC, b.id DESC
	`
	rows, err := r.db.Query(ctx, query, viewerID, tipsterID)
	if err != nil {
		zap.L().Error("can't get public bets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	bets := make([]domain.PublicBet, 0)
	for rows.Next() {
		var b domain.PublicBet
		if err := rows.Scan(&b.ID, &b.TotalOdds, &b.Stake, &b.PotentialWin, &b.MatchCount, &b.IsUnlocked, &b.CreatedAt); err != nil {
			zap.L().Error("can't scan public bet", zap.Error(err))
			return nil, err
		}
		bets = append(bets, b)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("public bet rows error", zap.Error(err))
		return nil, err
	}
	return bets, nil
}
