package matchrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const matchSelect = `
	SELECT m.fixture_id, m.league_id, m.league_name,
	       m.home_team_id, m.home_team, m.home_logo,
	       m.away_team_id, m.away_team, m.away_logo,
	       m.fixture_date, m.status,
	       COALESCE(m.goals_home, -1), COALESCE(m.goals_away, -1), COALESCE(m.minute, 0),
	       COALESCE(l.priority, m.priority, 1000) AS current_priority
	FROM matches m
	LEFT JOIN league_priorities l ON l.league_id = m.league_id
`

// Only matches quoted by the configured bookmaker are listed.
const quotedFilter = `
	AND EXISTS (
		SELECT 1 FROM odds o
		WHERE o.match_id = m.fixture_id AND o.bookmaker_id = $1 AND o.odd > 0
	)
	ORDER BY current_priority ASC, m.fixture_date ASC
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Upcoming lists not started matches kicking off at or after from.
func (r *Repository) Upcoming(ctx context.Context, bookmakerID int, from time.Time) ([]domain.Match, error) {
	query := matchSelect + `WHERE m.status = 'NS' AND m.fixture_date >= $2` + quotedFilter
	rows, err := r.db.Query(ctx, query, bookmakerID, from)
	if err != nil {
		zap.L().Error("failed to query upcoming matches", zap.Error(err))
		return nil, err
	}
	return collectMatches(rows)
}

// Between lists matches kicking off in [from, to).
func (r *Repository) Between(ctx context.Context, bookmakerID int, from, to time.Time) ([]domain.Match, error) {
	query := matchSelect + `WHERE m.fixture_date >= $2 AND m.fixture_date < $3` + quotedFilter
	rows, err := r.db.Query(ctx, query, bookmakerID, from, to)
	if err != nil {
		zap.L().Error("failed to query matches by date", zap.Error(err))
		return nil, err
	}
	return collectMatches(rows)
}

func collectMatches(rows pgx.Rows) ([]domain.Match, error) {
	defer rows.Close()

	matches := make([]domain.Match, 0)
	for rows.Next() {
		var m domain.Match
		err := rows.Scan(
			&m.FixtureID, &m.LeagueID, &m.LeagueName,
			&m.HomeTeamID, &m.HomeTeam, &m.HomeLogo,
			&m.AwayTeamID, &m.AwayTeam, &m.AwayLogo,
			&m.FixtureDate, &m.Status,
			&m.GoalsHome, &m.GoalsAway, &m.Minute,
			&m.Priority,
		)
		if err != nil {
			zap.L().Error("failed to scan match", zap.Error(err))
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("match rows error", zap.Error(err))
		return nil, err
	}
	return matches, nil
}

// Odds loads the raw quotes of the bookmaker for the given matches.
func (r *Repository) Odds(ctx context.Context, bookmakerID int, matchIDs []int) ([]domain.OddRow, error) {
	if len(matchIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT match_id, market, selection, odd::text
		FROM odds
		WHERE bookmaker_id = $1 AND match_id = ANY($2)
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, bookmakerID, matchIDs)
	if err != nil {
		zap.L().Error("failed to query odds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.OddRow
	for rows.Next() {
		var o domain.OddRow
		if err := rows.Scan(&o.MatchID, &o.Market, &o.Selection, &o.Odd); err != nil {
			zap.L().Error("failed to scan odd", zap.Error(err))
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("odds rows error", zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Teams lists distinct home teams seen since the given time.
func (r *Repository) Teams(ctx context.Context, since time.Time) ([]domain.Team, error) {
	query := `
		SELECT DISTINCT home_team_id, home_team, home_logo
		FROM matches
		WHERE fixture_date >= $1
		ORDER BY home_team ASC
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		zap.L().Error("failed to query teams", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	teams := make([]domain.Team, 0)
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Logo); err != nil {
			zap.L().Error("failed to scan team", zap.Error(err))
			return nil, err
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("team rows error", zap.Error(err))
		return nil, err
	}
	return teams, nil
}
