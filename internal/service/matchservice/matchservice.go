package matchservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/tipsters/internal/cache"
	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/odds"
	"go.uber.org/zap"
)

const (
	DateLayout = "2006-01-02"
	teamWindow = 90 * 24 * time.Hour
)

var ErrInvalidDate = errors.New("Data non valida, formato atteso YYYY-MM-DD")

type Repo interface {
	Upcoming(ctx context.Context, bookmakerID int, from time.Time) ([]domain.Match, error)
	Between(ctx context.Context, bookmakerID int, from, to time.Time) ([]domain.Match, error)
	Odds(ctx context.Context, bookmakerID int, matchIDs []int) ([]domain.OddRow, error)
	Teams(ctx context.Context, since time.Time) ([]domain.Team, error)
}

type Service struct {
	repo        Repo
	cache       cache.Cache
	ttl         time.Duration
	bookmakerID int
	loc         *time.Location
	now         func() time.Time
}

func New(repo Repo, c cache.Cache, ttl time.Duration, bookmakerID int, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:        repo,
		cache:       c,
		ttl:         ttl,
		bookmakerID: bookmakerID,
		loc:         loc,
		now:         time.Now,
	}
}

// Location is the timezone calendar days and kickoff times are shown in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Upcoming lists not started matches from the start of today onwards.
func (s *Service) Upcoming(ctx context.Context) ([]odds.MatchOdds, error) {
	today := startOfDay(s.now().In(s.loc))
	return s.cached(ctx, "upcoming:"+today.Format(DateLayout), func() ([]domain.Match, error) {
		return s.repo.Upcoming(ctx, s.bookmakerID, today)
	})
}

// ByDate lists the matches of one calendar day in the display timezone.
func (s *Service) ByDate(ctx context.Context, date string) ([]odds.MatchOdds, error) {
	day, err := time.ParseInLocation(DateLayout, date, s.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return s.cached(ctx, "date:"+day.Format(DateLayout), func() ([]domain.Match, error) {
		return s.repo.Between(ctx, s.bookmakerID, day, day.AddDate(0, 0, 1))
	})
}

func (s *Service) Teams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.repo.Teams(ctx, s.now().Add(-teamWindow))
	if err != nil {
		zap.L().Error("failed to get teams", zap.Error(err))
		return nil, err
	}
	return teams, nil
}

func (s *Service) cached(ctx context.Context, key string, load func() ([]domain.Match, error)) ([]odds.MatchOdds, error) {
	var out []odds.MatchOdds
	hit, err := s.cache.Get(ctx, key, &out)
	if err != nil {
		zap.L().Warn("match cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return out, nil
	}

	matches, err := load()
	if err != nil {
		zap.L().Error("failed to get matches", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	ids := make([]int, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.FixtureID)
	}
	rows, err := s.repo.Odds(ctx, s.bookmakerID, ids)
	if err != nil {
		zap.L().Error("failed to get odds", zap.Error(err))
		return nil, err
	}

	out = odds.Attach(matches, rows)
	if err := s.cache.Set(ctx, key, out, s.ttl); err != nil {
		zap.L().Warn("match cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
