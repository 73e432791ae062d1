package matchservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/tipsters/internal/cache"
	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/odds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const bookmaker = 8

var rome = time.FixedZone("CEST", 2*60*60)

func NewMock(t *testing.T, c cache.Cache) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	s := New(repo, c, 30*time.Second, bookmaker, rome)
	// 23:30 UTC is already the next day in Rome.
	s.now = func() time.Time { return time.Date(2024, 5, 9, 23, 30, 0, 0, time.UTC) }
	return s, repo
}

func TestUpcoming(t *testing.T) {
	matches := []domain.Match{
		{FixtureID: 100, HomeTeam: "Inter", AwayTeam: "Milan", Status: domain.MatchNotStarted},
		{FixtureID: 101, HomeTeam: "Roma", AwayTeam: "Lazio", Status: domain.MatchNotStarted},
	}
	rows := []domain.OddRow{
		{MatchID: 100, Market: "Match Winner", Selection: "Home", Odd: "2.10"},
		{MatchID: 101, Market: "Both Teams Score", Selection: "Yes", Odd: "1.80"},
	}

	t.Run("loads from the store and normalizes odds", func(t *testing.T) {
		s, repo := NewMock(t, cache.Noop{})
		from := time.Date(2024, 5, 10, 0, 0, 0, 0, rome)
		repo.EXPECT().Upcoming(gomock.Any(), bookmaker, from).Return(matches, nil)
		repo.EXPECT().Odds(gomock.Any(), bookmaker, []int{100, 101}).Return(rows, nil)

		got, err := s.Upcoming(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		home, ok := got[0].Odds.Get(odds.Home)
		assert.True(t, ok)
		assert.Equal(t, 2.10, home)
		gg, ok := got[1].Odds.Get(odds.BothScore)
		assert.True(t, ok)
		assert.Equal(t, 1.80, gg)
	})

	t.Run("store failure", func(t *testing.T) {
		s, repo := NewMock(t, cache.Noop{})
		repo.EXPECT().Upcoming(gomock.Any(), bookmaker, gomock.Any()).Return(nil, errors.New("db down"))

		_, err := s.Upcoming(context.Background())
		assert.Error(t, err)
	})
}

func TestByDateCache(t *testing.T) {
	cached := []odds.MatchOdds{{Match: domain.Match{FixtureID: 100, HomeTeam: "Inter"}}}

	t.Run("hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := cache.NewMockCache(ctrl)
		s, _ := NewMock(t, c)
		c.EXPECT().Get(gomock.Any(), "date:2024-05-12", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
			*dst.(*[]odds.MatchOdds) = cached
			return true, nil
		})

		got, err := s.ByDate(context.Background(), "2024-05-12")
		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("miss stores the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := cache.NewMockCache(ctrl)
		s, repo := NewMock(t, c)
		day := time.Date(2024, 5, 12, 0, 0, 0, 0, rome)
		c.EXPECT().Get(gomock.Any(), "date:2024-05-12", gomock.Any()).Return(false, nil)
		repo.EXPECT().Between(gomock.Any(), bookmaker, day, day.AddDate(0, 0, 1)).Return([]domain.Match{{FixtureID: 100}}, nil)
		repo.EXPECT().Odds(gomock.Any(), bookmaker, []int{100}).Return(nil, nil)
		c.EXPECT().Set(gomock.Any(), "date:2024-05-12", gomock.Any(), 30*time.Second).Return(nil)

		got, err := s.ByDate(context.Background(), "2024-05-12")
		require.NoError(t, err)
		require.Len(t, got, 1)
		_, ok := got[0].Odds.Get(odds.Home)
		assert.False(t, ok)
	})

	t.Run("cache errors fall through to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := cache.NewMockCache(ctrl)
		s, repo := NewMock(t, c)
		c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
		repo.EXPECT().Between(gomock.Any(), bookmaker, gomock.Any(), gomock.Any()).Return([]domain.Match{}, nil)
		repo.EXPECT().Odds(gomock.Any(), bookmaker, []int{}).Return(nil, nil)
		c.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		got, err := s.ByDate(context.Background(), "2024-05-12")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestByDateInvalid(t *testing.T) {
	s, _ := NewMock(t, cache.Noop{})
	for _, date := range []string{"", "12-05-2024", "2024-13-01", "today"} {
		_, err := s.ByDate(context.Background(), date)
		assert.ErrorIs(t, err, ErrInvalidDate, date)
	}
}

func TestTeams(t *testing.T) {
	s, repo := NewMock(t, cache.Noop{})
	since := time.Date(2024, 5, 9, 23, 30, 0, 0, time.UTC).Add(-90 * 24 * time.Hour)
	teams := []domain.Team{{ID: 1, Name: "Inter"}}
	repo.EXPECT().Teams(gomock.Any(), since).Return(teams, nil)

	got, err := s.Teams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, teams, got)
}
