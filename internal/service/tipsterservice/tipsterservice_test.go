package tipsterservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	users    *MockUserRepo
	bets     *MockBetRepo
	unlocker *MockUnlocker
}

var fixedNow = time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		users:    NewMockUserRepo(ctrl),
		bets:     NewMockBetRepo(ctrl),
		unlocker: NewMockUnlocker(ctrl),
	}
	s := New(m.users, m.bets, m.unlocker, "https://example.test/")
	s.now = func() time.Time { return fixedNow }
	return s, m
}

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		tipster  domain.Tipster
		expected string
	}{
		{name: "display name", tipster: domain.Tipster{DisplayName: "Bomber", Email: "x@y.it"}, expected: "Bomber"},
		{name: "email local part", tipster: domain.Tipster{DisplayName: "  ", Email: "mario.rossi@y.it"}, expected: "mario.rossi"},
		{name: "fallback", tipster: domain.Tipster{}, expected: "Tipster"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Name(tt.tipster))
		})
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expected      []domain.TipsterSummary
		expectedError bool
	}{
		{
			name: "ranked tipsters",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().Leaderboard(gomock.Any(), 100).Return([]domain.Tipster{
					{ID: 1, Email: "top@x.it", Balance: 12000, TotalBets: 40},
					{ID: 2, DisplayName: "Luca", Balance: 150, TotalBets: 3},
				}, nil)
			},
			expected: []domain.TipsterSummary{
				{Tipster: domain.Tipster{ID: 1, Email: "top@x.it", Balance: 12000, TotalBets: 40}, Name: "top", IsAdvisor: true},
				{Tipster: domain.Tipster{ID: 2, DisplayName: "Luca", Balance: 150, TotalBets: 3}, Name: "Luca"},
			},
		},
		{
			name: "repo failure",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().Leaderboard(gomock.Any(), 100).Return(nil, errors.New("db down"))
			},
			expectedError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)
			got, err := s.List(context.Background())
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPublicBets(t *testing.T) {
	tipster := &domain.Tipster{ID: 7, Email: "pro@x.it", Balance: 16000}
	bets := []domain.PublicBet{
		{ID: 30, TotalOdds: 3.2, Stake: 10, PotentialWin: 32, MatchCount: 2, IsUnlocked: true},
		{ID: 31, TotalOdds: 1.5, Stake: 5, PotentialWin: 7.5, MatchCount: 1},
	}

	tests := []struct {
		name          string
		viewerID      int
		prepareMock   func(m *mocks)
		expectedErr   error
		expectedPrice string
		obscured      []bool
	}{
		{
			name:     "viewer with one lock",
			viewerID: 9,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindTipster(gomock.Any(), 7).Return(tipster, nil)
				m.bets.EXPECT().FindPublicByUser(gomock.Any(), 7, 9).Return(bets, nil)
			},
			expectedPrice: "3.5",
			obscured:      []bool{false, true},
		},
		{
			name:     "owner sees everything",
			viewerID: 7,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindTipster(gomock.Any(), 7).Return(tipster, nil)
				m.bets.EXPECT().FindPublicByUser(gomock.Any(), 7, 7).Return(bets, nil)
			},
			expectedPrice: "3.5",
			obscured:      []bool{false, false},
		},
		{
			name:     "unknown tipster",
			viewerID: 0,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindTipster(gomock.Any(), 7).Return(nil, nil)
			},
			expectedErr: ErrTipsterNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)
			page, err := s.PublicBets(context.Background(), 7, tt.viewerID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "pro", page.Tipster.Name)
			assert.True(t, page.Tipster.IsAdvisor)
			assert.True(t, decimal.RequireFromString(tt.expectedPrice).Equal(page.UnlockPrice))
			require.Len(t, page.Bets, len(tt.obscured))
			for i, b := range page.Bets {
				assert.Equal(t, tt.obscured[i], b.IsObscured)
				assert.Equal(t, !tt.obscured[i], b.IsUnlocked)
			}
		})
	}
}

func TestPublicMatches(t *testing.T) {
	slip := &domain.BetSlip{ID: 30, UserID: 7}
	legs := []domain.Selection{
		{ID: 1, BetID: 30, MatchID: 100, Market: "1X2", Selection: "1", HomeTeam: "Inter", AwayTeam: "Milan",
			FixtureDate: fixedNow.Add(2 * time.Hour), MatchStatus: domain.MatchNotStarted, GoalsHome: domain.UnknownGoals, GoalsAway: domain.UnknownGoals},
		{ID: 2, BetID: 30, MatchID: 101, Market: "O/U", Selection: "Over 2.5", HomeTeam: "Roma", AwayTeam: "Lazio",
			FixtureDate: fixedNow.Add(-time.Hour), MatchStatus: "2H", GoalsHome: 1, GoalsAway: 1, Minute: 70},
	}

	t.Run("locked viewer gets redacted legs", func(t *testing.T) {
		s, m := NewMock(t)
		m.bets.EXPECT().FindByID(gomock.Any(), 30).Return(slip, nil)
		m.unlocker.EXPECT().IsUnlocked(gomock.Any(), 0, *slip).Return(false, nil)
		m.bets.EXPECT().Selections(gomock.Any(), []int{30}).Return(legs, nil)

		got, err := s.PublicMatches(context.Background(), 30, 0)
		require.NoError(t, err)
		assert.False(t, got.IsUnlocked)
		require.Len(t, got.Legs, 2)
		for _, leg := range got.Legs {
			assert.True(t, leg.IsObscured)
			assert.Empty(t, leg.HomeTeam)
			assert.Empty(t, leg.AwayTeam)
			assert.Empty(t, leg.Market)
			assert.Empty(t, leg.Selection.Selection)
		}
		assert.False(t, got.Legs[0].IsExpired)
		assert.True(t, got.Legs[1].IsExpired)
		assert.Equal(t, 70, got.Legs[1].Minute)
	})

	t.Run("unlocked viewer sees the picks", func(t *testing.T) {
		s, m := NewMock(t)
		m.bets.EXPECT().FindByID(gomock.Any(), 30).Return(slip, nil)
		m.unlocker.EXPECT().IsUnlocked(gomock.Any(), 9, *slip).Return(true, nil)
		m.bets.EXPECT().Selections(gomock.Any(), []int{30}).Return(legs, nil)

		got, err := s.PublicMatches(context.Background(), 30, 9)
		require.NoError(t, err)
		assert.True(t, got.IsUnlocked)
		assert.Equal(t, "Inter", got.Legs[0].HomeTeam)
		assert.Equal(t, "Over 2.5", got.Legs[1].Selection.Selection)
		assert.False(t, got.Legs[0].IsObscured)
	})

	t.Run("unknown slip", func(t *testing.T) {
		s, m := NewMock(t)
		m.bets.EXPECT().FindByID(gomock.Any(), 30).Return(nil, nil)

		_, err := s.PublicMatches(context.Background(), 30, 9)
		assert.ErrorIs(t, err, ErrBetNotFound)
	})
}

func TestSharePage(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		contains    []string
	}{
		{
			name: "advisor",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindTipster(gomock.Any(), 7).Return(&domain.Tipster{ID: 7, DisplayName: "Bomber", Balance: 12345.9}, nil)
			},
			contains: []string{
				"🏆 Segui Bomber, Advisor Certificato",
				"Saldo attuale: GP 12,345 |",
				`url=https://example.test/tipster/7`,
				`content="https://example.test/api/share/tipster/7"`,
				`content="https://example.test/stadium-share.jpg"`,
			},
		},
		{
			name: "regular tipster",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindTipster(gomock.Any(), 7).Return(&domain.Tipster{ID: 7, Email: "luca@x.it", Balance: 180}, nil)
			},
			contains: []string{"⚽ Pronostici di luca - Tipsters Race", "GP 180 |"},
		},
		{
			name: "unknown tipster",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindTipster(gomock.Any(), 7).Return(nil, nil)
			},
			contains: []string{"url=https://example.test/tipsters", "Pronostici di Tipster"},
		},
		{
			name: "lookup failure still renders",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindTipster(gomock.Any(), 7).Return(nil, errors.New("db down"))
			},
			contains: []string{"url=https://example.test/tipsters"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)
			page, err := s.SharePage(context.Background(), 7)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, string(page), want)
			}
		})
	}
}

func TestSharePageEscapesNames(t *testing.T) {
	s, m := NewMock(t)
	m.users.EXPECT().FindTipster(gomock.Any(), 7).Return(&domain.Tipster{ID: 7, DisplayName: `<script>x</script>`}, nil)

	page, err := s.SharePage(context.Background(), 7)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "<script>")
}
