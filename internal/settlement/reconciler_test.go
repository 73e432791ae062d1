package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Reconciler, *MockBetRepo, *MockSettler) {
	ctrl := gomock.NewController(t)
	betRepo := NewMockBetRepo(ctrl)
	settler := NewMockSettler(ctrl)
	r := New(betRepo, settler, Options{Interval: 10 * time.Millisecond, Lookback: 72 * time.Hour, Workers: 2})
	r.now = func() time.Time { return now }
	t.Cleanup(r.workerPool.Close)
	return r, betRepo, settler
}

func finished(betID int) domain.Selection {
	return domain.Selection{BetID: betID, Market: "1X2", Selection: "1", MatchStatus: domain.MatchFinished, GoalsHome: 2, GoalsAway: 0}
}

func TestReconcile(t *testing.T) {
	since := now.Add(-72 * time.Hour)

	tests := []struct {
		name          string
		pageSize      int
		prepareMock   func(betRepo *MockBetRepo, settler *MockSettler)
		expected      int
		expectedError bool
	}{
		{
			name:     "credits the winning slips of one page",
			pageSize: 10,
			prepareMock: func(betRepo *MockBetRepo, settler *MockSettler) {
				betRepo.EXPECT().FindSettleCandidates(gomock.Any(), since, 0, 10).Return([]domain.BetSlip{
					{ID: 1, UserID: 5, PotentialWin: 30},
					{ID: 2, UserID: 6, PotentialWin: 12},
				}, nil)
				betRepo.EXPECT().Selections(gomock.Any(), []int{1, 2}).Return([]domain.Selection{finished(1), finished(2)}, nil)
				settler.EXPECT().Settle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, slip domain.BetSlip) (bool, error) {
					if assert.Len(t, slip.Selections, 1) {
						assert.Equal(t, slip.ID, slip.Selections[0].BetID)
					}
					return slip.ID == 1, nil
				}).Times(2)
			},
			expected: 1,
		},
		{
			name:     "pages through with the id cursor",
			pageSize: 2,
			prepareMock: func(betRepo *MockBetRepo, settler *MockSettler) {
				gomock.InOrder(
					betRepo.EXPECT().FindSettleCandidates(gomock.Any(), since, 0, 2).Return([]domain.BetSlip{{ID: 3}, {ID: 4}}, nil),
					betRepo.EXPECT().FindSettleCandidates(gomock.Any(), since, 4, 2).Return([]domain.BetSlip{{ID: 9}}, nil),
				)
				betRepo.EXPECT().Selections(gomock.Any(), []int{3, 4}).Return([]domain.Selection{finished(3), finished(4)}, nil)
				betRepo.EXPECT().Selections(gomock.Any(), []int{9}).Return([]domain.Selection{finished(9)}, nil)
				settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)
			},
			expected: 3,
		},
		{
			name:     "settle failures do not stop the pass",
			pageSize: 10,
			prepareMock: func(betRepo *MockBetRepo, settler *MockSettler) {
				betRepo.EXPECT().FindSettleCandidates(gomock.Any(), since, 0, 10).Return([]domain.BetSlip{{ID: 1}, {ID: 2}}, nil)
				betRepo.EXPECT().Selections(gomock.Any(), []int{1, 2}).Return(nil, nil)
				settler.EXPECT().Settle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, slip domain.BetSlip) (bool, error) {
					if slip.ID == 1 {
						return false, errors.New("deadlock detected")
					}
					return true, nil
				}).Times(2)
			},
			expected: 1,
		},
		{
			name:     "nothing to settle",
			pageSize: 10,
			prepareMock: func(betRepo *MockBetRepo, settler *MockSettler) {
				betRepo.EXPECT().FindSettleCandidates(gomock.Any(), since, 0, 10).Return([]domain.BetSlip{}, nil)
			},
		},
		{
			name:     "candidate query fails",
			pageSize: 10,
			prepareMock: func(betRepo *MockBetRepo, settler *MockSettler) {
				betRepo.EXPECT().FindSettleCandidates(gomock.Any(), since, 0, 10).Return(nil, errors.New("db down"))
			},
			expectedError: true,
		},
		{
			name:     "selection query fails",
			pageSize: 10,
			prepareMock: func(betRepo *MockBetRepo, settler *MockSettler) {
				betRepo.EXPECT().FindSettleCandidates(gomock.Any(), since, 0, 10).Return([]domain.BetSlip{{ID: 1}}, nil)
				betRepo.EXPECT().Selections(gomock.Any(), []int{1}).Return(nil, errors.New("db down"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, betRepo, settler := NewMock(t)
			r.pageSize = tt.pageSize
			tt.prepareMock(betRepo, settler)

			n, err := r.Reconcile(context.Background())
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestReconcilerRun(t *testing.T) {
	r, betRepo, _ := NewMock(t)
	betRepo.EXPECT().FindSettleCandidates(gomock.Any(), gomock.Any(), 0, defaultPageSize).Return(nil, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop after cancel")
	}
}
