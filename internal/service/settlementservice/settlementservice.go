package settlementservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/tipsters/internal/betting"
	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/events"
	"github.com/GlebRadaev/tipsters/internal/metrics"
	"github.com/GlebRadaev/tipsters/internal/pg"
	"go.uber.org/zap"
)

type BetRepo interface {
	LockSettled(ctx context.Context, betID int) (bool, error)
	MarkSettled(ctx context.Context, betID int) error
}

type BalanceRepo interface {
	CreditUserBalance(ctx context.Context, userID int, amount float64) (float64, error)
}

type Service struct {
	txManager   pg.TXManager
	betRepo     BetRepo
	balanceRepo BalanceRepo
	publisher   events.Publisher
	metrics     *metrics.Metrics
}

func New(txManager pg.TXManager, betRepo BetRepo, balanceRepo BalanceRepo, publisher events.Publisher, m *metrics.Metrics) *Service {
	return &Service{
		txManager:   txManager,
		betRepo:     betRepo,
		balanceRepo: balanceRepo,
		publisher:   publisher,
		metrics:     m,
	}
}

func (s *Service) Evaluate(slip domain.BetSlip) domain.SlipStatus {
	return betting.SlipStatus(slip.Selections)
}

// Settle credits the potential win of a WON slip exactly once. The slip row
// is locked for the whole transaction, so concurrent callers serialize and
// only the first one credits. It reports whether this call credited.
func (s *Service) Settle(ctx context.Context, slip domain.BetSlip) (bool, error) {
	if slip.IsSettled || s.Evaluate(slip) != domain.SlipWon {
		return false, nil
	}

	credited := false
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		settled, err := s.betRepo.LockSettled(ctx, slip.ID)
		if err != nil {
			return fmt.Errorf("lock slip %d: %w", slip.ID, err)
		}
		if settled {
			return nil
		}
		if _, err := s.balanceRepo.CreditUserBalance(ctx, slip.UserID, slip.PotentialWin); err != nil {
			return fmt.Errorf("credit slip %d: %w", slip.ID, err)
		}
		if err := s.betRepo.MarkSettled(ctx, slip.ID); err != nil {
			return fmt.Errorf("mark slip %d settled: %w", slip.ID, err)
		}
		credited = true
		return nil
	})
	if err != nil {
		s.metrics.SettlementFailures.Inc()
		zap.L().Error("settlement failed", zap.Int("betID", slip.ID), zap.Error(err))
		return false, err
	}
	if !credited {
		return false, nil
	}

	s.metrics.SlipsSettled.Inc()
	zap.L().Info("slip settled",
		zap.Int("betID", slip.ID),
		zap.Int("userID", slip.UserID),
		zap.Float64("credit", slip.PotentialWin),
	)
	events.Emit(ctx, s.publisher, events.Event{
		Type:   events.BetSettled,
		UserID: slip.UserID,
		BetID:  slip.ID,
		Amount: slip.PotentialWin,
	})
	return true, nil
}
