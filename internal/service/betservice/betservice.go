package betservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/tipsters/internal/betting"
	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/events"
	"github.com/GlebRadaev/tipsters/internal/metrics"
	"github.com/GlebRadaev/tipsters/internal/pg"
	"go.uber.org/zap"
)

type BetRepo interface {
	Create(ctx context.Context, slip *domain.BetSlip) (int, error)
	AddSelection(ctx context.Context, betID int, s domain.Selection) error
	FindByUser(ctx context.Context, userID int) ([]domain.BetSlip, error)
	Selections(ctx context.Context, betIDs []int) ([]domain.Selection, error)
	Delete(ctx context.Context, userID, betID int) (bool, error)
}

type BalanceRepo interface {
	EnsureUserBalance(ctx context.Context, userID int) error
	LockUserBalance(ctx context.Context, userID int) (float64, error)
	DebitUserBalance(ctx context.Context, userID int, amount float64) (float64, error)
}

type LockRepo interface {
	CountByBet(ctx context.Context, betID int) (int, error)
}

type Settler interface {
	Evaluate(slip domain.BetSlip) domain.SlipStatus
	Settle(ctx context.Context, slip domain.BetSlip) (bool, error)
}

var (
	ErrInvalidStake      = errors.New("Puntata non valida")
	ErrNoSelections      = errors.New("Nessuna selezione")
	ErrInsufficientFunds = errors.New("GP Points insufficienti")
	ErrBetNotFound       = errors.New("Bet non trovata")
	ErrBetUnlocked       = errors.New("La bet è già stata sbloccata da altri utenti")
)

type Service struct {
	txManager   pg.TXManager
	betRepo     BetRepo
	balanceRepo BalanceRepo
	lockRepo    LockRepo
	settler     Settler
	publisher   events.Publisher
	metrics     *metrics.Metrics
}

func New(
	txManager pg.TXManager,
	betRepo BetRepo,
	balanceRepo BalanceRepo,
	lockRepo LockRepo,
	settler Settler,
	publisher events.Publisher,
	m *metrics.Metrics,
) *Service {
	return &Service{
		txManager:   txManager,
		betRepo:     betRepo,
		balanceRepo: balanceRepo,
		lockRepo:    lockRepo,
		settler:     settler,
		publisher:   publisher,
		metrics:     m,
	}
}

// Place stores a slip and debits its stake in one transaction.
func (s *Service) Place(ctx context.Context, userID int, bet domain.NewBet) (*domain.PlacedBet, error) {
	bet.Stake = betting.RoundMoney(bet.Stake)
	if bet.Stake <= 0 {
		return nil, ErrInvalidStake
	}
	if len(bet.Selections) == 0 {
		return nil, ErrNoSelections
	}

	totalOdds := bet.TotalOdds
	if totalOdds <= 0 {
		legOdds := make([]float64, 0, len(bet.Selections))
		for _, sel := range bet.Selections {
			legOdds = append(legOdds, sel.Odd)
		}
		totalOdds = betting.CombinedOdds(legOdds)
	}
	slip := &domain.BetSlip{
		UserID:       userID,
		TotalOdds:    totalOdds,
		Stake:        bet.Stake,
		PotentialWin: betting.PotentialWin(bet.Stake, totalOdds),
	}

	placed := &domain.PlacedBet{}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.balanceRepo.EnsureUserBalance(ctx, userID); err != nil {
			return err
		}
		balance, err := s.balanceRepo.LockUserBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance < bet.Stake {
			return ErrInsufficientFunds
		}

		id, err := s.betRepo.Create(ctx, slip)
		if err != nil {
			return err
		}
		for _, sel := range bet.Selections {
			if err := s.betRepo.AddSelection(ctx, id, sel); err != nil {
				return err
			}
		}
		newBalance, err := s.balanceRepo.DebitUserBalance(ctx, userID, bet.Stake)
		if err != nil {
			return err
		}
		placed.ID, placed.NewBalance = id, newBalance
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			zap.L().Info("bet rejected, insufficient funds", zap.Int("userID", userID), zap.Float64("stake", bet.Stake))
			return nil, err
		}
		zap.L().Error("failed to place bet", zap.Int("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("place bet: %w", err)
	}

	s.metrics.BetsPlaced.Inc()
	zap.L().Info("bet placed", zap.Int("userID", userID), zap.Int("betID", placed.ID))
	events.Emit(ctx, s.publisher, events.Event{
		Type:   events.BetPlaced,
		UserID: userID,
		BetID:  placed.ID,
		Amount: bet.Stake,
	})
	return placed, nil
}

// List returns the user's slips newest first with live outcomes. Won slips
// are settled on the way; a failed settlement leaves the slip unsettled and
// is retried on the next read.
func (s *Service) List(ctx context.Context, userID int) ([]domain.SlipResult, error) {
	slips, err := s.betRepo.FindByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list bet slips", zap.Error(err))
		return nil, err
	}
	if len(slips) == 0 {
		return []domain.SlipResult{}, nil
	}

	ids := make([]int, 0, len(slips))
	for _, slip := range slips {
		ids = append(ids, slip.ID)
	}
	selections, err := s.betRepo.Selections(ctx, ids)
	if err != nil {
		zap.L().Error("failed to load bet selections", zap.Error(err))
		return nil, err
	}
	byBet := make(map[int][]domain.Selection, len(slips))
	for _, sel := range selections {
		byBet[sel.BetID] = append(byBet[sel.BetID], sel)
	}

	results := make([]domain.SlipResult, 0, len(slips))
	for _, slip := range slips {
		slip.Selections = byBet[slip.ID]
		status := s.settler.Evaluate(slip)
		if status == domain.SlipWon && !slip.IsSettled {
			if credited, err := s.settler.Settle(ctx, slip); err == nil && credited {
				slip.IsSettled = true
			}
		}
		results = append(results, domain.SlipResult{
			BetSlip: slip,
			Status:  status,
			Legs:    legs(slip.Selections),
		})
	}
	return results, nil
}

func legs(selections []domain.Selection) []domain.LegResult {
	out := make([]domain.LegResult, 0, len(selections))
	for _, sel := range selections {
		out = append(out, domain.LegResult{
			Selection:     sel,
			IsWinning:     betting.Wins(sel),
			CurrentResult: fmt.Sprintf("%d - %d", max(sel.GoalsHome, 0), max(sel.GoalsAway, 0)),
		})
	}
	return out
}

// Delete removes an own slip. Slips somebody has paid for stay.
func (s *Service) Delete(ctx context.Context, userID, betID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		locks, err := s.lockRepo.CountByBet(ctx, betID)
		if err != nil {
			zap.L().Error("failed to count bet locks", zap.Error(err))
			return err
		}
		if locks > 0 {
			return ErrBetUnlocked
		}
		deleted, err := s.betRepo.Delete(ctx, userID, betID)
		if err != nil {
			zap.L().Error("failed to delete bet slip", zap.Error(err))
			return err
		}
		if !deleted {
			return ErrBetNotFound
		}
		zap.L().Info("bet slip deleted", zap.Int("userID", userID), zap.Int("betID", betID))
		return nil
	})
}
