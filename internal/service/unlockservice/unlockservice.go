package unlockservice

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
	FindByID(ctx context.Context, betID int) (*domain.BetSlip, error)
}

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

type LockRepo interface {
	Exists(ctx context.Context, userID, betID int) (bool, error)
	Insert(ctx context.Context, userID, betID int, price float64) (bool, error)
}

type WalletRepo interface {
	Credit(ctx context.Context, userID int, amount float64) error
}

type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

var (
	ErrBetNotFound        = errors.New("Bet non trovata")
	ErrNotForSale         = errors.New("Questa bet non è in vendita")
	ErrOwnBet             = errors.New("Non puoi sbloccare una tua bet")
	ErrSimulationDisabled = errors.New("Sblocco simulato non disponibile")
)

type Service struct {
	txManager       pg.TXManager
	betRepo         BetRepo
	balanceRepo     BalanceRepo
	lockRepo        LockRepo
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	publisher       events.Publisher
	metrics         *metrics.Metrics
	simulated       bool
}

type Deps struct {
	TxManager       pg.TXManager
	BetRepo         BetRepo
	BalanceRepo     BalanceRepo
	LockRepo        LockRepo
	WalletRepo      WalletRepo
	TransactionRepo TransactionRepo
	Publisher       events.Publisher
	Metrics         *metrics.Metrics
}

func New(deps Deps, simulated bool) *Service {
	return &Service{
		txManager:       deps.TxManager,
		betRepo:         deps.BetRepo,
		balanceRepo:     deps.BalanceRepo,
		lockRepo:        deps.LockRepo,
		walletRepo:      deps.WalletRepo,
		transactionRepo: deps.TransactionRepo,
		publisher:       deps.Publisher,
		metrics:         deps.Metrics,
		simulated:       simulated,
	}
}

// Quote prices a slip from its owner's current GP balance.
func (s *Service) Quote(ctx context.Context, betID int) (*domain.Quote, error) {
	slip, err := s.betRepo.FindByID(ctx, betID)
	if err != nil {
		zap.L().Error("failed to get bet slip", zap.Error(err))
		return nil, err
	}
	if slip == nil {
		return nil, ErrBetNotFound
	}
	balance, err := s.balanceRepo.GetUserBalance(ctx, slip.UserID)
	if err != nil {
		zap.L().Error("failed to get owner balance", zap.Error(err))
		return nil, err
	}
	quote := &domain.Quote{BetID: slip.ID, OwnerID: slip.UserID}
	if balance != nil {
		quote.OwnerBalance = balance.Balance
	}
	quote.Price = betting.UnlockPrice(quote.OwnerBalance)
	return quote, nil
}

// IsUnlocked reports whether the viewer may see the slip in full.
func (s *Service) IsUnlocked(ctx context.Context, viewerID int, slip domain.BetSlip) (bool, error) {
	if viewerID == 0 {
		return false, nil
	}
	if viewerID == slip.UserID {
		return true, nil
	}
	return s.lockRepo.Exists(ctx, viewerID, slip.ID)
}

// Unlock is the simulated purchase: the buyer pays the tier price with no
// payment processor involved.
func (s *Service) Unlock(ctx context.Context, buyerID, betID int) (*domain.UnlockResult, error) {
	if !s.simulated {
		return nil, ErrSimulationDisabled
	}
	quote, err := s.Quote(ctx, betID)
	if err != nil {
		return nil, err
	}
	if quote.OwnerID == buyerID {
		return nil, ErrOwnBet
	}
	locked, err := s.lockRepo.Exists(ctx, buyerID, betID)
	if err != nil {
		zap.L().Error("failed to check bet lock", zap.Error(err))
		return nil, err
	}
	if locked {
		return &domain.UnlockResult{AlreadyUnlocked: true, Price: quote.Price}, nil
	}
	if quote.Price.IsZero() {
		return nil, ErrNotForSale
	}

	grant := domain.Grant{
		BuyerID: buyerID,
		BetID:   betID,
		OwnerID: quote.OwnerID,
		Paid:    quote.Price,
	}
	granted, err := s.Grant(ctx, grant)
	if err != nil {
		return nil, err
	}
	if granted {
		s.Record(ctx, metrics.UnlockSimulated, grant)
	}
	return &domain.UnlockResult{AlreadyUnlocked: !granted, Price: quote.Price}, nil
}

// Grant applies a paid unlock in one transaction: the lock row, the
// advisor's share on the wallet and the sale record. It joins the caller's
// transaction when there is one. false means the buyer already held the
// lock and nothing was credited.
func (s *Service) Grant(ctx context.Context, g domain.Grant) (bool, error) {
	share := betting.AdvisorShare(g.Paid)
	granted := false
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.lockRepo.Insert(ctx, g.BuyerID, g.BetID, g.Paid.InexactFloat64())
		if err != nil {
			return fmt.Errorf("insert lock: %w", err)
		}
		if !inserted {
			return nil
		}
		if err := s.walletRepo.Credit(ctx, g.OwnerID, share.InexactFloat64()); err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}
		_, err = s.transactionRepo.CreateTransaction(ctx, &domain.Transaction{
			UserID:       g.OwnerID,
			Amount:       share.InexactFloat64(),
			Type:         domain.TxTypeSale,
			Status:       domain.TxStatusCompleted,
			PaymentEmail: g.PayerEmail,
		})
		if err != nil {
			return fmt.Errorf("record sale: %w", err)
		}
		granted = true
		return nil
	})
	if err != nil {
		zap.L().Error("failed to grant unlock", zap.Int("betID", g.BetID), zap.Int("buyerID", g.BuyerID), zap.Error(err))
		return false, err
	}
	if granted {
		zap.L().Info("bet unlocked",
			zap.Int("betID", g.BetID),
			zap.Int("buyerID", g.BuyerID),
			zap.String("paid", g.Paid.StringFixed(2)),
			zap.String("share", share.StringFixed(2)),
		)
	}
	return granted, nil
}

// Record counts and announces a committed unlock.
func (s *Service) Record(ctx context.Context, path string, g domain.Grant) {
	s.metrics.Unlocks.WithLabelValues(path).Inc()
	events.Emit(ctx, s.publisher, events.Event{
		Type:   events.BetUnlocked,
		UserID: g.BuyerID,
		BetID:  g.BetID,
		Amount: g.Paid.InexactFloat64(),
	})
}
