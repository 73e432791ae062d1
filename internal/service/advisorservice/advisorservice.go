package advisorservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/tipsters/internal/betting"
	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/events"
	"github.com/GlebRadaev/tipsters/internal/metrics"
	"github.com/GlebRadaev/tipsters/internal/pg"
	"github.com/GlebRadaev/tipsters/pkg/validate"
	"go.uber.org/zap"
)

type WalletRepo interface {
	GetBalance(ctx context.Context, userID int) (float64, error)
	LockBalance(ctx context.Context, userID int) (float64, error)
	Debit(ctx context.Context, userID int, amount float64) error
}

type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}

var (
	ErrInvalidAmount       = errors.New("Importo non valido")
	ErrInvalidEmail        = errors.New("Email PayPal non valida")
	ErrInsufficientBalance = errors.New("Saldo insufficiente")
)

type Service struct {
	txManager       pg.TXManager
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	publisher       events.Publisher
	metrics         *metrics.Metrics
}

func New(txManager pg.TXManager, walletRepo WalletRepo, transactionRepo TransactionRepo, publisher events.Publisher, m *metrics.Metrics) *Service {
	return &Service{
		txManager:       txManager,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		publisher:       publisher,
		metrics:         m,
	}
}

func (s *Service) Wallet(ctx context.Context, userID int) (*domain.WalletView, error) {
	balance, err := s.walletRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet balance", zap.Error(err))
		return nil, err
	}
	transactions, err := s.transactionRepo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet transactions", zap.Error(err))
		return nil, err
	}
	return &domain.WalletView{Balance: balance, Transactions: transactions}, nil
}

// Withdraw moves euros out of the wallet into a pending withdrawal request.
// Paying it out is an administrative step outside this service.
func (s *Service) Withdraw(ctx context.Context, userID int, amount float64, email string) error {
	amount = betting.RoundMoney(amount)
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !validate.IsEmail(email) {
		return ErrInvalidEmail
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.walletRepo.LockBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance < amount {
			return ErrInsufficientBalance
		}
		if err := s.walletRepo.Debit(ctx, userID, amount); err != nil {
			return err
		}
		_, err = s.transactionRepo.CreateTransaction(ctx, &domain.Transaction{
			UserID:       userID,
			Amount:       amount,
			Type:         domain.TxTypeWithdrawal,
			Status:       domain.TxStatusPending,
			PaymentEmail: email,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientBalance) {
			zap.L().Info("withdrawal rejected, insufficient balance", zap.Int("userID", userID), zap.Float64("amount", amount))
			return err
		}
		zap.L().Error("failed to withdraw", zap.Int("userID", userID), zap.Error(err))
		return err
	}

	s.metrics.Withdrawals.Inc()
	zap.L().Info("withdrawal requested", zap.Int("userID", userID), zap.Float64("amount", amount))
	events.Emit(ctx, s.publisher, events.Event{
		Type:   events.WithdrawalRequested,
		UserID: userID,
		Amount: amount,
	})
	return nil
}
