package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/tipsters/internal/betting"
	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/metrics"
	"github.com/GlebRadaev/tipsters/internal/pg"
	"github.com/GlebRadaev/tipsters/internal/service/unlockservice"
	"github.com/GlebRadaev/tipsters/pkg/paypal"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	configPrefix     = "paypal_"
	unknownPayer     = "N/D"
	orderDescription = "Acquisto Schedina Tipsters Hub - #%d"
)

type ConfigRepo interface {
	Values(ctx context.Context, prefix string) (map[string]string, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, order *domain.PaymentOrder) error
	LockByID(ctx context.Context, orderID string) (*domain.PaymentOrder, error)
	MarkCaptured(ctx context.Context, orderID string, amount float64) error
}

type LockRepo interface {
	Exists(ctx context.Context, userID, betID int) (bool, error)
}

type Unlocker interface {
	Quote(ctx context.Context, betID int) (*domain.Quote, error)
	Grant(ctx context.Context, g domain.Grant) (bool, error)
	Record(ctx context.Context, path string, g domain.Grant)
}

type Gateway interface {
	CreateOrder(ctx context.Context, creds paypal.Credentials, betID int, value, description string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, creds paypal.Credentials, orderID string) (*paypal.Capture, error)
}

var (
	ErrOrderNotFound       = errors.New("Ordine non trovato")
	ErrPaymentNotCompleted = errors.New("Pagamento non completato")
	ErrBetMismatch         = errors.New("Impossibile identificare la bet pagata")
)

type Service struct {
	txManager   pg.TXManager
	configRepo  ConfigRepo
	paymentRepo PaymentRepo
	lockRepo    LockRepo
	unlocker    Unlocker
	gateway     Gateway
	defaults    paypal.Credentials
}

func New(
	txManager pg.TXManager,
	configRepo ConfigRepo,
	paymentRepo PaymentRepo,
	lockRepo LockRepo,
	unlocker Unlocker,
	gateway Gateway,
	defaults paypal.Credentials,
) *Service {
	return &Service{
		txManager:   txManager,
		configRepo:  configRepo,
		paymentRepo: paymentRepo,
		lockRepo:    lockRepo,
		unlocker:    unlocker,
		gateway:     gateway,
		defaults:    defaults,
	}
}

// credentials resolves the PayPal account: admin_config rows win over the
// environment.
func (s *Service) credentials(ctx context.Context) (paypal.Credentials, error) {
	values, err := s.configRepo.Values(ctx, configPrefix)
	if err != nil {
		zap.L().Error("failed to load paypal config", zap.Error(err))
		return paypal.Credentials{}, err
	}
	pick := func(key, fallback string) string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		return strings.TrimSpace(fallback)
	}
	creds := paypal.Credentials{
		ClientID:     pick("paypal_client_id", s.defaults.ClientID),
		ClientSecret: pick("paypal_client_secret", s.defaults.ClientSecret),
		Mode:         strings.ToLower(pick("paypal_mode", s.defaults.Mode)),
		BaseURL:      s.defaults.BaseURL,
	}
	if creds.Mode == "" {
		creds.Mode = paypal.ModeSandbox
	}
	return creds, nil
}

func (s *Service) PublicConfig(ctx context.Context) (domain.PayPalConfig, error) {
	creds, err := s.credentials(ctx)
	if err != nil {
		return domain.PayPalConfig{}, err
	}
	return domain.PayPalConfig{ClientID: creds.ClientID, Mode: creds.Mode}, nil
}

// CreateOrder opens a PayPal order for the slip at the price derived from
// the owner's balance now. The price sent by the client is only compared.
func (s *Service) CreateOrder(ctx context.Context, buyerID, betID int, clientPrice string) (*domain.CreatedOrder, error) {
	quote, err := s.unlocker.Quote(ctx, betID)
	if err != nil {
		return nil, err
	}
	if quote.OwnerID == buyerID {
		return nil, unlockservice.ErrOwnBet
	}
	locked, err := s.lockRepo.Exists(ctx, buyerID, betID)
	if err != nil {
		zap.L().Error("failed to check bet lock", zap.Error(err))
		return nil, err
	}
	if locked {
		return &domain.CreatedOrder{AlreadyUnlocked: true, Amount: quote.Price}, nil
	}
	if quote.Price.IsZero() {
		return nil, unlockservice.ErrNotForSale
	}
	if claimed, err := decimal.NewFromString(strings.TrimSpace(clientPrice)); clientPrice != "" && (err != nil || !claimed.Equal(quote.Price)) {
		zap.L().Warn("client price ignored",
			zap.Int("betID", betID),
			zap.String("clientPrice", clientPrice),
			zap.String("price", betting.FormatPrice(quote.Price)),
		)
	}

	creds, err := s.credentials(ctx)
	if err != nil {
		return nil, err
	}
	order, err := s.gateway.CreateOrder(ctx, creds, betID, betting.FormatPrice(quote.Price), fmt.Sprintf(orderDescription, betID))
	if err != nil {
		zap.L().Error("paypal create order failed", zap.Int("betID", betID), zap.Error(err))
		return nil, err
	}
	err = s.paymentRepo.Create(ctx, &domain.PaymentOrder{
		OrderID: order.ID,
		BuyerID: buyerID,
		BetID:   betID,
		Amount:  quote.Price.InexactFloat64(),
		Status:  domain.OrderCreated,
	})
	if err != nil {
		zap.L().Error("failed to store payment order", zap.String("orderID", order.ID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("paypal order created", zap.String("orderID", order.ID), zap.Int("betID", betID), zap.Int("buyerID", buyerID))
	return &domain.CreatedOrder{OrderID: order.ID, Amount: quote.Price}, nil
}

// CaptureOrder captures a buyer's order and applies the unlock with the
// amount PayPal actually captured. The order row stays locked until the
// unlock commits, so a repeated capture of the same order is a no-op.
func (s *Service) CaptureOrder(ctx context.Context, buyerID int, orderID string) (*domain.CapturedOrder, error) {
	var (
		result  *domain.CapturedOrder
		grant   domain.Grant
		granted bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.paymentRepo.LockByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil || order.BuyerID != buyerID {
			return ErrOrderNotFound
		}
		if order.Status == domain.OrderCaptured {
			result = &domain.CapturedOrder{
				OrderID:         orderID,
				BetID:           order.BetID,
				Amount:          decimal.NewFromFloat(order.Amount),
				AlreadyCaptured: true,
			}
			return nil
		}

		creds, err := s.credentials(ctx)
		if err != nil {
			return err
		}
		// A retry after a rolled back commit gets PayPal's original reply back,
		// so the grant below runs again for the same payment.
		capture, err := s.gateway.CaptureOrder(ctx, creds, orderID)
		if err != nil {
			return err
		}
		if capture.Status != paypal.StatusCompleted {
			return fmt.Errorf("%w: status %s", ErrPaymentNotCompleted, capture.Status)
		}
		betID, ok := capture.BetID()
		if !ok || betID != order.BetID {
			return fmt.Errorf("%w: custom_id %q for order of bet %d", ErrBetMismatch, capture.CustomID, order.BetID)
		}
		paid, err := decimal.NewFromString(capture.Amount)
		if err != nil || !paid.IsPositive() {
			zap.L().Warn("captured amount missing, using order amount", zap.String("orderID", orderID), zap.String("amount", capture.Amount))
			paid = decimal.NewFromFloat(order.Amount)
		}
		payer := capture.PayerEmail
		if payer == "" {
			payer = unknownPayer
		}

		quote, err := s.unlocker.Quote(ctx, betID)
		if err != nil {
			return err
		}
		grant = domain.Grant{BuyerID: buyerID, BetID: betID, OwnerID: quote.OwnerID, Paid: paid, PayerEmail: payer}
		if granted, err = s.unlocker.Grant(ctx, grant); err != nil {
			return err
		}
		if err := s.paymentRepo.MarkCaptured(ctx, orderID, paid.InexactFloat64()); err != nil {
			return err
		}
		result = &domain.CapturedOrder{OrderID: orderID, BetID: betID, Amount: paid}
		return nil
	})
	if err != nil {
		zap.L().Error("paypal capture failed", zap.String("orderID", orderID), zap.Int("buyerID", buyerID), zap.Error(err))
		return nil, err
	}
	if granted {
		s.unlocker.Record(ctx, metrics.UnlockPayPal, grant)
	}
	return result, nil
}
