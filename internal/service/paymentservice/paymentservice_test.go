package paymentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/metrics"
	"github.com/GlebRadaev/tipsters/internal/pg"
	"github.com/GlebRadaev/tipsters/internal/service/unlockservice"
	"github.com/GlebRadaev/tipsters/pkg/paypal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	tx       *pg.MockTXManager
	config   *MockConfigRepo
	payments *MockPaymentRepo
	locks    *MockLockRepo
	unlocker *MockUnlocker
	gateway  *MockGateway
}

var envCreds = paypal.Credentials{ClientID: "env-id", ClientSecret: "env-secret", Mode: "sandbox"}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		tx:       pg.NewMockTXManager(ctrl),
		config:   NewMockConfigRepo(ctrl),
		payments: NewMockPaymentRepo(ctrl),
		locks:    NewMockLockRepo(ctrl),
		unlocker: NewMockUnlocker(ctrl),
		gateway:  NewMockGateway(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(m.tx, m.config, m.payments, m.locks, m.unlocker, m.gateway, envCreds), m
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPublicConfig(t *testing.T) {
	tests := []struct {
		name        string
		stored      map[string]string
		expected    domain.PayPalConfig
		expectedErr bool
	}{
		{
			name:     "environment only",
			stored:   map[string]string{},
			expected: domain.PayPalConfig{ClientID: "env-id", Mode: "sandbox"},
		},
		{
			name:     "admin config wins",
			stored:   map[string]string{"paypal_client_id": " admin-id ", "paypal_mode": "LIVE"},
			expected: domain.PayPalConfig{ClientID: "admin-id", Mode: "live"},
		},
		{
			name:     "blank admin values fall back",
			stored:   map[string]string{"paypal_client_id": "  "},
			expected: domain.PayPalConfig{ClientID: "env-id", Mode: "sandbox"},
		},
		{
			name:        "config unreadable",
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.expectedErr {
				m.config.EXPECT().Values(gomock.Any(), "paypal_").Return(nil, errors.New("db down"))
			} else {
				m.config.EXPECT().Values(gomock.Any(), "paypal_").Return(tt.stored, nil)
			}

			cfg, err := service.PublicConfig(context.Background())
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestCreateOrder(t *testing.T) {
	quote := &domain.Quote{BetID: 3, OwnerID: 9, OwnerBalance: 16000, Price: price("3.50")}

	tests := []struct {
		name          string
		buyerID       int
		clientPrice   string
		prepareMock   func(m *mocks)
		expected      *domain.CreatedOrder
		expectedError error
	}{
		{
			name:        "order at the server price",
			buyerID:     2,
			clientPrice: "0.01",
			prepareMock: func(m *mocks) {
				m.unlocker.EXPECT().Quote(gomock.Any(), 3).Return(quote, nil)
				m.locks.EXPECT().Exists(gomock.Any(), 2, 3).Return(false, nil)
				m.config.EXPECT().Values(gomock.Any(), "paypal_").Return(map[string]string{}, nil)
				m.gateway.EXPECT().CreateOrder(gomock.Any(), envCreds, 3, "3.50", "Acquisto Schedina Tipsters Hub - #3").
					Return(&paypal.Order{ID: "ORDER-1", Status: "CREATED"}, nil)
				m.payments.EXPECT().Create(gomock.Any(), &domain.PaymentOrder{
					OrderID: "ORDER-1", BuyerID: 2, BetID: 3, Amount: 3.5, Status: domain.OrderCreated,
				}).Return(nil)
			},
			expected: &domain.CreatedOrder{OrderID: "ORDER-1", Amount: price("3.50")},
		},
		{
			name:    "already unlocked needs no order",
			buyerID: 2,
			prepareMock: func(m *mocks) {
				m.unlocker.EXPECT().Quote(gomock.Any(), 3).Return(quote, nil)
				m.locks.EXPECT().Exists(gomock.Any(), 2, 3).Return(true, nil)
			},
			expected: &domain.CreatedOrder{AlreadyUnlocked: true, Amount: price("3.50")},
		},
		{
			name:    "own slip",
			buyerID: 9,
			prepareMock: func(m *mocks) {
				m.unlocker.EXPECT().Quote(gomock.Any(), 3).Return(quote, nil)
			},
			expectedError: unlockservice.ErrOwnBet,
		},
		{
			name:    "not for sale",
			buyerID: 2,
			prepareMock: func(m *mocks) {
				m.unlocker.EXPECT().Quote(gomock.Any(), 3).Return(&domain.Quote{BetID: 3, OwnerID: 9, Price: decimal.Zero}, nil)
				m.locks.EXPECT().Exists(gomock.Any(), 2, 3).Return(false, nil)
			},
			expectedError: unlockservice.ErrNotForSale,
		},
		{
			name:    "paypal rejects",
			buyerID: 2,
			prepareMock: func(m *mocks) {
				m.unlocker.EXPECT().Quote(gomock.Any(), 3).Return(quote, nil)
				m.locks.EXPECT().Exists(gomock.Any(), 2, 3).Return(false, nil)
				m.config.EXPECT().Values(gomock.Any(), "paypal_").Return(map[string]string{}, nil)
				m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), 3, "3.50", gomock.Any()).
					Return(nil, &paypal.APIError{Op: "create order", StatusCode: 422})
			},
			expectedError: &paypal.APIError{Op: "create order", StatusCode: 422},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			order, err := service.CreateOrder(context.Background(), tt.buyerID, 3, tt.clientPrice)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.OrderID, order.OrderID)
			assert.Equal(t, tt.expected.AlreadyUnlocked, order.AlreadyUnlocked)
			assert.True(t, tt.expected.Amount.Equal(order.Amount))
		})
	}
}

func TestCaptureOrder(t *testing.T) {
	stored := &domain.PaymentOrder{OrderID: "ORDER-1", BuyerID: 2, BetID: 3, Amount: 3.5, Status: domain.OrderCreated}
	completed := &paypal.Capture{OrderID: "ORDER-1", Status: "COMPLETED", CustomID: "3", Amount: "3.50", PayerEmail: "buyer@example.com"}
	grant := domain.Grant{BuyerID: 2, BetID: 3, OwnerID: 9, Paid: price("3.50"), PayerEmail: "buyer@example.com"}

	tests := []struct {
		name          string
		buyerID       int
		prepareMock   func(m *mocks)
		expected      *domain.CapturedOrder
		expectedError error
	}{
		{
			name:    "captured and granted",
			buyerID: 2,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().LockByID(gomock.Any(), "ORDER-1").Return(stored, nil)
				m.config.EXPECT().Values(gomock.Any(), "paypal_").Return(map[string]string{}, nil)
				m.gateway.EXPECT().CaptureOrder(gomock.Any(), envCreds, "ORDER-1").Return(completed, nil)
				m.unlocker.EXPECT().Quote(gomock.Any(), 3).Return(&domain.Quote{BetID: 3, OwnerID: 9}, nil)
				m.unlocker.EXPECT().Grant(gomock.Any(), grant).Return(true, nil)
				m.payments.EXPECT().MarkCaptured(gomock.Any(), "ORDER-1", 3.5).Return(nil)
				m.unlocker.EXPECT().Record(gomock.Any(), metrics.UnlockPayPal, grant)
			},
			expected: &domain.CapturedOrder{OrderID: "ORDER-1", BetID: 3, Amount: price("3.50")},
		},
		{
			name:    "captured amount is the one credited",
			buyerID: 2,
			prepareMock: func(m *mocks) {
				partial := *completed
				partial.Amount = "2.90"
				partial.PayerEmail = ""
				g := domain.Grant{BuyerID: 2, BetID: 3, OwnerID: 9, Paid: price("2.90"), PayerEmail: "N/D"}
				m.payments.EXPECT().LockByID(gomock.Any(), "ORDER-1").Return(stored, nil)
				m.config.EXPECT().Values(gomock.Any(), "paypal_").Return(map[string]string{}, nil)
				m.gateway.EXPECT().CaptureOrder(gomock.Any(), gomock.Any(), "ORDER-1").Return(&partial, nil)
				m.unlocker.EXPECT().Quote(gomock.Any(), 3).Return(&domain.Quote{BetID: 3, OwnerID: 9}, nil)
				m.unlocker.EXPECT().Grant(gomock.Any(), g).Return(true, nil)
				m.payments.EXPECT().MarkCaptured(gomock.Any(), "ORDER-1", 2.9).Return(nil)
				m.unlocker.EXPECT().Record(gomock.Any(), metrics.UnlockPayPal, g)
			},
			expected: &domain.CapturedOrder{OrderID: "ORDER-1", BetID: 3, Amount: price("2.90")},
		},
		{
			name:    "second capture is idempotent",
			buyerID: 2,
			prepareMock: func(m *mocks) {
				done := *stored
				done.Status = domain.OrderCaptured
				m.payments.EXPECT().LockByID(gomock.Any(), "ORDER-1").Return(&done, nil)
			},
			expected: &domain.CapturedOrder{OrderID: "ORDER-1", BetID: 3, Amount: price("3.50"), AlreadyCaptured: true},
		},
		{
			name:    "order of another buyer",
			buyerID: 5,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().LockByID(gomock.Any(), "ORDER-1").Return(stored, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "unknown order",
			buyerID: 2,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().LockByID(gomock.Any(), "ORDER-1").Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "payment not completed",
			buyerID: 2,
			prepareMock: func(m *mocks) {
				pending := *completed
				pending.Status = "PENDING"
				m.payments.EXPECT().LockByID(gomock.Any(), "ORDER-1").Return(stored, nil)
				m.config.EXPECT().Values(gomock.Any(), "paypal_").Return(map[string]string{}, nil)
				m.gateway.EXPECT().CaptureOrder(gomock.Any(), gomock.Any(), "ORDER-1").Return(&pending, nil)
			},
			expectedError: ErrPaymentNotCompleted,
		},
		{
			name:    "custom id of another bet",
			buyerID: 2,
			prepareMock: func(m *mocks) {
				forged := *completed
				forged.CustomID = "4"
				m.payments.EXPECT().LockByID(gomock.Any(), "ORDER-1").Return(stored, nil)
				m.config.EXPECT().Values(gomock.Any(), "paypal_").Return(map[string]string{}, nil)
				m.gateway.EXPECT().CaptureOrder(gomock.Any(), gomock.Any(), "ORDER-1").Return(&forged, nil)
			},
			expectedError: ErrBetMismatch,
		},
		{
			name:    "grant fails and nothing is recorded",
			buyerID: 2,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().LockByID(gomock.Any(), "ORDER-1").Return(stored, nil)
				m.config.EXPECT().Values(gomock.Any(), "paypal_").Return(map[string]string{}, nil)
				m.gateway.EXPECT().CaptureOrder(gomock.Any(), gomock.Any(), "ORDER-1").Return(completed, nil)
				m.unlocker.EXPECT().Quote(gomock.Any(), 3).Return(&domain.Quote{BetID: 3, OwnerID: 9}, nil)
				m.unlocker.EXPECT().Grant(gomock.Any(), grant).Return(false, errors.New("deadlock"))
			},
			expectedError: errors.New("deadlock"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			captured, err := service.CaptureOrder(context.Background(), tt.buyerID, "ORDER-1")
			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(err, tt.expectedError) {
					return
				}
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.OrderID, captured.OrderID)
			assert.Equal(t, tt.expected.BetID, captured.BetID)
			assert.Equal(t, tt.expected.AlreadyCaptured, captured.AlreadyCaptured)
			assert.True(t, tt.expected.Amount.Equal(captured.Amount), captured.Amount.String())
		})
	}
}

func TestCaptureOrderRetryAfterFailedGrant(t *testing.T) {
	service, m := NewMock(t)
	stored := &domain.PaymentOrder{OrderID: "ORDER-1", BuyerID: 2, BetID: 3, Amount: 3.5, Status: domain.OrderCreated}
	completed := &paypal.Capture{OrderID: "ORDER-1", Status: "COMPLETED", CustomID: "3", Amount: "3.50", PayerEmail: "buyer@example.com"}
	grant := domain.Grant{BuyerID: 2, BetID: 3, OwnerID: 9, Paid: price("3.50"), PayerEmail: "buyer@example.com"}

	m.payments.EXPECT().LockByID(gomock.Any(), "ORDER-1").Return(stored, nil).Times(2)
	m.config.EXPECT().Values(gomock.Any(), "paypal_").Return(map[string]string{}, nil).Times(2)
	m.gateway.EXPECT().CaptureOrder(gomock.Any(), envCreds, "ORDER-1").Return(completed, nil).Times(2)
	m.unlocker.EXPECT().Quote(gomock.Any(), 3).Return(&domain.Quote{BetID: 3, OwnerID: 9}, nil).Times(2)
	gomock.InOrder(
		m.unlocker.EXPECT().Grant(gomock.Any(), grant).Return(false, errors.New("deadlock")),
		m.unlocker.EXPECT().Grant(gomock.Any(), grant).Return(true, nil),
	)
	m.payments.EXPECT().MarkCaptured(gomock.Any(), "ORDER-1", 3.5).Return(nil)
	m.unlocker.EXPECT().Record(gomock.Any(), metrics.UnlockPayPal, grant).Times(1)

	_, err := service.CaptureOrder(context.Background(), 2, "ORDER-1")
	require.Error(t, err)

	captured, err := service.CaptureOrder(context.Background(), 2, "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, 3, captured.BetID)
	assert.False(t, captured.AlreadyCaptured)
	assert.True(t, price("3.50").Equal(captured.Amount))
}
