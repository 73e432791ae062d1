package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/dto"
	"github.com/GlebRadaev/tipsters/internal/service/paymentservice"
	"github.com/GlebRadaev/tipsters/internal/service/unlockservice"
	"github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/GlebRadaev/tipsters/pkg/paypal"
	"github.com/GlebRadaev/tipsters/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PaymentsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func authorized(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestGetPayPalConfigHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().PublicConfig(gomock.Any()).Return(domain.PayPalConfig{ClientID: "AbC123", Mode: "live"}, nil)

	w := httptest.NewRecorder()
	handler.GetPayPalConfig(w, httptest.NewRequest(http.MethodGet, "/api/config/paypal-public", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"paypal_client_id":"AbC123","paypal_mode":"live"}`, w.Body.String())
}

func TestCreateOrderHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
		expectedJSON  string
	}{
		{
			name: "Order created from camelCase body",
			body: `{"betId":30,"price":"9.99"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateOrder(gomock.Any(), 1, 30, "9.99").
					Return(&domain.CreatedOrder{OrderID: "5O190127TN364715T", Amount: decimal.RequireFromString("3.5")}, nil)
			},
			expectedCode: http.StatusOK,
			expectedJSON: `{"success":true,"id":"5O190127TN364715T","status":"CREATED","amount":"3.50"}`,
		},
		{
			name: "Already unlocked",
			body: `{"bet_id":30,"price":3.5}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateOrder(gomock.Any(), 1, 30, "3.5").
					Return(&domain.CreatedOrder{AlreadyUnlocked: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedJSON: `{"success":true,"already_unlocked":true,"message":"Già sbloccata"}`,
		},
		{
			name: "Own slip",
			body: `{"bet_id":30}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateOrder(gomock.Any(), 1, 30, "").Return(nil, unlockservice.ErrOwnBet)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: unlockservice.ErrOwnBet.Error(),
		},
		{
			name: "Not for sale",
			body: `{"bet_id":30}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateOrder(gomock.Any(), 1, 30, "").Return(nil, unlockservice.ErrNotForSale)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown slip",
			body: `{"bet_id":30}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateOrder(gomock.Any(), 1, 30, "").Return(nil, unlockservice.ErrBetNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "PayPal not configured",
			body: `{"bet_id":30}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateOrder(gomock.Any(), 1, 30, "").Return(nil, paypal.ErrNotConfigured)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name: "PayPal rejected the order",
			body: `{"bet_id":30}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateOrder(gomock.Any(), 1, 30, "").
					Return(nil, fmt.Errorf("create order: %w", &paypal.APIError{Op: "create order", StatusCode: 422, Body: "{}"}))
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "Errore PayPal",
		},
		{
			name:          "Missing bet id",
			body:          `{"price":"3.50"}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Bet ID non valido",
		},
		{
			name:          "Invalid request body",
			body:          `[`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.CreateOrder(w, authorized(http.MethodPost, "/api/paypal/create-order", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedJSON != "" {
				assert.JSONEq(t, tt.expectedJSON, w.Body.String())
			}
			if tt.expectedError != "" {
				var body utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedError, body.Error)
			}
		})
	}
}

func TestCaptureOrderHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Captured",
			body: `{"orderId":" 5O190127TN364715T "}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CaptureOrder(gomock.Any(), 1, "5O190127TN364715T").Return(&domain.CapturedOrder{
					OrderID: "5O190127TN364715T",
					BetID:   30,
					Amount:  decimal.RequireFromString("3.5"),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Payment not completed",
			body: `{"order_id":"ORD"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CaptureOrder(gomock.Any(), 1, "ORD").
					Return(nil, fmt.Errorf("%w: status PENDING", paymentservice.ErrPaymentNotCompleted))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Slip mismatch",
			body: `{"order_id":"ORD"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CaptureOrder(gomock.Any(), 1, "ORD").
					Return(nil, fmt.Errorf("%w: custom_id", paymentservice.ErrBetMismatch))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Order of another buyer",
			body: `{"order_id":"ORD"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CaptureOrder(gomock.Any(), 1, "ORD").Return(nil, paymentservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal error",
			body: `{"order_id":"ORD"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CaptureOrder(gomock.Any(), 1, "ORD").Return(nil, errors.New("commit failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:          "Missing order id",
			body:          `{}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Order ID mancante",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.CaptureOrder(w, authorized(http.MethodPost, "/api/paypal/capture-order", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CaptureOrderResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 30, body.Capture.BetID)
				assert.Equal(t, "3.50", body.Capture.Amount)
				assert.False(t, body.Capture.AlreadyCaptured)
				return
			}
			if tt.expectedError != "" {
				var body utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedError, body.Error)
			}
		})
	}
}
