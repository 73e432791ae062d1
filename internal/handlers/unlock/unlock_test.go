package unlock

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/dto"
	"github.com/GlebRadaev/tipsters/internal/service/unlockservice"
	"github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*UnlockHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestUnlockBetHandler(t *testing.T) {
	tests := []struct {
		name            string
		id              string
		prepareMock     func(service *MockService)
		expectedCode    int
		expectedMessage string
		expectedPrice   string
	}{
		{
			name: "Unlocked",
			id:   "30",
			prepareMock: func(service *MockService) {
				service.EXPECT().Unlock(gomock.Any(), 1, 30).Return(&domain.UnlockResult{Price: decimal.RequireFromString("3.5")}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Bet sbloccata con successo",
			expectedPrice:   "3.50",
		},
		{
			name: "Already unlocked",
			id:   "30",
			prepareMock: func(service *MockService) {
				service.EXPECT().Unlock(gomock.Any(), 1, 30).Return(&domain.UnlockResult{AlreadyUnlocked: true, Price: decimal.RequireFromString("1")}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Già sbloccata",
			expectedPrice:   "1.00",
		},
		{
			name: "Own slip",
			id:   "30",
			prepareMock: func(service *MockService) {
				service.EXPECT().Unlock(gomock.Any(), 1, 30).Return(nil, unlockservice.ErrOwnBet)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Simulation disabled",
			id:   "30",
			prepareMock: func(service *MockService) {
				service.EXPECT().Unlock(gomock.Any(), 1, 30).Return(nil, unlockservice.ErrSimulationDisabled)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Not for sale",
			id:   "30",
			prepareMock: func(service *MockService) {
				service.EXPECT().Unlock(gomock.Any(), 1, 30).Return(nil, unlockservice.ErrNotForSale)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown slip",
			id:   "30",
			prepareMock: func(service *MockService) {
				service.EXPECT().Unlock(gomock.Any(), 1, 30).Return(nil, unlockservice.ErrBetNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal error",
			id:   "30",
			prepareMock: func(service *MockService) {
				service.EXPECT().Unlock(gomock.Any(), 1, 30).Return(nil, errors.New("tx failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Invalid id",
			id:           "-3",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/bets/"+tt.id+"/unlock", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, auth.UserIDKey, 1)

			w := httptest.NewRecorder()
			handler.UnlockBet(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.UnlockResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedMessage, body.Message)
				assert.Equal(t, tt.expectedPrice, body.Price)
			}
		})
	}
}
