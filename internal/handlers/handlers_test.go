package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/tipsters/internal/handlers/admin"
	"github.com/GlebRadaev/tipsters/internal/handlers/advisor"
	"github.com/GlebRadaev/tipsters/internal/handlers/auth"
	"github.com/GlebRadaev/tipsters/internal/handlers/bets"
	"github.com/GlebRadaev/tipsters/internal/handlers/matches"
	"github.com/GlebRadaev/tipsters/internal/handlers/payments"
	"github.com/GlebRadaev/tipsters/internal/handlers/tipsters"
	"github.com/GlebRadaev/tipsters/internal/handlers/unlock"
	"github.com/GlebRadaev/tipsters/internal/service"
	pkgauth "github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		MatchService:   matches.NewMockService(ctrl),
		BetService:     bets.NewMockService(ctrl),
		TipsterService: tipsters.NewMockService(ctrl),
		UnlockService:  unlock.NewMockService(ctrl),
		PaymentService: payments.NewMockService(ctrl),
		AdvisorService: advisor.NewMockService(ctrl),
		ReportService:  admin.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewMiddleware(pkgauth.NewJWTService("secret")), time.UTC, "https://tipsters.example")
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AdminHandler)
	assert.NotNil(t, h.Middleware)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockMatchesHandler := NewMockMatchesHandler(ctrl)
	mockBetsHandler := NewMockBetsHandler(ctrl)
	mockTipstersHandler := NewMockTipstersHandler(ctrl)
	mockUnlockHandler := NewMockUnlockHandler(ctrl)
	mockPaymentsHandler := NewMockPaymentsHandler(ctrl)
	mockAdvisorHandler := NewMockAdvisorHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Me(gomock.Any(), gomock.Any()).AnyTimes()
	mockMatchesHandler.EXPECT().GetMatches(gomock.Any(), gomock.Any()).AnyTimes()
	mockMatchesHandler.EXPECT().GetMatchesByDate(gomock.Any(), gomock.Any()).AnyTimes()
	mockMatchesHandler.EXPECT().GetTeams(gomock.Any(), gomock.Any()).AnyTimes()
	mockBetsHandler.EXPECT().PlaceBet(gomock.Any(), gomock.Any()).AnyTimes()
	mockBetsHandler.EXPECT().GetBets(gomock.Any(), gomock.Any()).AnyTimes()
	mockBetsHandler.EXPECT().DeleteBet(gomock.Any(), gomock.Any()).AnyTimes()
	mockTipstersHandler.EXPECT().GetTipsters(gomock.Any(), gomock.Any()).AnyTimes()
	mockTipstersHandler.EXPECT().GetPublicBets(gomock.Any(), gomock.Any()).AnyTimes()
	mockTipstersHandler.EXPECT().GetPublicMatches(gomock.Any(), gomock.Any()).AnyTimes()
	mockTipstersHandler.EXPECT().ShareTipster(gomock.Any(), gomock.Any()).AnyTimes()
	mockUnlockHandler.EXPECT().UnlockBet(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().GetPayPalConfig(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().CaptureOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdvisorHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdvisorHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetFinancialStats(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := pkgauth.NewJWTService("secret")
	userToken, err := jwtService.GenerateJWT(1, false, time.Now().Add(time.Hour))
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT(2, true, time.Now().Add(time.Hour))
	require.NoError(t, err)

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		MatchesHandler:  mockMatchesHandler,
		BetsHandler:     mockBetsHandler,
		TipstersHandler: mockTipstersHandler,
		UnlockHandler:   mockUnlockHandler,
		PaymentsHandler: mockPaymentsHandler,
		AdvisorHandler:  mockAdvisorHandler,
		AdminHandler:    mockAdminHandler,
		Middleware:      pkgauth.NewMiddleware(jwtService),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/api/health", "", http.StatusOK},
		{"POST", "/api/auth/login", "", http.StatusOK},
		{"GET", "/api/matches", "", http.StatusOK},
		{"GET", "/api/matches/date/2024-05-10", "", http.StatusOK},
		{"GET", "/api/data/teams", "", http.StatusOK},
		{"GET", "/api/tipsters", "", http.StatusOK},
		{"GET", "/api/tipsters/7/public-bets", "", http.StatusOK},
		{"GET", "/api/tipsters/7/public-bets", "garbage", http.StatusOK},
		{"GET", "/api/bets/30/public-matches", "", http.StatusOK},
		{"GET", "/api/share/tipster/7", "", http.StatusOK},
		{"GET", "/api/config/paypal-public", "", http.StatusOK},
		{"GET", "/api/auth/me", "", http.StatusUnauthorized},
		{"GET", "/api/auth/me", userToken, http.StatusOK},
		{"GET", "/api/saved-bets", "", http.StatusUnauthorized},
		{"POST", "/api/saved-bets", "", http.StatusUnauthorized},
		{"POST", "/api/saved-bets", userToken, http.StatusOK},
		{"DELETE", "/api/saved-bets/30", "", http.StatusUnauthorized},
		{"DELETE", "/api/saved-bets/30", userToken, http.StatusOK},
		{"POST", "/api/bets/30/unlock", "", http.StatusUnauthorized},
		{"POST", "/api/bets/30/unlock", userToken, http.StatusOK},
		{"POST", "/api/paypal/create-order", "", http.StatusUnauthorized},
		{"POST", "/api/paypal/capture-order", "", http.StatusUnauthorized},
		{"GET", "/api/advisor/wallet", "", http.StatusUnauthorized},
		{"POST", "/api/advisor/withdraw", "", http.StatusUnauthorized},
		{"GET", "/api/admin/financial-stats", "", http.StatusUnauthorized},
		{"GET", "/api/admin/financial-stats", userToken, http.StatusForbidden},
		{"GET", "/api/admin/financial-stats", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["status"])
}
