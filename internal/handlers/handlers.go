package handlers

import (
	"net/http"
	"time"

	_ "github.com/GlebRadaev/tipsters/docs"
	adminhandlers "github.com/GlebRadaev/tipsters/internal/handlers/admin"
	advisorhandlers "github.com/GlebRadaev/tipsters/internal/handlers/advisor"
	authhandlers "github.com/GlebRadaev/tipsters/internal/handlers/auth"
	betshandlers "github.com/GlebRadaev/tipsters/internal/handlers/bets"
	matcheshandlers "github.com/GlebRadaev/tipsters/internal/handlers/matches"
	paymentshandlers "github.com/GlebRadaev/tipsters/internal/handlers/payments"
	tipstershandlers "github.com/GlebRadaev/tipsters/internal/handlers/tipsters"
	unlockhandlers "github.com/GlebRadaev/tipsters/internal/handlers/unlock"
	"github.com/GlebRadaev/tipsters/internal/service"
	"github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/GlebRadaev/tipsters/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type MatchesHandler interface {
	GetMatches(w http.ResponseWriter, r *http.Request)
	GetMatchesByDate(w http.ResponseWriter, r *http.Request)
	GetTeams(w http.ResponseWriter, r *http.Request)
}

type BetsHandler interface {
	PlaceBet(w http.ResponseWriter, r *http.Request)
	GetBets(w http.ResponseWriter, r *http.Request)
	DeleteBet(w http.ResponseWriter, r *http.Request)
}

type TipstersHandler interface {
	GetTipsters(w http.ResponseWriter, r *http.Request)
	GetPublicBets(w http.ResponseWriter, r *http.Request)
	GetPublicMatches(w http.ResponseWriter, r *http.Request)
	ShareTipster(w http.ResponseWriter, r *http.Request)
}

type UnlockHandler interface {
	UnlockBet(w http.ResponseWriter, r *http.Request)
}

type PaymentsHandler interface {
	GetPayPalConfig(w http.ResponseWriter, r *http.Request)
	CreateOrder(w http.ResponseWriter, r *http.Request)
	CaptureOrder(w http.ResponseWriter, r *http.Request)
}

type AdvisorHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetFinancialStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	MatchesHandler  MatchesHandler
	BetsHandler     BetsHandler
	TipstersHandler TipstersHandler
	UnlockHandler   UnlockHandler
	PaymentsHandler PaymentsHandler
	AdvisorHandler  AdvisorHandler
	AdminHandler    AdminHandler

	Middleware *auth.Middleware
}

func New(s *service.Services, mw *auth.Middleware, loc *time.Location, siteURL string) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		MatchesHandler:  matcheshandlers.New(s.MatchService),
		BetsHandler:     betshandlers.New(s.BetService, loc),
		TipstersHandler: tipstershandlers.New(s.TipsterService, loc, siteURL),
		UnlockHandler:   unlockhandlers.New(s.UnlockService),
		PaymentsHandler: paymentshandlers.New(s.PaymentService),
		AdvisorHandler:  advisorhandlers.New(s.AdvisorService),
		AdminHandler:    adminhandlers.New(s.ReportService),
		Middleware:      mw,
	}
}

type healthResponse struct {
	Success bool   `json:"success" example:"true"`
	Status  string `json:"status" example:"ok"`
}

// Health godoc
//
//	@Summary	Liveness
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	handlers.healthResponse
//	@Router		/api/health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, healthResponse{Success: true, Status: "ok"})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Health)
		r.Get("/matches", h.MatchesHandler.GetMatches)
		r.Get("/matches/date/{date}", h.MatchesHandler.GetMatchesByDate)
		r.Get("/data/teams", h.MatchesHandler.GetTeams)
		r.Get("/tipsters", h.TipstersHandler.GetTipsters)
		r.Get("/share/tipster/{id}", h.TipstersHandler.ShareTipster)
		r.Get("/config/paypal-public", h.PaymentsHandler.GetPayPalConfig)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.Middleware.Optional)
			r.Get("/tipsters/{id}/public-bets", h.TipstersHandler.GetPublicBets)
			r.Get("/bets/{id}/public-matches", h.TipstersHandler.GetPublicMatches)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.Middleware.Required)
			r.Get("/auth/me", h.AuthHandler.Me)
			r.Route("/saved-bets", func(r chi.Router) {
				r.Get("/", h.BetsHandler.GetBets)
				r.Post("/", h.BetsHandler.PlaceBet)
				r.Delete("/{id}", h.BetsHandler.DeleteBet)
			})
			r.Post("/bets/{id}/unlock", h.UnlockHandler.UnlockBet)
			r.Post("/paypal/create-order", h.PaymentsHandler.CreateOrder)
			r.Post("/paypal/capture-order", h.PaymentsHandler.CaptureOrder)
			r.Get("/advisor/wallet", h.AdvisorHandler.GetWallet)
			r.Post("/advisor/withdraw", h.AdvisorHandler.Withdraw)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.Middleware.Admin)
			r.Get("/admin/financial-stats", h.AdminHandler.GetFinancialStats)
		})
	})

	return r
}
