package service

import (
	"time"

	"github.com/GlebRadaev/tipsters/internal/cache"
	"github.com/GlebRadaev/tipsters/internal/config"
	"github.com/GlebRadaev/tipsters/internal/events"
	"github.com/GlebRadaev/tipsters/internal/handlers/admin"
	"github.com/GlebRadaev/tipsters/internal/handlers/advisor"
	"github.com/GlebRadaev/tipsters/internal/handlers/auth"
	"github.com/GlebRadaev/tipsters/internal/handlers/bets"
	"github.com/GlebRadaev/tipsters/internal/handlers/matches"
	"github.com/GlebRadaev/tipsters/internal/handlers/payments"
	"github.com/GlebRadaev/tipsters/internal/handlers/tipsters"
	"github.com/GlebRadaev/tipsters/internal/handlers/unlock"
	"github.com/GlebRadaev/tipsters/internal/metrics"
	"github.com/GlebRadaev/tipsters/internal/repo"
	"github.com/GlebRadaev/tipsters/internal/service/advisorservice"
	"github.com/GlebRadaev/tipsters/internal/service/authservice"
	"github.com/GlebRadaev/tipsters/internal/service/betservice"
	"github.com/GlebRadaev/tipsters/internal/service/matchservice"
	"github.com/GlebRadaev/tipsters/internal/service/paymentservice"
	"github.com/GlebRadaev/tipsters/internal/service/reportservice"
	"github.com/GlebRadaev/tipsters/internal/service/settlementservice"
	"github.com/GlebRadaev/tipsters/internal/service/tipsterservice"
	"github.com/GlebRadaev/tipsters/internal/service/unlockservice"
	pkgauth "github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/GlebRadaev/tipsters/pkg/paypal"
)

// Deps are the collaborators built by the application outside the
// repositories.
type Deps struct {
	Config    *config.Config
	Cache     cache.Cache
	Publisher events.Publisher
	Metrics   *metrics.Metrics
	Gateway   paymentservice.Gateway
	JWT       pkgauth.JWTServiceInterface
	Location  *time.Location
}

type Services struct {
	AuthService       auth.Service
	MatchService      matches.Service
	BetService        bets.Service
	TipsterService    tipsters.Service
	UnlockService     unlock.Service
	PaymentService    payments.Service
	AdvisorService    advisor.Service
	ReportService     admin.Service
	SettlementService *settlementservice.Service
}

func New(repo *repo.Repositories, deps Deps) *Services {
	cfg := deps.Config

	settlementService := settlementservice.New(repo.TxManager, repo.BetRepo, repo.BalanceRepo, deps.Publisher, deps.Metrics)
	unlockService := unlockservice.New(unlockservice.Deps{
		TxManager:       repo.TxManager,
		BetRepo:         repo.BetRepo,
		BalanceRepo:     repo.BalanceRepo,
		LockRepo:        repo.LockRepo,
		WalletRepo:      repo.WalletRepo,
		TransactionRepo: repo.Transaction,
		Publisher:       deps.Publisher,
		Metrics:         deps.Metrics,
	}, cfg.SimulatedUnlock)
	paymentService := paymentservice.New(
		repo.TxManager,
		repo.ConfigRepo,
		repo.PaymentRepo,
		repo.LockRepo,
		unlockService,
		deps.Gateway,
		paypal.Credentials{
			ClientID:     cfg.PayPalClientID,
			ClientSecret: cfg.PayPalClientSecret,
			Mode:         cfg.PayPalMode,
			BaseURL:      cfg.PayPalBaseURL,
		},
	)

	return &Services{
		AuthService:       authservice.New(repo.UserRepo, repo.BalanceRepo, repo.WalletRepo, pkgauth.NewHashService(), deps.JWT, cfg.TokenTTL),
		MatchService:      matchservice.New(repo.MatchRepo, deps.Cache, cfg.MatchesCacheTTL, cfg.BookmakerID, deps.Location),
		BetService:        betservice.New(repo.TxManager, repo.BetRepo, repo.BalanceRepo, repo.LockRepo, settlementService, deps.Publisher, deps.Metrics),
		TipsterService:    tipsterservice.New(repo.UserRepo, repo.BetRepo, unlockService, cfg.PublicSiteURL),
		UnlockService:     unlockService,
		PaymentService:    paymentService,
		AdvisorService:    advisorservice.New(repo.TxManager, repo.WalletRepo, repo.Transaction, deps.Publisher, deps.Metrics),
		ReportService:     reportservice.New(repo.ReportRepo),
		SettlementService: settlementService,
	}
}
