package repo

import (
	"github.com/GlebRadaev/tipsters/internal/pg"
	balancerepo "github.com/GlebRadaev/tipsters/internal/repo/balance-repo"
	betrepo "github.com/GlebRadaev/tipsters/internal/repo/bet-repo"
	configrepo "github.com/GlebRadaev/tipsters/internal/repo/config-repo"
	lockrepo "github.com/GlebRadaev/tipsters/internal/repo/lock-repo"
	matchrepo "github.com/GlebRadaev/tipsters/internal/repo/match-repo"
	paymentrepo "github.com/GlebRadaev/tipsters/internal/repo/payment-repo"
	reportrepo "github.com/GlebRadaev/tipsters/internal/repo/report-repo"
	transactionrepo "github.com/GlebRadaev/tipsters/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/tipsters/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/tipsters/internal/repo/wallet-repo"
)

// Repositories holds one repository per table group. Each of them feeds
// several services, so the fields keep the concrete types and every service
// narrows them to the interface it declares.
type Repositories struct {
	TxManager   pg.TXManager
	UserRepo    *userrepo.Repository
	BalanceRepo *balancerepo.Repository
	MatchRepo   *matchrepo.Repository
	BetRepo     *betrepo.Repository
	LockRepo    *lockrepo.Repository
	WalletRepo  *walletrepo.Repository
	Transaction *transactionrepo.Repository
	PaymentRepo *paymentrepo.Repository
	ConfigRepo  *configrepo.Repository
	ReportRepo  *reportrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TxManager:   txManager,
		UserRepo:    userrepo.New(conn),
		BalanceRepo: balancerepo.New(conn),
		MatchRepo:   matchrepo.New(conn),
		BetRepo:     betrepo.New(conn),
		LockRepo:    lockrepo.New(conn),
		WalletRepo:  walletrepo.New(conn),
		Transaction: transactionrepo.New(conn),
		PaymentRepo: paymentrepo.New(conn),
		ConfigRepo:  configrepo.New(conn),
		ReportRepo:  reportrepo.New(conn),
	}
}
