package reportservice

import (
	"context"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentTransactions = 100

type Repo interface {
	Summary(ctx context.Context) (domain.FinancialSummary, error)
	AdvisorStats(ctx context.Context) ([]domain.AdvisorStat, error)
	RecentTransactions(ctx context.Context, limit int) ([]domain.ReportTransaction, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// FinancialStats runs the three report queries concurrently.
func (s *Service) FinancialStats(ctx context.Context) (*domain.FinancialStats, error) {
	var stats domain.FinancialStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.repo.Summary(gctx)
		if err != nil {
			return err
		}
		summary.PlatformProfit = decimal.NewFromFloat(summary.TotalGross).
			Sub(decimal.NewFromFloat(summary.TotalAdvisorEarned)).
			Round(2).
			InexactFloat64()
		stats.Summary = summary
		return nil
	})
	g.Go(func() error {
		advisors, err := s.repo.AdvisorStats(gctx)
		stats.Advisors = advisors
		return err
	})
	g.Go(func() error {
		txs, err := s.repo.RecentTransactions(gctx, recentTransactions)
		stats.Transactions = txs
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build financial stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
