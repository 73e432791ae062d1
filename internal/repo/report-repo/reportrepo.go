package reportrepo

import (
	"context"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Summary(ctx context.Context) (domain.FinancialSummary, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(purchased_price), 0) FROM bet_locks)::float8 AS total_gross,
			(SELECT COALESCE(SUM(balance_euro), 0) FROM advisor_wallets)::float8 AS total_advisor_balance,
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = 'sale' AND status = 'completed')::float8 AS total_advisor_earned,
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = 'withdrawal' AND status = 'completed')::float8 AS total_withdrawn
	`
	var s domain.FinancialSummary
	err := r.db.QueryRow(ctx, query).Scan(&s.TotalGross, &s.TotalAdvisorBalance, &s.TotalAdvisorEarned, &s.TotalWithdrawn)
	if err != nil {
		zap.L().Error("can't load financial summary", zap.Error(err))
		return domain.FinancialSummary{}, err
	}
	return s, nil
}

// AdvisorStats groups locks by the advisor who created the slip.
func (r *Repository) AdvisorStats(ctx context.Context) ([]domain.AdvisorStat, error) {
	query := `
		SELECT u.id AS advisor_id,
		       u.email AS advisor_email,
		       COUNT(l.id)::int AS total_sales_count,
		       COALESCE(SUM(l.purchased_price), 0)::float8 AS gross_revenue,
		       ROUND(COALESCE(SUM(l.purchased_price), 0) * 0.5, 2)::float8 AS expected_advisor_share,
		       COALESCE(MAX(w.balance_euro), 0)::float8 AS current_wallet_balance
		FROM users u
		JOIN saved_bets b ON b.user_id = u.id
		JOIN bet_locks l ON l.bet_id = b.id
		LEFT JOIN advisor_wallets w ON w.user_id = u.id
		GROUP BY u.id, u.email
		ORDER BY gross_revenue DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't load advisor stats", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	stats := make([]domain.AdvisorStat, 0)
	for rows.Next() {
		var s domain.AdvisorStat
		err := rows.Scan(&s.AdvisorID, &s.AdvisorEmail, &s.TotalSalesCount, &s.GrossRevenue, &s.ExpectedAdvisorShare, &s.CurrentWalletBalance)
		if err != nil {
			zap.L().Error("can't scan advisor stat", zap.Error(err))
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("advisor stat rows error", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (r *Repository) RecentTransactions(ctx context.Context, limit int) ([]domain.ReportTransaction, error) {
	query := `
		SELECT t.id, t.amount::float8 AS advisor_amount, t.type, t.status,
		       COALESCE(t.payment_email, '') AS buyer_email, t.created_at,
		       COALESCE(u.email, '') AS advisor_email
		FROM transactions t
		LEFT JOIN users u ON u.id = t.user_id
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't load recent transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	txs := make([]domain.ReportTransaction, 0)
	for rows.Next() {
		var t domain.ReportTransaction
		if err := rows.Scan(&t.ID, &t.AdvisorAmount, &t.Type, &t.Status, &t.BuyerEmail, &t.CreatedAt, &t.AdvisorEmail); err != nil {
			zap.L().Error("can't scan report transaction", zap.Error(err))
			return nil, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("report transaction rows error", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
