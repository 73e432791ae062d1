package dto

import (
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
)

type FinancialSummaryDTO struct {
	TotalGross          float64 `json:"total_gross" example:"10.4"`
	TotalAdvisorBalance float64 `json:"total_advisor_balance" example:"3.2"`
	TotalAdvisorEarned  float64 `json:"total_advisor_earned" example:"5.2"`
	TotalWithdrawn      float64 `json:"total_withdrawn" example:"2"`
	PlatformProfit      float64 `json:"platform_profit" example:"5.2"`
}

type AdvisorStatDTO struct {
	AdvisorID            int     `json:"advisor_id"`
	AdvisorEmail         string  `json:"advisor_email"`
	DisplayName          string  `json:"display_name"`
	TotalSalesCount      int     `json:"total_sales_count"`
	GrossRevenue         float64 `json:"gross_revenue"`
	ExpectedAdvisorShare float64 `json:"expected_advisor_share"`
	CurrentWalletBalance float64 `json:"current_wallet_balance"`
}

type ReportTransactionDTO struct {
	ID            int       `json:"id"`
	AdvisorAmount float64   `json:"advisor_amount"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	BuyerEmail    string    `json:"buyer_email"`
	CreatedAt     time.Time `json:"created_at"`
	AdvisorEmail  string    `json:"advisor_email"`
}

type FinancialStatsResponseDTO struct {
	Success      bool                   `json:"success" example:"true"`
	Summary      FinancialSummaryDTO    `json:"summary"`
	Advisors     []AdvisorStatDTO       `json:"advisors"`
	Transactions []ReportTransactionDTO `json:"transactions"`
}

func NewFinancialStatsResponseDTO(s domain.FinancialStats) FinancialStatsResponseDTO {
	out := FinancialStatsResponseDTO{
		Success: true,
		Summary: FinancialSummaryDTO{
			TotalGross:          s.Summary.TotalGross,
			TotalAdvisorBalance: s.Summary.TotalAdvisorBalance,
			TotalAdvisorEarned:  s.Summary.TotalAdvisorEarned,
			TotalWithdrawn:      s.Summary.TotalWithdrawn,
			PlatformProfit:      s.Summary.PlatformProfit,
		},
		Advisors:     make([]AdvisorStatDTO, 0, len(s.Advisors)),
		Transactions: make([]ReportTransactionDTO, 0, len(s.Transactions)),
	}
	for _, a := range s.Advisors {
		out.Advisors = append(out.Advisors, AdvisorStatDTO{
			AdvisorID:            a.AdvisorID,
			AdvisorEmail:         a.AdvisorEmail,
			DisplayName:          a.AdvisorEmail,
			TotalSalesCount:      a.TotalSalesCount,
			GrossRevenue:         a.GrossRevenue,
			ExpectedAdvisorShare: a.ExpectedAdvisorShare,
			CurrentWalletBalance: a.CurrentWalletBalance,
		})
	}
	for _, t := range s.Transactions {
		out.Transactions = append(out.Transactions, ReportTransactionDTO{
			ID:            t.ID,
			AdvisorAmount: t.AdvisorAmount,
			Type:          t.Type,
			Status:        t.Status,
			BuyerEmail:    t.BuyerEmail,
			CreatedAt:     t.CreatedAt,
			AdvisorEmail:  t.AdvisorEmail,
		})
	}
	return out
}
