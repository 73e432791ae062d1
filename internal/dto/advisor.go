package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
)

type TransactionDTO struct {
	ID           int       `json:"id" example:"1"`
	Amount       float64   `json:"amount" example:"1.75"`
	Type         string    `json:"type" example:"sale"`
	Status       string    `json:"status" example:"completed"`
	PaymentEmail string    `json:"payment_email" example:"buyer@example.com"`
	CreatedAt    time.Time `json:"created_at"`
}

type WalletResponseDTO struct {
	Success      bool             `json:"success" example:"true"`
	Balance      float64          `json:"balance" example:"12.25"`
	Transactions []TransactionDTO `json:"transactions"`
}

func NewWalletResponseDTO(w domain.WalletView) WalletResponseDTO {
	txs := make([]TransactionDTO, 0, len(w.Transactions))
	for _, t := range w.Transactions {
		txs = append(txs, TransactionDTO{
			ID:           t.ID,
			Amount:       t.Amount,
			Type:         t.Type,
			Status:       t.Status,
			PaymentEmail: t.PaymentEmail,
			CreatedAt:    t.CreatedAt,
		})
	}
	return WalletResponseDTO{Success: true, Balance: w.Balance, Transactions: txs}
}

// WithdrawRequestDTO takes the amount as a number or a numeric string.
type WithdrawRequestDTO struct {
	Amount float64 `json:"amount" example:"10"`
	Email  string  `json:"email" example:"advisor@example.com"`
}

func (w *WithdrawRequestDTO) UnmarshalJSON(b []byte) error {
	var raw struct {
		Amount Number `json:"amount"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*w = WithdrawRequestDTO{Amount: float64(raw.Amount), Email: strings.TrimSpace(raw.Email)}
	return nil
}
