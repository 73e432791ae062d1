package dto

import (
	"encoding/json"
	"strings"

	"github.com/GlebRadaev/tipsters/internal/betting"
	"github.com/GlebRadaev/tipsters/internal/domain"
)

type PayPalConfigResponseDTO struct {
	Success  bool   `json:"success" example:"true"`
	ClientID string `json:"paypal_client_id" example:"AbC123"`
	Mode     string `json:"paypal_mode" example:"sandbox"`
}

// CreateOrderRequestDTO takes bet_id or betId. Price is what the client
// displayed; the charged amount is always re-derived server side.
type CreateOrderRequestDTO struct {
	BetID int    `json:"bet_id" validate:"gt=0" example:"30"`
	Price string `json:"price" example:"3.50"`
}

func (c *CreateOrderRequestDTO) UnmarshalJSON(b []byte) error {
	var raw struct {
		BetIDSnake *Number         `json:"bet_id"`
		BetIDCamel *Number         `json:"betId"`
		Price      json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = CreateOrderRequestDTO{
		BetID: int(first(raw.BetIDSnake, raw.BetIDCamel)),
		Price: rawText(raw.Price),
	}
	return nil
}

type CreateOrderResponseDTO struct {
	Success         bool   `json:"success" example:"true"`
	ID              string `json:"id,omitempty" example:"5O190127TN364715T"`
	Status          string `json:"status,omitempty" example:"CREATED"`
	Amount          string `json:"amount,omitempty" example:"3.50"`
	AlreadyUnlocked bool   `json:"already_unlocked,omitempty"`
	Message         string `json:"message,omitempty"`
}

func NewCreateOrderResponseDTO(o domain.CreatedOrder) CreateOrderResponseDTO {
	if o.AlreadyUnlocked {
		return CreateOrderResponseDTO{Success: true, AlreadyUnlocked: true, Message: "Già sbloccata"}
	}
	return CreateOrderResponseDTO{
		Success: true,
		ID:      o.OrderID,
		Status:  domain.OrderCreated,
		Amount:  betting.FormatPrice(o.Amount),
	}
}

type CaptureOrderRequestDTO struct {
	OrderID string `json:"order_id" validate:"required" example:"5O190127TN364715T"`
}

func (c *CaptureOrderRequestDTO) UnmarshalJSON(b []byte) error {
	var raw struct {
		OrderIDSnake string `json:"order_id"`
		OrderIDCamel string `json:"orderId"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c.OrderID = strings.TrimSpace(firstString(raw.OrderIDSnake, raw.OrderIDCamel))
	return nil
}

type CaptureDTO struct {
	OrderID         string `json:"order_id" example:"5O190127TN364715T"`
	BetID           int    `json:"bet_id" example:"30"`
	Amount          string `json:"amount" example:"3.50"`
	AlreadyCaptured bool   `json:"already_captured"`
}

type CaptureOrderResponseDTO struct {
	Success bool       `json:"success" example:"true"`
	Capture CaptureDTO `json:"capture"`
}

func NewCaptureOrderResponseDTO(o domain.CapturedOrder) CaptureOrderResponseDTO {
	return CaptureOrderResponseDTO{
		Success: true,
		Capture: CaptureDTO{
			OrderID:         o.OrderID,
			BetID:           o.BetID,
			Amount:          betting.FormatPrice(o.Amount),
			AlreadyCaptured: o.AlreadyCaptured,
		},
	}
}

// rawText turns a JSON string or number into its textual form.
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return string(raw)
}

type UnlockResponseDTO struct {
	Success         bool   `json:"success" example:"true"`
	Message         string `json:"message" example:"Bet sbloccata con successo"`
	Price           string `json:"price" example:"3.50"`
	AlreadyUnlocked bool   `json:"already_unlocked"`
}

func NewUnlockResponseDTO(r domain.UnlockResult) UnlockResponseDTO {
	out := UnlockResponseDTO{
		Success:         true,
		Message:         "Bet sbloccata con successo",
		Price:           betting.FormatPrice(r.Price),
		AlreadyUnlocked: r.AlreadyUnlocked,
	}
	if r.AlreadyUnlocked {
		out.Message = "Già sbloccata"
	}
	return out
}
