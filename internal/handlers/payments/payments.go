package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/dto"
	"github.com/GlebRadaev/tipsters/internal/service/paymentservice"
	"github.com/GlebRadaev/tipsters/internal/service/unlockservice"
	"github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/GlebRadaev/tipsters/pkg/paypal"
	"github.com/GlebRadaev/tipsters/pkg/utils"
	"github.com/GlebRadaev/tipsters/pkg/validate"
)

type Service interface {
	PublicConfig(ctx context.Context) (domain.PayPalConfig, error)
	CreateOrder(ctx context.Context, buyerID, betID int, clientPrice string) (*domain.CreatedOrder, error)
	CaptureOrder(ctx context.Context, buyerID int, orderID string) (*domain.CapturedOrder, error)
}

type PaymentsHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentsHandler {
	return &PaymentsHandler{paymentService: paymentService}
}

// GetPayPalConfig godoc
//
//	@Summary		PayPal client configuration
//	@Description	Client id and mode for the checkout button
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{object}	dto.PayPalConfigResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/config/paypal-public [get]
func (h *PaymentsHandler) GetPayPalConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.paymentService.PublicConfig(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayPalConfigResponseDTO{
		Success:  true,
		ClientID: cfg.ClientID,
		Mode:     cfg.Mode,
	})
}

// CreateOrder godoc
//
//	@Summary		Create a PayPal order
//	@Description	Open an order for a slip at the price derived from the owner's balance
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Slip to unlock"
//	@Success		200		{object}	dto.CreateOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request or slip not for sale"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Own slip"
//	@Failure		404		{object}	utils.Response	"Slip not found"
//	@Failure		502		{object}	utils.Response	"PayPal error"
//	@Failure		503		{object}	utils.Response	"PayPal not configured"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/paypal/create-order [post]
func (h *PaymentsHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Bet ID non valido")
		return
	}

	order, err := h.paymentService.CreateOrder(r.Context(), userID, req.BetID, req.Price)
	if err != nil {
		respondWithPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCreateOrderResponseDTO(*order))
}

// CaptureOrder godoc
//
//	@Summary		Capture a PayPal order
//	@Description	Capture an approved order and unlock the paid slip. Repeating a capture is a no-op.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CaptureOrderRequestDTO	true	"Order"
//	@Success		200		{object}	dto.CaptureOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request or payment not completed"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		502		{object}	utils.Response	"PayPal error"
//	@Failure		503		{object}	utils.Response	"PayPal not configured"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/paypal/capture-order [post]
func (h *PaymentsHandler) CaptureOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CaptureOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Order ID mancante")
		return
	}

	captured, err := h.paymentService.CaptureOrder(r.Context(), userID, req.OrderID)
	if err != nil {
		respondWithPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCaptureOrderResponseDTO(*captured))
}

func respondWithPaymentError(w http.ResponseWriter, err error) {
	var apiErr *paypal.APIError
	switch {
	case errors.Is(err, unlockservice.ErrBetNotFound),
		errors.Is(err, paymentservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, unlockservice.ErrOwnBet):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, unlockservice.ErrNotForSale),
		errors.Is(err, paymentservice.ErrPaymentNotCompleted),
		errors.Is(err, paymentservice.ErrBetMismatch):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, paypal.ErrNotConfigured):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "PayPal non configurato")
	case errors.As(err, &apiErr):
		utils.RespondWithError(w, http.StatusBadGateway, "Errore PayPal")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
