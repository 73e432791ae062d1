package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/dto"
	"github.com/GlebRadaev/tipsters/internal/service/advisorservice"
	"github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/GlebRadaev/tipsters/pkg/utils"
)

type Service interface {
	Wallet(ctx context.Context, userID int) (*domain.WalletView, error)
	Withdraw(ctx context.Context, userID int, amount float64, email string) error
}

type AdvisorHandler struct {
	advisorService Service
}

func New(advisorService Service) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// GetWallet godoc
//
//	@Summary		Advisor wallet
//	@Description	Euro balance and own transactions, newest first
//	@Tags			Advisor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/advisor/wallet [get]
func (h *AdvisorHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.advisorService.Wallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponseDTO(*wallet))
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Debit the wallet and record a pending withdrawal to a PayPal email
//	@Tags			Advisor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.Response	"Invalid amount, invalid email or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/advisor/withdraw [post]
func (h *AdvisorHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.advisorService.Withdraw(r.Context(), userID, req.Amount, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, advisorservice.ErrInvalidAmount),
			errors.Is(err, advisorservice.ErrInvalidEmail),
			errors.Is(err, advisorservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Richiesta di prelievo inviata con successo")
}
