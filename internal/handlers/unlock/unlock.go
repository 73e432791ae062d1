package unlock

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/dto"
	"github.com/GlebRadaev/tipsters/internal/service/unlockservice"
	"github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/GlebRadaev/tipsters/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Unlock(ctx context.Context, buyerID, betID int) (*domain.UnlockResult, error)
}

type UnlockHandler struct {
	unlockService Service
}

func New(unlockService Service) *UnlockHandler {
	return &UnlockHandler{unlockService: unlockService}
}

// UnlockBet godoc
//
//	@Summary		Unlock a slip
//	@Description	Simulated purchase of a slip at the owner's tier price. Half of it goes to the owner's wallet.
//	@Tags			Unlock
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Slip id"
//	@Success		200	{object}	dto.UnlockResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id or slip not for sale"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Own slip or simulated unlock disabled"
//	@Failure		404	{object}	utils.Response	"Slip not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/{id}/unlock [post]
func (h *UnlockHandler) UnlockBet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	betID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || betID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bet id")
		return
	}

	result, err := h.unlockService.Unlock(r.Context(), userID, betID)
	if err != nil {
		switch {
		case errors.Is(err, unlockservice.ErrBetNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, unlockservice.ErrNotForSale):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, unlockservice.ErrOwnBet),
			errors.Is(err, unlockservice.ErrSimulationDisabled):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUnlockResponseDTO(*result))
}
