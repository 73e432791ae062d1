package bets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/dto"
	"github.com/GlebRadaev/tipsters/internal/service/betservice"
	"github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/GlebRadaev/tipsters/pkg/utils"
	"github.com/GlebRadaev/tipsters/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Place(ctx context.Context, userID int, bet domain.NewBet) (*domain.PlacedBet, error)
	List(ctx context.Context, userID int) ([]domain.SlipResult, error)
	Delete(ctx context.Context, userID, betID int) error
}

type BetsHandler struct {
	betService Service
	loc        *time.Location
}

func New(betService Service, loc *time.Location) *BetsHandler {
	return &BetsHandler{
		betService: betService,
		loc:        loc,
	}
}

// PlaceBet godoc
//
//	@Summary		Place a bet slip
//	@Description	Store a slip and debit its stake from the GP balance. Accepts snake_case and camelCase keys.
//	@Tags			Bets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceBetRequestDTO	true	"Slip"
//	@Success		200		{object}	dto.PlaceBetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid stake, no selections or insufficient GP"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/saved-bets [post]
func (h *BetsHandler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PlaceBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Selezione non valida")
		return
	}

	placed, err := h.betService.Place(r.Context(), userID, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, betservice.ErrInvalidStake),
			errors.Is(err, betservice.ErrNoSelections),
			errors.Is(err, betservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlaceBetResponseDTO{
		Success:    true,
		ID:         placed.ID,
		NewBalance: placed.NewBalance,
	})
}

// GetBets godoc
//
//	@Summary		List own bet slips
//	@Description	Slips newest first with live results. Won slips are credited on read.
//	@Tags			Bets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SavedBetsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/saved-bets [get]
func (h *BetsHandler) GetBets(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	slips, err := h.betService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	data := make([]dto.SavedBetDTO, 0, len(slips))
	for _, s := range slips {
		data = append(data, dto.NewSavedBetDTO(s, h.loc))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SavedBetsResponseDTO{Success: true, Data: data})
}

// DeleteBet godoc
//
//	@Summary		Delete own bet slip
//	@Description	Remove a slip nobody has unlocked yet
//	@Tags			Bets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Slip id"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Slip not found"
//	@Failure		409	{object}	utils.Response	"Slip already unlocked by buyers"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/saved-bets/{id} [delete]
func (h *BetsHandler) DeleteBet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	betID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || betID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bet id")
		return
	}

	err = h.betService.Delete(r.Context(), userID, betID)
	if err != nil {
		switch {
		case errors.Is(err, betservice.ErrBetNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, betservice.ErrBetUnlocked):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Bet eliminata")
}
