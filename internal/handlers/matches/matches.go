package matches

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/dto"
	"github.com/GlebRadaev/tipsters/internal/odds"
	"github.com/GlebRadaev/tipsters/internal/service/matchservice"
	"github.com/GlebRadaev/tipsters/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Upcoming(ctx context.Context) ([]odds.MatchOdds, error)
	ByDate(ctx context.Context, date string) ([]odds.MatchOdds, error)
	Teams(ctx context.Context) ([]domain.Team, error)
	Location() *time.Location
}

type MatchesHandler struct {
	matchService Service
}

func New(matchService Service) *MatchesHandler {
	return &MatchesHandler{
		matchService: matchService,
	}
}

// GetMatches godoc
//
//	@Summary		List matches
//	@Description	Not started matches from today on with normalized odds, or the matches of one day when date is given
//	@Tags			Matches
//	@Produce		json
//	@Param			date	query		string	false	"Day in YYYY-MM-DD"
//	@Success		200		{object}	dto.MatchesResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/matches [get]
func (h *MatchesHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		h.respondByDate(w, r, date)
		return
	}
	matches, err := h.matchService.Upcoming(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMatchesResponseDTO("", matches, h.matchService.Location()))
}

// GetMatchesByDate godoc
//
//	@Summary		Matches of one day
//	@Description	Matches kicking off on the given day in the display timezone
//	@Tags			Matches
//	@Produce		json
//	@Param			date	path		string	true	"Day in YYYY-MM-DD"
//	@Success		200		{object}	dto.MatchesResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/matches/date/{date} [get]
func (h *MatchesHandler) GetMatchesByDate(w http.ResponseWriter, r *http.Request) {
	h.respondByDate(w, r, chi.URLParam(r, "date"))
}

func (h *MatchesHandler) respondByDate(w http.ResponseWriter, r *http.Request, date string) {
	matches, err := h.matchService.ByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, matchservice.ErrInvalidDate) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMatchesResponseDTO(date, matches, h.matchService.Location()))
}

// GetTeams godoc
//
//	@Summary		List teams
//	@Description	Distinct teams seen in the last 90 days
//	@Tags			Matches
//	@Produce		json
//	@Success		200	{object}	dto.TeamsResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/data/teams [get]
func (h *MatchesHandler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.matchService.Teams(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTeamsResponseDTO(teams))
}
