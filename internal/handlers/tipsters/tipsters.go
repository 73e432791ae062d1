package tipsters

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/dto"
	"github.com/GlebRadaev/tipsters/internal/service/tipsterservice"
	"github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/GlebRadaev/tipsters/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	List(ctx context.Context) ([]domain.TipsterSummary, error)
	PublicBets(ctx context.Context, tipsterID, viewerID int) (*domain.TipsterPage, error)
	PublicMatches(ctx context.Context, betID, viewerID int) (*domain.PublicSlip, error)
	SharePage(ctx context.Context, tipsterID int) ([]byte, error)
}

var fallbackPage = template.Must(template.New("fallback").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <title>Tipsters Race</title>
    <meta http-equiv="refresh" content="0; url={{.}}" />
  </head>
</html>
`))

type TipstersHandler struct {
	tipsterService Service
	loc            *time.Location
	siteURL        string
}

func New(tipsterService Service, loc *time.Location, siteURL string) *TipstersHandler {
	return &TipstersHandler{
		tipsterService: tipsterService,
		loc:            loc,
		siteURL:        siteURL,
	}
}

// GetTipsters godoc
//
//	@Summary		Leaderboard
//	@Description	Tipsters ordered by GP balance, top 100
//	@Tags			Tipsters
//	@Produce		json
//	@Success		200	{object}	dto.TipstersResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tipsters [get]
func (h *TipstersHandler) GetTipsters(w http.ResponseWriter, r *http.Request) {
	list, err := h.tipsterService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	data := make([]dto.TipsterDTO, 0, len(list))
	for _, t := range list {
		data = append(data, dto.NewTipsterDTO(t))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TipstersResponseDTO{Success: true, Data: data})
}

// GetPublicBets godoc
//
//	@Summary		Tipster public slips
//	@Description	Slips of a tipster with the unlock price and whether the viewer holds them
//	@Tags			Tipsters
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Tipster id"
//	@Success		200	{object}	dto.PublicBetsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"Tipster not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tipsters/{id}/public-bets [get]
func (h *TipstersHandler) GetPublicBets(w http.ResponseWriter, r *http.Request) {
	tipsterID, ok := pathID(w, r, "Invalid tipster id")
	if !ok {
		return
	}

	page, err := h.tipsterService.PublicBets(r.Context(), tipsterID, auth.ViewerID(r.Context()))
	if err != nil {
		if errors.Is(err, tipsterservice.ErrTipsterNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPublicBetsResponseDTO(*page))
}

// GetPublicMatches godoc
//
//	@Summary		Slip legs for a viewer
//	@Description	Legs with teams, market and selection hidden until the viewer unlocks the slip
//	@Tags			Tipsters
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Slip id"
//	@Success		200	{object}	dto.PublicMatchesResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"Slip not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/{id}/public-matches [get]
func (h *TipstersHandler) GetPublicMatches(w http.ResponseWriter, r *http.Request) {
	betID, ok := pathID(w, r, "Invalid bet id")
	if !ok {
		return
	}

	slip, err := h.tipsterService.PublicMatches(r.Context(), betID, auth.ViewerID(r.Context()))
	if err != nil {
		if errors.Is(err, tipsterservice.ErrBetNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPublicMatchesResponseDTO(*slip, h.loc))
}

// ShareTipster godoc
//
//	@Summary		Share page
//	@Description	Open Graph page for a tipster profile that redirects browsers to the site
//	@Tags			Tipsters
//	@Produce		html
//	@Param			id	path	int	true	"Tipster id"
//	@Success		200
//	@Router			/api/share/tipster/{id} [get]
func (h *TipstersHandler) ShareTipster(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	tipsterID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err == nil {
		var page []byte
		page, err = h.tipsterService.SharePage(r.Context(), tipsterID)
		if err == nil {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(page)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_ = fallbackPage.Execute(w, h.siteURL)
}

func pathID(w http.ResponseWriter, r *http.Request, message string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}
