package admin

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/dto"
	"github.com/GlebRadaev/tipsters/pkg/utils"
)

type Service interface {
	FinancialStats(ctx context.Context) (*domain.FinancialStats, error)
}

type AdminHandler struct {
	reportService Service
}

func New(reportService Service) *AdminHandler {
	return &AdminHandler{reportService: reportService}
}

// GetFinancialStats godoc
//
//	@Summary		Financial report
//	@Description	Platform totals, per-advisor breakdown and the last 100 transactions
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.FinancialStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/financial-stats [get]
func (h *AdminHandler) GetFinancialStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.FinancialStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFinancialStatsResponseDTO(*stats))
}
