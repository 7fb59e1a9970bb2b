package handlers

import (
	"net/http"

	"github.com/rpauls02/F1StatFinder-backend/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(ss services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: ss,
	}
}

func (h *StatsHandler) GetDriverStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.DriverStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatsHandler) GetConstructorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.ConstructorStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
