package handlers

import (
	"net/http"

	"github.com/rpauls02/F1StatFinder-backend/services"
)

type ChampionsHandler struct {
	championsService services.ChampionsService
}

func NewChampionsHandler(cs services.ChampionsService) *ChampionsHandler {
	return &ChampionsHandler{
		championsService: cs,
	}
}

func (h *ChampionsHandler) GetPreviousChampions(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championsService.PreviousChampions(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, champions, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionsHandler) GetRecentWinners(w http.ResponseWriter, r *http.Request) {
	winners, err := h.championsService.RecentWinners(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, winners, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
