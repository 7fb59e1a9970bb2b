package handlers

import (
	"net/http"

	"github.com/rpauls02/F1StatFinder-backend/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(ss services.StandingsService) *StandingsHandler {
	return &StandingsHandler{
		standingsService: ss,
	}
}

func (h *StandingsHandler) GetDriverStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standingsService.DriverStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, standings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingsHandler) GetConstructorStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standingsService.ConstructorStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, standings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingsHandler) GetDriverPoints(w http.ResponseWriter, r *http.Request) {
	year, err := getIntFromURL(r, "year")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	points, err := h.standingsService.DriverPoints(r.Context(), year)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, points, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingsHandler) GetConstructorPoints(w http.ResponseWriter, r *http.Request) {
	year, err := getIntFromURL(r, "year")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	points, err := h.standingsService.ConstructorPoints(r.Context(), year)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, points, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
