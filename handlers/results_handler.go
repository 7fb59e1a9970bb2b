package handlers

import (
	"net/http"

	"github.com/rpauls02/F1StatFinder-backend/services"
)

type ResultsHandler struct {
	resultsService services.ResultsService
}

func NewResultsHandler(rs services.ResultsService) *ResultsHandler {
	return &ResultsHandler{
		resultsService: rs,
	}
}

func (h *ResultsHandler) GetRaceResults(w http.ResponseWriter, r *http.Request) {
	year, round, ok := yearAndRound(w, r)
	if !ok {
		return
	}
	results, err := h.resultsService.RaceResults(r.Context(), year, round)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ResultsHandler) GetSprintResults(w http.ResponseWriter, r *http.Request) {
	year, round, ok := yearAndRound(w, r)
	if !ok {
		return
	}
	results, err := h.resultsService.SprintResults(r.Context(), year, round)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ResultsHandler) GetQualifyingResults(w http.ResponseWriter, r *http.Request) {
	year, round, ok := yearAndRound(w, r)
	if !ok {
		return
	}
	results, err := h.resultsService.QualifyingResults(r.Context(), year, round)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ResultsHandler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	teams, err := h.resultsService.LatestRaceTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func yearAndRound(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := getIntFromURL(r, "year")
	if err != nil {
		badRequestResponse(w, r, err)
		return 0, 0, false
	}
	round, err := getIntFromURL(r, "round")
	if err != nil {
		badRequestResponse(w, r, err)
		return 0, 0, false
	}
	return year, round, true
}
