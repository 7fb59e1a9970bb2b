package handlers

import (
	"net/http"

	"github.com/rpauls02/F1StatFinder-backend/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(ss services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: ss,
	}
}

func (h *ScheduleHandler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.scheduleService.Seasons(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, seasons, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScheduleHandler) GetCircuits(w http.ResponseWriter, r *http.Request) {
	circuits, err := h.scheduleService.Circuits(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, circuits, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetRaceCalendar serves the current season's calendar.
func (h *ScheduleHandler) GetRaceCalendar(w http.ResponseWriter, r *http.Request) {
	h.raceCalendar(w, r, 0)
}

// GetRaceCalendarByYear serves the calendar of the season in the path.
func (h *ScheduleHandler) GetRaceCalendarByYear(w http.ResponseWriter, r *http.Request) {
	year, err := getIntFromURL(r, "year")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.raceCalendar(w, r, year)
}

func (h *ScheduleHandler) raceCalendar(w http.ResponseWriter, r *http.Request, year int) {
	calendar, err := h.scheduleService.RaceCalendar(r.Context(), year)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, calendar, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScheduleHandler) GetNextEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.scheduleService.NextEvent(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, event, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScheduleHandler) GetNextEventCountdown(w http.ResponseWriter, r *http.Request) {
	countdown, err := h.scheduleService.NextEventCountdown(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, countdown, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
