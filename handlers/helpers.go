package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rpauls02/F1StatFinder-backend/services"
	"github.com/rpauls02/F1StatFinder-backend/upstream"
)

type jsonResponse map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	if err != nil {
		return err
	}

	return nil
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.Error("failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	// Логируем реальную ошибку; клиенту уходит общий текст.
	slog.Error("internal server error",
		slog.String("path", r.URL.Path), slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusNotFound, message)
}

func unavailableResponse(w http.ResponseWriter, r *http.Request) {
	message := "the statistics provider is currently unavailable"
	errorResponse(w, r, http.StatusServiceUnavailable, message)
}

// mapServiceErrorToHTTP преобразует ошибки сервисного слоя в HTTP-ответы.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNoData),
		errors.Is(err, services.ErrNoSchedule),
		errors.Is(err, services.ErrNoUpcomingRace),
		errors.Is(err, services.ErrNoCompletedRaces),
		errors.Is(err, services.ErrNoStandings),
		errors.Is(err, services.ErrNoResults):
		notFoundResponse(w, r, err.Error())

	case errors.Is(err, upstream.ErrUnavailable):
		unavailableResponse(w, r)

	default:
		serverErrorResponse(w, r, err)
	}
}

func getIntFromURL(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid %s parameter: %q", param, raw)
	}
	return value, nil
}
