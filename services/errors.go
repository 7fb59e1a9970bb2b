package services

import "errors"

// Общие ошибки сервисного слоя, используемые в маппинге HTTP.
var (
	// No usable data after all attempts (404).
	ErrNoData           = errors.New("requested data not found")
	ErrNoSchedule       = errors.New("no event schedule available")
	ErrNoUpcomingRace   = errors.New("no upcoming race found")
	ErrNoCompletedRaces = errors.New("no completed races yet")
	ErrNoStandings      = errors.New("no standings data available")
	ErrNoResults        = errors.New("no results available")
)
