package models

import "time"

// EventFormat mirrors the upstream schedule vocabulary.
type EventFormat string

const (
	FormatConventional     EventFormat = "conventional"
	FormatSprint           EventFormat = "sprint"
	FormatSprintShootout   EventFormat = "sprint_shootout"
	FormatSprintQualifying EventFormat = "sprint_qualifying"
)

// HasSprint reports whether the round's weekend includes a sprint session.
func (f EventFormat) HasSprint() bool {
	return f == FormatSprint || f == FormatSprintShootout || f == FormatSprintQualifying
}

// Session is one scheduled session of a race weekend (UTC).
type Session struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// Round is one race weekend within a season. Sessions are chronological;
// the main race is always the last entry.
type Round struct {
	Number      int         `json:"round"`
	Name        string      `json:"eventName"`
	Location    string      `json:"location"`
	Country     string      `json:"country"`
	CircuitName string      `json:"circuitName"`
	Format      EventFormat `json:"eventFormat"`
	Sessions    []Session   `json:"sessions"`
}

// RaceSession returns the main race session, if scheduled.
func (r Round) RaceSession() (Session, bool) {
	if len(r.Sessions) == 0 {
		return Session{}, false
	}
	return r.Sessions[len(r.Sessions)-1], true
}

// SeasonRef identifies a season in the upstream archive.
type SeasonRef struct {
	Year int    `json:"year"`
	URL  string `json:"url"`
}

// Circuit describes one track in the upstream archive.
type Circuit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Country  string `json:"country"`
	URL      string `json:"url"`
}
