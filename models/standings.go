package models

import "strings"

// StandingRow is one row of an upstream championship standings table.
type StandingRow struct {
	Position               int     `json:"position"`
	Points                 float64 `json:"points"`
	Wins                   int     `json:"wins"`
	DriverID               string  `json:"driverId"`
	GivenName              string  `json:"givenName"`
	FamilyName             string  `json:"familyName"`
	DriverNationality      string  `json:"driverNationality"`
	ConstructorID          string  `json:"constructorId"`
	ConstructorName        string  `json:"constructorName"`
	ConstructorNationality string  `json:"constructorNationality"`
}

// ShortDriverName returns the "M. Verstappen" display form.
func (s StandingRow) ShortDriverName() string {
	if s.GivenName == "" {
		return s.FamilyName
	}
	return strings.TrimSpace(s.GivenName[:1] + ". " + s.FamilyName)
}

// RaceScore is one round's contribution to a season points tally.
type RaceScore struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Country  string  `json:"country"`
	Points   float64 `json:"points"`
	Position int     `json:"position"`
}

// SeasonPoints accumulates one entity's points across a season.
// Recomputed per request, never persisted.
type SeasonPoints struct {
	ID       string
	Name     string
	Team     string
	Total    float64
	Races    []RaceScore
	Position int
}

// DriverSeasonPoints is the response shape of the driver points view.
type DriverSeasonPoints struct {
	DriverID    string      `json:"driverId"`
	Name        string      `json:"name"`
	Constructor string      `json:"constructor"`
	Total       float64     `json:"total"`
	Races       []RaceScore `json:"races"`
	Position    int         `json:"position"`
}

// ConstructorSeasonPoints is the response shape of the constructor points view.
type ConstructorSeasonPoints struct {
	ConstructorID string      `json:"constructorId"`
	Constructor   string      `json:"constructor"`
	Total         float64     `json:"total"`
	Races         []RaceScore `json:"races"`
	Position      int         `json:"position"`
}

// DriverStanding is the response shape of the driver standings view.
type DriverStanding struct {
	ID          string  `json:"id"`
	Position    int     `json:"position"`
	Nationality string  `json:"nationality"`
	Name        string  `json:"name"`
	Constructor string  `json:"constructor"`
	Points      float64 `json:"points"`
}

// ConstructorStanding is the response shape of the constructor standings view.
type ConstructorStanding struct {
	ID          string  `json:"id"`
	Position    int     `json:"position"`
	Name        string  `json:"name"`
	Points      float64 `json:"points"`
	Nationality string  `json:"nationality"`
}
