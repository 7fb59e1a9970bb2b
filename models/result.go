package models

import "strings"

// ResultRow is one entity's outcome in one session of one round, as
// delivered by the upstream result tables. Nullable columns are pointers.
type ResultRow struct {
	DriverID               string   `json:"driverId"`
	DriverCode             string   `json:"driverCode"`
	GivenName              string   `json:"givenName"`
	FamilyName             string   `json:"familyName"`
	DriverNationality      string   `json:"driverNationality"`
	ConstructorID          string   `json:"constructorId"`
	ConstructorName        string   `json:"constructorName"`
	ConstructorNationality string   `json:"constructorNationality"`
	Position               *int     `json:"position"`
	Points                 float64  `json:"points"`
	Grid                   *int     `json:"grid"`
	Laps                   *int     `json:"laps"`
	Status                 string   `json:"status"`
	RaceTime               *string  `json:"raceTime"`
	Q1                     *string  `json:"q1"`
	Q2                     *string  `json:"q2"`
	Q3                     *string  `json:"q3"`
}

// DriverName returns the driver's display name.
func (r ResultRow) DriverName() string {
	return strings.TrimSpace(r.GivenName + " " + r.FamilyName)
}

// ShortDriverName returns the "V. Verstappen" form used by standings views.
func (r ResultRow) ShortDriverName() string {
	if r.GivenName == "" {
		return r.FamilyName
	}
	return strings.TrimSpace(r.GivenName[:1] + ". " + r.FamilyName)
}
