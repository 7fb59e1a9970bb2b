package models

// RaceResult is one classified row of the race or sprint results view.
type RaceResult struct {
	Position *int     `json:"position"`
	Driver   string   `json:"driver"`
	ID       string   `json:"id"`
	Team     string   `json:"team"`
	Laps     *int     `json:"laps"`
	Time     *string  `json:"time"`
	Grid     *int     `json:"grid"`
	Points   *float64 `json:"points"`
}

// RoundResults wraps the results of one round.
type RoundResults struct {
	Year    int          `json:"year"`
	Round   int          `json:"round"`
	Results []RaceResult `json:"results"`
}

// QualifyingResult is one row of the qualifying results view.
type QualifyingResult struct {
	Position int     `json:"position"`
	ID       string  `json:"id"`
	Driver   string  `json:"driver"`
	Q1Time   *string `json:"q1_time"`
	Q2Time   *string `json:"q2_time"`
	Q3Time   *string `json:"q3_time"`
}

// QualifyingResults wraps the qualifying results of one round.
type QualifyingResults struct {
	Year    int                `json:"year"`
	Round   int                `json:"round"`
	Results []QualifyingResult `json:"results"`
}

// TeamDrivers groups the drivers of one team from the latest completed race.
type TeamDrivers struct {
	Team    string   `json:"team"`
	ID      string   `json:"id"`
	Drivers []string `json:"drivers"`
}
