package models

// Champion pairs the drivers' and constructors' champions of one season.
// Missing data is represented by the "N/A" placeholders, never by an
// omitted season.
type Champion struct {
	Year           int     `json:"year"`
	WDC            string  `json:"wdc"`
	WDCNationality string  `json:"wdcNationality"`
	WDCPoints      float64 `json:"wdcPoints"`
	WCC            string  `json:"wcc"`
	WCCNationality string  `json:"wccNationality"`
	WCCPoints      float64 `json:"wccPoints"`
}

// RaceWinner describes the winner of one completed race.
type RaceWinner struct {
	Year        int     `json:"year"`
	Round       int     `json:"round"`
	RaceName    string  `json:"raceName"`
	Circuit     string  `json:"circuit"`
	Date        *string `json:"date"`
	Winner      string  `json:"winner"`
	Nationality string  `json:"nationality"`
	Constructor string  `json:"constructor"`
	Country     string  `json:"country"`
}
