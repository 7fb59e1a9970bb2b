package models

// DriverStats accumulates win/podium/pole/DNF counts for one driver
// across completed rounds of a season.
type DriverStats struct {
	ID      string `json:"id"`
	Wins    int    `json:"wins"`
	Podiums int    `json:"podiums"`
	Poles   int    `json:"poles"`
	DNFs    int    `json:"dnfs"`
}

// ConstructorStats accumulates win/podium/pole counts for one constructor
// across completed rounds of a season.
type ConstructorStats struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Wins        int    `json:"wins"`
	Podiums     int    `json:"podiums"`
	Poles       int    `json:"poles"`
}
