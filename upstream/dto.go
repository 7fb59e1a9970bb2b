package upstream

// Wire types for the Ergast-compatible API. Only the consumed subset of
// the schema is declared.

import (
	"strconv"
	"time"

	"github.com/rpauls02/F1StatFinder-backend/models"
)

type ergastResponse struct {
	MRData struct {
		SeasonTable    *seasonTableDTO    `json:"SeasonTable"`
		CircuitTable   *circuitTableDTO   `json:"CircuitTable"`
		RaceTable      *raceTableDTO      `json:"RaceTable"`
		StandingsTable *standingsTableDTO `json:"StandingsTable"`
	} `json:"MRData"`
}

type seasonTableDTO struct {
	Seasons []struct {
		Season string `json:"season"`
		URL    string `json:"url"`
	} `json:"Seasons"`
}

type circuitTableDTO struct {
	Circuits []circuitDTO `json:"Circuits"`
}

type circuitDTO struct {
	CircuitID   string      `json:"circuitId"`
	CircuitName string      `json:"circuitName"`
	URL         string      `json:"url"`
	Location    locationDTO `json:"Location"`
}

type locationDTO struct {
	Locality string `json:"locality"`
	Country  string `json:"country"`
}

type raceTableDTO struct {
	Season string    `json:"season"`
	Races  []raceDTO `json:"Races"`
}

type raceDTO struct {
	Season   string     `json:"season"`
	Round    string     `json:"round"`
	RaceName string     `json:"raceName"`
	Circuit  circuitDTO `json:"Circuit"`
	Date     string     `json:"date"`
	Time     string     `json:"time"`

	FirstPractice    *sessionDTO `json:"FirstPractice"`
	SecondPractice   *sessionDTO `json:"SecondPractice"`
	ThirdPractice    *sessionDTO `json:"ThirdPractice"`
	Qualifying       *sessionDTO `json:"Qualifying"`
	Sprint           *sessionDTO `json:"Sprint"`
	SprintQualifying *sessionDTO `json:"SprintQualifying"`
	SprintShootout   *sessionDTO `json:"SprintShootout"`

	Results           []resultDTO     `json:"Results"`
	SprintResults     []resultDTO     `json:"SprintResults"`
	QualifyingResults []qualifyingDTO `json:"QualifyingResults"`
}

type sessionDTO struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type resultDTO struct {
	Position    string         `json:"position"`
	Points      string         `json:"points"`
	Grid        string         `json:"grid"`
	Laps        string         `json:"laps"`
	Status      string         `json:"status"`
	Driver      driverDTO      `json:"Driver"`
	Constructor constructorDTO `json:"Constructor"`
	Time        *struct {
		Time string `json:"time"`
	} `json:"Time"`
}

type qualifyingDTO struct {
	Position    string         `json:"position"`
	Driver      driverDTO      `json:"Driver"`
	Constructor constructorDTO `json:"Constructor"`
	Q1          string         `json:"Q1"`
	Q2          string         `json:"Q2"`
	Q3          string         `json:"Q3"`
}

type driverDTO struct {
	DriverID    string `json:"driverId"`
	Code        string `json:"code"`
	GivenName   string `json:"givenName"`
	FamilyName  string `json:"familyName"`
	Nationality string `json:"nationality"`
}

type constructorDTO struct {
	ConstructorID string `json:"constructorId"`
	Name          string `json:"name"`
	Nationality   string `json:"nationality"`
}

type standingsTableDTO struct {
	StandingsLists []standingsListDTO `json:"StandingsLists"`
}

type standingsListDTO struct {
	DriverStandings      []driverStandingDTO      `json:"DriverStandings"`
	ConstructorStandings []constructorStandingDTO `json:"ConstructorStandings"`
}

type driverStandingDTO struct {
	Position     string           `json:"position"`
	Points       string           `json:"points"`
	Wins         string           `json:"wins"`
	Driver       driverDTO        `json:"Driver"`
	Constructors []constructorDTO `json:"Constructors"`
}

type constructorStandingDTO struct {
	Position    string         `json:"position"`
	Points      string         `json:"points"`
	Wins        string         `json:"wins"`
	Constructor constructorDTO `json:"Constructor"`
}

// eventFormat derives the weekend format from which sprint sessions the
// schedule advertises.
func (r raceDTO) eventFormat() models.EventFormat {
	switch {
	case r.SprintQualifying != nil:
		return models.FormatSprintQualifying
	case r.SprintShootout != nil:
		return models.FormatSprintShootout
	case r.Sprint != nil:
		return models.FormatSprint
	default:
		return models.FormatConventional
	}
}

// sessions builds the chronological session list of the weekend. The main
// race is appended last regardless of gaps in the practice data.
func (r raceDTO) sessions() []models.Session {
	type candidate struct {
		name string
		dto  *sessionDTO
	}
	candidates := []candidate{
		{"Practice 1", r.FirstPractice},
		{"Practice 2", r.SecondPractice},
		{"Practice 3", r.ThirdPractice},
		{"Sprint Qualifying", r.SprintQualifying},
		{"Sprint Shootout", r.SprintShootout},
		{"Sprint", r.Sprint},
		{"Qualifying", r.Qualifying},
	}

	sessions := make([]models.Session, 0, 5)
	for _, c := range candidates {
		if c.dto == nil {
			continue
		}
		if ts, ok := parseErgastTime(c.dto.Date, c.dto.Time); ok {
			sessions = append(sessions, models.Session{Name: c.name, Date: ts})
		}
	}
	sortSessions(sessions)

	if race, ok := parseErgastTime(r.Date, r.Time); ok {
		sessions = append(sessions, models.Session{Name: "Race", Date: race})
	}
	return sessions
}

func sortSessions(sessions []models.Session) {
	for i := 1; i < len(sessions); i++ {
		for j := i; j > 0 && sessions[j].Date.Before(sessions[j-1].Date); j-- {
			sessions[j], sessions[j-1] = sessions[j-1], sessions[j]
		}
	}
}

func (dto resultDTO) toRow() models.ResultRow {
	row := models.ResultRow{
		DriverID:               dto.Driver.DriverID,
		DriverCode:             dto.Driver.Code,
		GivenName:              dto.Driver.GivenName,
		FamilyName:             dto.Driver.FamilyName,
		DriverNationality:      dto.Driver.Nationality,
		ConstructorID:          dto.Constructor.ConstructorID,
		ConstructorName:        dto.Constructor.Name,
		ConstructorNationality: dto.Constructor.Nationality,
		Points:                 atofOrZero(dto.Points),
		Status:                 dto.Status,
		Position:               atoiPtr(dto.Position),
		Grid:                   atoiPtr(dto.Grid),
		Laps:                   atoiPtr(dto.Laps),
	}
	if dto.Time != nil && dto.Time.Time != "" {
		t := dto.Time.Time
		row.RaceTime = &t
	}
	return row
}

func (dto qualifyingDTO) toRow() models.ResultRow {
	row := models.ResultRow{
		DriverID:               dto.Driver.DriverID,
		DriverCode:             dto.Driver.Code,
		GivenName:              dto.Driver.GivenName,
		FamilyName:             dto.Driver.FamilyName,
		DriverNationality:      dto.Driver.Nationality,
		ConstructorID:          dto.Constructor.ConstructorID,
		ConstructorName:        dto.Constructor.Name,
		ConstructorNationality: dto.Constructor.Nationality,
		Position:               atoiPtr(dto.Position),
	}
	row.Q1 = strPtr(dto.Q1)
	row.Q2 = strPtr(dto.Q2)
	row.Q3 = strPtr(dto.Q3)
	return row
}

func parseErgastTime(date, clock string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	if clock == "" {
		ts, err := time.Parse("2006-01-02", date)
		return ts, err == nil
	}
	ts, err := time.Parse(time.RFC3339, date+"T"+clock)
	if err != nil {
		// Some archives omit the trailing Z.
		ts, err = time.Parse("2006-01-02T15:04:05", date+"T"+clock)
	}
	return ts.UTC(), err == nil
}

func atoiOrZero(raw string) int {
	v, _ := strconv.Atoi(raw)
	return v
}

func atofOrZero(raw string) float64 {
	v, _ := strconv.ParseFloat(raw, 64)
	return v
}

func atoiPtr(raw string) *int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func strPtr(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
