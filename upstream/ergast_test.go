package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpauls02/F1StatFinder-backend/models"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRaceScheduleParsesSessionsAndFormat(t *testing.T) {
	schedule := `{
		"MRData": {
			"RaceTable": {
				"season": "2024",
				"Races": [
					{
						"season": "2024", "round": "5", "raceName": "Chinese Grand Prix",
						"Circuit": {
							"circuitId": "shanghai", "circuitName": "Shanghai International Circuit",
							"Location": {"locality": "Shanghai", "country": "China"}
						},
						"date": "2024-04-21", "time": "07:00:00Z",
						"FirstPractice": {"date": "2024-04-19", "time": "03:30:00Z"},
						"SprintQualifying": {"date": "2024-04-19", "time": "07:30:00Z"},
						"Sprint": {"date": "2024-04-20", "time": "03:00:00Z"},
						"Qualifying": {"date": "2024-04-20", "time": "07:00:00Z"}
					},
					{
						"season": "2024", "round": "1", "raceName": "Bahrain Grand Prix",
						"Circuit": {
							"circuitId": "bahrain", "circuitName": "Bahrain International Circuit",
							"Location": {"locality": "Sakhir", "country": "Bahrain"}
						},
						"date": "2024-03-02", "time": "15:00:00Z",
						"FirstPractice": {"date": "2024-02-29", "time": "11:30:00Z"},
						"Qualifying": {"date": "2024-03-01", "time": "16:00:00Z"}
					}
				]
			}
		}
	}`
	server := newTestServer(t, map[string]string{"/2024.json": schedule})
	client := NewErgastClient(server.URL, 5*time.Second)

	rounds, err := client.RaceSchedule(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, rounds, 2)

	// Rounds come back ordered by round number regardless of payload order.
	bahrain := rounds[0]
	assert.Equal(t, 1, bahrain.Number)
	assert.Equal(t, models.FormatConventional, bahrain.Format)
	assert.Equal(t, "Sakhir", bahrain.Location)
	assert.Equal(t, "Bahrain International Circuit", bahrain.CircuitName)

	shanghai := rounds[1]
	assert.Equal(t, 5, shanghai.Number)
	assert.Equal(t, models.FormatSprintQualifying, shanghai.Format)
	assert.True(t, shanghai.Format.HasSprint())

	race, ok := shanghai.RaceSession()
	require.True(t, ok)
	assert.Equal(t, "Race", race.Name)
	assert.Equal(t, time.Date(2024, 4, 21, 7, 0, 0, 0, time.UTC), race.Date)

	// Sessions are chronological with the race last.
	for i := 1; i < len(shanghai.Sessions); i++ {
		assert.False(t, shanghai.Sessions[i].Date.Before(shanghai.Sessions[i-1].Date))
	}
}

func TestRaceResultsParsesRows(t *testing.T) {
	results := `{
		"MRData": {
			"RaceTable": {
				"Races": [
					{
						"season": "2024", "round": "1", "raceName": "Bahrain Grand Prix",
						"Results": [
							{
								"position": "1", "points": "25", "grid": "1", "laps": "57", "status": "Finished",
								"Driver": {"driverId": "max_verstappen", "code": "VER", "givenName": "Max", "familyName": "Verstappen", "nationality": "Dutch"},
								"Constructor": {"constructorId": "red_bull", "name": "Red Bull", "nationality": "Austrian"},
								"Time": {"time": "1:31:44.742"}
							},
							{
								"position": "20", "points": "0", "grid": "15", "laps": "12", "status": "Gearbox",
								"Driver": {"driverId": "sargeant", "code": "SAR", "givenName": "Logan", "familyName": "Sargeant", "nationality": "American"},
								"Constructor": {"constructorId": "williams", "name": "Williams", "nationality": "British"}
							}
						]
					}
				]
			}
		}
	}`
	server := newTestServer(t, map[string]string{"/2024/1/results.json": results})
	client := NewErgastClient(server.URL, 5*time.Second)

	rows, err := client.RaceResults(context.Background(), 2024, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	winner := rows[0]
	require.NotNil(t, winner.Position)
	assert.Equal(t, 1, *winner.Position)
	assert.InDelta(t, 25, winner.Points, 1e-9)
	assert.Equal(t, "max_verstappen", winner.DriverID)
	assert.Equal(t, "VER", winner.DriverCode)
	assert.Equal(t, "Red Bull", winner.ConstructorName)
	require.NotNil(t, winner.RaceTime)
	assert.Equal(t, "1:31:44.742", *winner.RaceTime)

	assert.Nil(t, rows[1].RaceTime)
	assert.Equal(t, "Gearbox", rows[1].Status)
}

func TestQualifyingResultsParsesSegments(t *testing.T) {
	quali := `{
		"MRData": {
			"RaceTable": {
				"Races": [
					{
						"season": "2024", "round": "1",
						"QualifyingResults": [
							{
								"position": "1",
								"Driver": {"driverId": "max_verstappen", "code": "VER", "givenName": "Max", "familyName": "Verstappen"},
								"Constructor": {"constructorId": "red_bull", "name": "Red Bull"},
								"Q1": "1:30.031", "Q2": "1:29.374", "Q3": "1:29.179"
							},
							{
								"position": "16",
								"Driver": {"driverId": "bottas", "code": "BOT", "givenName": "Valtteri", "familyName": "Bottas"},
								"Constructor": {"constructorId": "sauber", "name": "Sauber"},
								"Q1": "1:30.756"
							}
						]
					}
				]
			}
		}
	}`
	server := newTestServer(t, map[string]string{"/2024/1/qualifying.json": quali})
	client := NewErgastClient(server.URL, 5*time.Second)

	rows, err := client.QualifyingResults(context.Background(), 2024, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Q3)
	assert.Equal(t, "1:29.179", *rows[0].Q3)
	assert.Nil(t, rows[1].Q2)
	assert.Nil(t, rows[1].Q3)
}

func TestDriverStandingsParsesRows(t *testing.T) {
	standings := `{
		"MRData": {
			"StandingsTable": {
				"StandingsLists": [
					{
						"DriverStandings": [
							{
								"position": "1", "points": "437.5", "wins": "9",
								"Driver": {"driverId": "max_verstappen", "givenName": "Max", "familyName": "Verstappen", "nationality": "Dutch"},
								"Constructors": [{"constructorId": "red_bull", "name": "Red Bull", "nationality": "Austrian"}]
							}
						]
					}
				]
			}
		}
	}`
	server := newTestServer(t, map[string]string{"/2024/driverStandings.json": standings})
	client := NewErgastClient(server.URL, 5*time.Second)

	rows, err := client.DriverStandings(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Position)
	assert.InDelta(t, 437.5, rows[0].Points, 1e-9)
	assert.Equal(t, 9, rows[0].Wins)
	assert.Equal(t, "Red Bull", rows[0].ConstructorName)
}

func TestEmptyTableIsNoData(t *testing.T) {
	empty := `{"MRData": {"RaceTable": {"Races": []}}}`
	server := newTestServer(t, map[string]string{"/2099.json": empty})
	client := NewErgastClient(server.URL, 5*time.Second)

	_, err := client.RaceSchedule(context.Background(), 2099)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestUpstreamErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)
	client := NewErgastClient(server.URL, 5*time.Second)

	_, err := client.RaceSchedule(context.Background(), 2024)
	assert.ErrorIs(t, err, ErrUnavailable)
}
