package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpauls02/F1StatFinder-backend/models"
)

func newResultsService(client *fakeClient, now time.Time) *resultsService {
	svc := NewResultsService(client, testLogger()).(*resultsService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestRaceResultsView(t *testing.T) {
	client := newFakeClient()
	raceTime := "1:31:44.742"
	row := driverRow("max", "Max", "Verstappen", "Red Bull", 1, 25)
	row.DriverCode = "VER"
	row.Grid = intPtr(1)
	row.Laps = intPtr(57)
	row.RaceTime = &raceTime
	retired := driverRow("per", "Sergio", "Perez", "Red Bull", 19, 0)
	retired.DriverCode = "PER"
	retired.Position = nil
	client.race[rk(2024, 1)] = []models.ResultRow{row, retired}

	svc := newResultsService(client, time.Now().UTC())
	results, err := svc.RaceResults(context.Background(), 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, 2024, results.Year)
	assert.Equal(t, 1, results.Round)
	require.Len(t, results.Results, 2)

	first := results.Results[0]
	require.NotNil(t, first.Position)
	assert.Equal(t, 1, *first.Position)
	assert.Equal(t, "VER", first.ID)
	assert.Equal(t, "Max Verstappen", first.Driver)
	require.NotNil(t, first.Time)
	assert.Equal(t, raceTime, *first.Time)
	require.NotNil(t, first.Points)
	assert.InDelta(t, 25, *first.Points, 1e-9)

	// Unclassified cars keep a null position.
	assert.Nil(t, results.Results[1].Position)
}

func TestRaceResultsNotFound(t *testing.T) {
	svc := newResultsService(newFakeClient(), time.Now().UTC())
	_, err := svc.RaceResults(context.Background(), 2024, 99)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestQualifyingResultsView(t *testing.T) {
	client := newFakeClient()
	q1, q2, q3 := "1:29.179", "1:28.740", "1:28.265"
	row := driverRow("max", "Max", "Verstappen", "Red Bull", 1, 0)
	row.DriverCode = "VER"
	row.Q1 = &q1
	row.Q2 = &q2
	row.Q3 = &q3
	eliminated := driverRow("bot", "Valtteri", "Bottas", "Sauber", 16, 0)
	eliminated.DriverCode = "BOT"
	eliminated.Q1 = &q1
	client.quali[rk(2024, 1)] = []models.ResultRow{row, eliminated}

	svc := newResultsService(client, time.Now().UTC())
	results, err := svc.QualifyingResults(context.Background(), 2024, 1)
	require.NoError(t, err)
	require.Len(t, results.Results, 2)

	assert.Equal(t, 1, results.Results[0].Position)
	assert.Equal(t, "VER", results.Results[0].ID)
	require.NotNil(t, results.Results[0].Q3Time)
	assert.Equal(t, q3, *results.Results[0].Q3Time)
	assert.Nil(t, results.Results[1].Q2Time)
	assert.Nil(t, results.Results[1].Q3Time)
}

func TestLatestRaceTeamsGroupsByConstructor(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	client := newFakeClient()
	client.schedule[2024] = []models.Round{
		conventionalRound(1, "Bahrain Grand Prix", "Sakhir", "Bahrain", now.Add(-60*24*time.Hour)),
		conventionalRound(2, "Saudi Arabian Grand Prix", "Jeddah", "Saudi Arabia", now.Add(-30*24*time.Hour)),
	}
	client.race[rk(2024, 2)] = []models.ResultRow{
		driverRow("max", "Max", "Verstappen", "Red Bull", 1, 25),
		driverRow("lec", "Charles", "Leclerc", "Ferrari", 2, 18),
		driverRow("per", "Sergio", "Perez", "Red Bull", 3, 15),
	}

	svc := newResultsService(client, now)
	teams, err := svc.LatestRaceTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Red Bull", teams[0].Team)
	assert.Equal(t, []string{"Max Verstappen", "Sergio Perez"}, teams[0].Drivers)
	assert.Equal(t, "Ferrari", teams[1].Team)
}

func TestLatestRaceTeamsWinterBreakFallback(t *testing.T) {
	// January: no current-season races yet, the previous season serves.
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	client := newFakeClient()
	client.schedule[2024] = []models.Round{
		conventionalRound(24, "Abu Dhabi Grand Prix", "Yas Island", "United Arab Emirates", time.Date(2024, 12, 8, 13, 0, 0, 0, time.UTC)),
	}
	client.race[rk(2024, 24)] = []models.ResultRow{
		driverRow("lan", "Lando", "Norris", "McLaren", 1, 25),
	}

	svc := newResultsService(client, now)
	teams, err := svc.LatestRaceTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "McLaren", teams[0].Team)
}
