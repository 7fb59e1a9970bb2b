package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpauls02/F1StatFinder-backend/models"
)

func newChampionsService(client *fakeClient, depth, winners int, now time.Time) *championsService {
	svc := NewChampionsService(client, depth, winners, testLogger()).(*championsService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestPreviousChampionsNewestFirst(t *testing.T) {
	now := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	client := newFakeClient()
	client.driverStandings[2024] = []models.StandingRow{
		{Position: 1, Points: 400, GivenName: "Max", FamilyName: "Verstappen", DriverNationality: "Dutch"},
	}
	client.constructorStandings[2024] = []models.StandingRow{
		{Position: 1, Points: 600, ConstructorName: "Red Bull", ConstructorNationality: "Austrian"},
	}
	client.driverStandings[2023] = []models.StandingRow{
		{Position: 1, Points: 575, GivenName: "Max", FamilyName: "Verstappen", DriverNationality: "Dutch"},
	}
	client.constructorStandings[2023] = []models.StandingRow{
		{Position: 1, Points: 860, ConstructorName: "Red Bull", ConstructorNationality: "Austrian"},
	}

	svc := newChampionsService(client, 3, 3, now)
	champions, err := svc.PreviousChampions(context.Background())
	require.NoError(t, err)
	require.Len(t, champions, 3)

	assert.Equal(t, 2024, champions[0].Year)
	assert.Equal(t, "M. Verstappen", champions[0].WDC)
	assert.Equal(t, "nl", champions[0].WDCNationality)
	assert.Equal(t, "Red Bull", champions[0].WCC)
	assert.InDelta(t, 600, champions[0].WCCPoints, 1e-9)

	assert.Equal(t, 2023, champions[1].Year)
	assert.Equal(t, "M. Verstappen", champions[1].WDC)

	// 2022 has no data; placeholders instead of an aborted request.
	assert.Equal(t, 2022, champions[2].Year)
	assert.Equal(t, "N/A", champions[2].WDC)
	assert.Equal(t, "N/A", champions[2].WCC)
	assert.Equal(t, "N/A", champions[2].WDCNationality)
}

func TestRecentWinnersMostRecentFirstCapped(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	client := newFakeClient()
	rounds := []models.Round{
		conventionalRound(1, "Bahrain Grand Prix", "Sakhir", "Bahrain", now.Add(-90*24*time.Hour)),
		conventionalRound(2, "Saudi Arabian Grand Prix", "Jeddah", "Saudi Arabia", now.Add(-60*24*time.Hour)),
		conventionalRound(3, "Australian Grand Prix", "Melbourne", "Australia", now.Add(-30*24*time.Hour)),
		conventionalRound(4, "Japanese Grand Prix", "Suzuka", "Japan", now.Add(30*24*time.Hour)),
	}
	rounds[2].CircuitName = "Albert Park Grand Prix Circuit"
	client.schedule[2024] = rounds
	for round := 1; round <= 3; round++ {
		client.race[rk(2024, round)] = []models.ResultRow{
			driverRow("lan", "Lando", "Norris", "McLaren", 2, 18),
			driverRow("max", "Max", "Verstappen", "Red Bull", 1, 25),
		}
	}

	svc := newChampionsService(client, 3, 2, now)
	winners, err := svc.RecentWinners(context.Background())
	require.NoError(t, err)
	require.Len(t, winners, 2)

	// Round 4 is in the future, round 1 is beyond the cap.
	assert.Equal(t, 3, winners[0].Round)
	assert.Equal(t, "Albert Park Grand Prix Circuit", winners[0].Circuit)
	assert.Equal(t, "M. Verstappen", winners[0].Winner)
	assert.Equal(t, "Red Bull", winners[0].Constructor)
	assert.Equal(t, "au", winners[0].Country)
	assert.Equal(t, 2, winners[1].Round)
}

func TestRecentWinnersNoCompletedRaces(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	client := newFakeClient()
	client.schedule[2024] = []models.Round{
		conventionalRound(1, "Bahrain Grand Prix", "Sakhir", "Bahrain", now.Add(45*24*time.Hour)),
	}

	svc := newChampionsService(client, 3, 3, now)
	_, err := svc.RecentWinners(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}
