package services

import (
	"context"
	"fmt"

	"github.com/rpauls02/F1StatFinder-backend/models"
	"github.com/rpauls02/F1StatFinder-backend/upstream"
)

// fakeClient is an in-memory upstream.Client. Missing entries behave as
// empty upstream tables; errors are injected per round.
type fakeClient struct {
	seasons  []models.SeasonRef
	circuits []models.Circuit

	schedule    map[int][]models.Round
	scheduleErr error

	race      map[string][]models.ResultRow
	raceErr   map[string]error
	sprint    map[string][]models.ResultRow
	sprintErr map[string]error
	quali     map[string][]models.ResultRow

	driverStandings      map[int][]models.StandingRow
	constructorStandings map[int][]models.StandingRow

	calls map[string]int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		schedule:             make(map[int][]models.Round),
		race:                 make(map[string][]models.ResultRow),
		raceErr:              make(map[string]error),
		sprint:               make(map[string][]models.ResultRow),
		sprintErr:            make(map[string]error),
		quali:                make(map[string][]models.ResultRow),
		driverStandings:      make(map[int][]models.StandingRow),
		constructorStandings: make(map[int][]models.StandingRow),
		calls:                make(map[string]int),
	}
}

func rk(year, round int) string { return fmt.Sprintf("%d/%d", year, round) }

func (f *fakeClient) count(op string) { f.calls[op]++ }

func (f *fakeClient) Seasons(_ context.Context, _ int) ([]models.SeasonRef, error) {
	f.count("seasons")
	if len(f.seasons) == 0 {
		return nil, upstream.ErrNoData
	}
	return f.seasons, nil
}

func (f *fakeClient) Circuits(_ context.Context, _ int) ([]models.Circuit, error) {
	f.count("circuits")
	if len(f.circuits) == 0 {
		return nil, upstream.ErrNoData
	}
	return f.circuits, nil
}

func (f *fakeClient) RaceSchedule(_ context.Context, year int) ([]models.Round, error) {
	f.count("race_schedule")
	if f.scheduleErr != nil {
		return nil, f.scheduleErr
	}
	rounds, ok := f.schedule[year]
	if !ok || len(rounds) == 0 {
		return nil, upstream.ErrNoData
	}
	return rounds, nil
}

func (f *fakeClient) RaceResults(_ context.Context, year, round int) ([]models.ResultRow, error) {
	f.count("race_results")
	if err := f.raceErr[rk(year, round)]; err != nil {
		return nil, err
	}
	rows, ok := f.race[rk(year, round)]
	if !ok || len(rows) == 0 {
		return nil, upstream.ErrNoData
	}
	return rows, nil
}

func (f *fakeClient) SprintResults(_ context.Context, year, round int) ([]models.ResultRow, error) {
	f.count("sprint_results")
	if err := f.sprintErr[rk(year, round)]; err != nil {
		return nil, err
	}
	rows, ok := f.sprint[rk(year, round)]
	if !ok || len(rows) == 0 {
		return nil, upstream.ErrNoData
	}
	return rows, nil
}

func (f *fakeClient) QualifyingResults(_ context.Context, year, round int) ([]models.ResultRow, error) {
	f.count("qualifying_results")
	rows, ok := f.quali[rk(year, round)]
	if !ok || len(rows) == 0 {
		return nil, upstream.ErrNoData
	}
	return rows, nil
}

func (f *fakeClient) DriverStandings(_ context.Context, year int) ([]models.StandingRow, error) {
	f.count("driver_standings")
	rows, ok := f.driverStandings[year]
	if !ok || len(rows) == 0 {
		return nil, upstream.ErrNoData
	}
	return rows, nil
}

func (f *fakeClient) ConstructorStandings(_ context.Context, year int) ([]models.StandingRow, error) {
	f.count("constructor_standings")
	rows, ok := f.constructorStandings[year]
	if !ok || len(rows) == 0 {
		return nil, upstream.ErrNoData
	}
	return rows, nil
}
