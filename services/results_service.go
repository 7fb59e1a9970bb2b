package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rpauls02/F1StatFinder-backend/models"
	"github.com/rpauls02/F1StatFinder-backend/upstream"
)

type ResultsService interface {
	RaceResults(ctx context.Context, year, round int) (*models.RoundResults, error)
	SprintResults(ctx context.Context, year, round int) (*models.RoundResults, error)
	QualifyingResults(ctx context.Context, year, round int) (*models.QualifyingResults, error)

	// LatestRaceTeams groups the drivers of the latest completed race by
	// team, falling back to the previous season during the winter break.
	LatestRaceTeams(ctx context.Context) ([]models.TeamDrivers, error)
}

type resultsService struct {
	client upstream.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewResultsService(client upstream.Client, logger *slog.Logger) ResultsService {
	return &resultsService{
		client: client,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *resultsService) RaceResults(ctx context.Context, year, round int) (*models.RoundResults, error) {
	rows, err := s.client.RaceResults(ctx, year, round)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoResults
		}
		return nil, err
	}
	return &models.RoundResults{Year: year, Round: round, Results: resultRows(rows)}, nil
}

func (s *resultsService) SprintResults(ctx context.Context, year, round int) (*models.RoundResults, error) {
	rows, err := s.client.SprintResults(ctx, year, round)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoResults
		}
		return nil, err
	}
	return &models.RoundResults{Year: year, Round: round, Results: resultRows(rows)}, nil
}

func (s *resultsService) QualifyingResults(ctx context.Context, year, round int) (*models.QualifyingResults, error) {
	rows, err := s.client.QualifyingResults(ctx, year, round)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoResults
		}
		return nil, err
	}

	results := make([]models.QualifyingResult, 0, len(rows))
	for _, row := range rows {
		position := 0
		if row.Position != nil {
			position = *row.Position
		}
		results = append(results, models.QualifyingResult{
			Position: position,
			ID:       row.DriverCode,
			Driver:   row.DriverName(),
			Q1Time:   row.Q1,
			Q2Time:   row.Q2,
			Q3Time:   row.Q3,
		})
	}
	return &models.QualifyingResults{Year: year, Round: round, Results: results}, nil
}

func (s *resultsService) LatestRaceTeams(ctx context.Context) ([]models.TeamDrivers, error) {
	year := s.now().Year()
	round, err := s.latestCompletedRound(ctx, year)
	if err != nil {
		// Winter break: the current season may not have raced yet.
		year--
		round, err = s.latestCompletedRound(ctx, year)
		if err != nil {
			return nil, err
		}
	}

	rows, err := s.client.RaceResults(ctx, year, round)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoResults
		}
		return nil, err
	}

	teams := make(map[string]*models.TeamDrivers)
	var order []string
	for _, row := range rows {
		if row.ConstructorID == "" || row.DriverName() == "" {
			continue
		}
		team, ok := teams[row.ConstructorID]
		if !ok {
			team = &models.TeamDrivers{Team: row.ConstructorName, ID: row.ConstructorID}
			teams[row.ConstructorID] = team
			order = append(order, row.ConstructorID)
		}
		team.Drivers = append(team.Drivers, row.DriverName())
	}
	if len(order) == 0 {
		return nil, ErrNoResults
	}

	out := make([]models.TeamDrivers, 0, len(order))
	for _, id := range order {
		out = append(out, *teams[id])
	}
	return out, nil
}

func (s *resultsService) latestCompletedRound(ctx context.Context, year int) (int, error) {
	rounds, err := s.client.RaceSchedule(ctx, year)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return 0, ErrNoCompletedRaces
		}
		return 0, err
	}
	now := s.now()
	latest := 0
	var latestDate time.Time
	for _, round := range rounds {
		race, ok := round.RaceSession()
		if !ok || race.Date.After(now) {
			continue
		}
		if latest == 0 || race.Date.After(latestDate) {
			latest = round.Number
			latestDate = race.Date
		}
	}
	if latest == 0 {
		return 0, ErrNoCompletedRaces
	}
	return latest, nil
}

func resultRows(rows []models.ResultRow) []models.RaceResult {
	results := make([]models.RaceResult, 0, len(rows))
	for _, row := range rows {
		points := row.Points
		results = append(results, models.RaceResult{
			Position: row.Position,
			Driver:   row.DriverName(),
			ID:       row.DriverCode,
			Team:     row.ConstructorName,
			Laps:     row.Laps,
			Time:     row.RaceTime,
			Grid:     row.Grid,
			Points:   &points,
		})
	}
	return results
}
