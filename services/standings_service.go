package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/rpauls02/F1StatFinder-backend/models"
	"github.com/rpauls02/F1StatFinder-backend/upstream"
	"github.com/rpauls02/F1StatFinder-backend/utils"
)

type StandingsService interface {
	// DriverStandings returns the upstream championship standings of the
	// current season, ascending by position.
	DriverStandings(ctx context.Context) ([]models.DriverStanding, error)
	ConstructorStandings(ctx context.Context) ([]models.ConstructorStanding, error)

	// DriverPoints recomputes season totals round by round, merging race
	// and sprint sessions, descending by total.
	DriverPoints(ctx context.Context, year int) ([]models.DriverSeasonPoints, error)
	ConstructorPoints(ctx context.Context, year int) ([]models.ConstructorSeasonPoints, error)
}

type standingsService struct {
	client upstream.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewStandingsService(client upstream.Client, logger *slog.Logger) StandingsService {
	return &standingsService{
		client: client,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *standingsService) DriverStandings(ctx context.Context) ([]models.DriverStanding, error) {
	year := s.now().Year()
	rows, err := s.client.DriverStandings(ctx, year)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoStandings
		}
		return nil, err
	}

	standings := lo.Map(rows, func(row models.StandingRow, _ int) models.DriverStanding {
		return models.DriverStanding{
			ID:          row.DriverID,
			Position:    row.Position,
			Nationality: utils.NationalityCode(row.DriverNationality),
			Name:        row.ShortDriverName(),
			Constructor: row.ConstructorName,
			Points:      row.Points,
		}
	})
	sort.SliceStable(standings, func(i, j int) bool { return standings[i].Position < standings[j].Position })
	return standings, nil
}

func (s *standingsService) ConstructorStandings(ctx context.Context) ([]models.ConstructorStanding, error) {
	year := s.now().Year()
	rows, err := s.client.ConstructorStandings(ctx, year)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoStandings
		}
		return nil, err
	}

	standings := lo.Map(rows, func(row models.StandingRow, _ int) models.ConstructorStanding {
		return models.ConstructorStanding{
			ID:          row.ConstructorID,
			Position:    row.Position,
			Name:        row.ConstructorName,
			Points:      row.Points,
			Nationality: utils.NationalityCode(row.ConstructorNationality),
		}
	})
	sort.SliceStable(standings, func(i, j int) bool { return standings[i].Position < standings[j].Position })
	return standings, nil
}

func (s *standingsService) DriverPoints(ctx context.Context, year int) ([]models.DriverSeasonPoints, error) {
	entries, err := seasonPoints(ctx, s.client, s.logger, year, driverExtractor)
	if err != nil {
		return nil, err
	}
	return lo.Map(entries, func(e models.SeasonPoints, _ int) models.DriverSeasonPoints {
		return models.DriverSeasonPoints{
			DriverID:    e.ID,
			Name:        e.Name,
			Constructor: e.Team,
			Total:       e.Total,
			Races:       e.Races,
			Position:    e.Position,
		}
	}), nil
}

func (s *standingsService) ConstructorPoints(ctx context.Context, year int) ([]models.ConstructorSeasonPoints, error) {
	entries, err := seasonPoints(ctx, s.client, s.logger, year, constructorExtractor)
	if err != nil {
		return nil, err
	}
	return lo.Map(entries, func(e models.SeasonPoints, _ int) models.ConstructorSeasonPoints {
		return models.ConstructorSeasonPoints{
			ConstructorID: e.ID,
			Constructor:   e.Name,
			Total:         e.Total,
			Races:         e.Races,
			Position:      e.Position,
		}
	}), nil
}
