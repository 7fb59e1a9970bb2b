package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/rpauls02/F1StatFinder-backend/models"
	"github.com/rpauls02/F1StatFinder-backend/upstream"
	"github.com/rpauls02/F1StatFinder-backend/utils"
)

const championPlaceholder = "N/A"

type ChampionsService interface {
	// PreviousChampions returns the champions of the last N seasons,
	// newest first. A season with missing data yields placeholder values,
	// never an aborted request.
	PreviousChampions(ctx context.Context) ([]models.Champion, error)

	// RecentWinners returns the winners of the last N completed races of
	// the current season, most recent first.
	RecentWinners(ctx context.Context) ([]models.RaceWinner, error)
}

type championsService struct {
	client  upstream.Client
	depth   int
	winners int
	logger  *slog.Logger
	now     func() time.Time
}

func NewChampionsService(client upstream.Client, depth, winners int, logger *slog.Logger) ChampionsService {
	return &championsService{
		client:  client,
		depth:   depth,
		winners: winners,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *championsService) PreviousChampions(ctx context.Context) ([]models.Champion, error) {
	currentYear := s.now().Year()
	champions := make([]models.Champion, 0, s.depth)

	for year := currentYear; year > currentYear-s.depth; year-- {
		champion := models.Champion{
			Year:           year,
			WDC:            championPlaceholder,
			WDCNationality: championPlaceholder,
			WCC:            championPlaceholder,
			WCCNationality: championPlaceholder,
		}

		drivers, err := s.client.DriverStandings(ctx, year)
		if err != nil {
			s.logger.Warn("driver standings unavailable for champions view",
				slog.Int("year", year), slog.Any("error", err))
		} else if len(drivers) > 0 {
			leader := drivers[0]
			champion.WDC = leader.ShortDriverName()
			if code := utils.NationalityCode(leader.DriverNationality); code != "" {
				champion.WDCNationality = code
			}
			champion.WDCPoints = leader.Points
		}

		constructors, err := s.client.ConstructorStandings(ctx, year)
		if err != nil {
			s.logger.Warn("constructor standings unavailable for champions view",
				slog.Int("year", year), slog.Any("error", err))
		} else if len(constructors) > 0 {
			leader := constructors[0]
			champion.WCC = leader.ConstructorName
			if code := utils.NationalityCode(leader.ConstructorNationality); code != "" {
				champion.WCCNationality = code
			}
			champion.WCCPoints = leader.Points
		}

		champions = append(champions, champion)
	}

	return champions, nil
}

func (s *championsService) RecentWinners(ctx context.Context) ([]models.RaceWinner, error) {
	year := s.now().Year()
	rounds, err := s.client.RaceSchedule(ctx, year)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoSchedule
		}
		return nil, err
	}

	now := s.now()
	type completed struct {
		round models.Round
		date  time.Time
	}
	var past []completed
	for _, round := range rounds {
		race, ok := round.RaceSession()
		if ok && race.Date.Before(now) {
			past = append(past, completed{round: round, date: race.Date})
		}
	}
	sort.SliceStable(past, func(i, j int) bool { return past[i].date.After(past[j].date) })
	if len(past) > s.winners {
		past = past[:s.winners]
	}

	winners := make([]models.RaceWinner, 0, len(past))
	for _, c := range past {
		rows, err := s.client.RaceResults(ctx, year, c.round.Number)
		if err != nil || len(rows) == 0 {
			if err != nil && !errors.Is(err, upstream.ErrNoData) {
				s.logger.Warn("race results unavailable for winners view",
					slog.Int("round", c.round.Number), slog.Any("error", err))
			}
			continue
		}
		winner := rows[0]
		for _, row := range rows {
			if row.Position != nil && *row.Position == 1 {
				winner = row
				break
			}
		}

		date := c.date.Format("2006-01-02")
		winners = append(winners, models.RaceWinner{
			Year:        year,
			Round:       c.round.Number,
			RaceName:    c.round.Name,
			Circuit:     c.round.CircuitName,
			Date:        &date,
			Winner:      winner.ShortDriverName(),
			Nationality: utils.NationalityCode(winner.DriverNationality),
			Constructor: winner.ConstructorName,
			Country:     utils.CountryCode2(c.round.Country),
		})
	}

	if len(winners) == 0 {
		return nil, ErrNoData
	}
	return winners, nil
}
