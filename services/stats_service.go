package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/rpauls02/F1StatFinder-backend/models"
	"github.com/rpauls02/F1StatFinder-backend/upstream"
	"github.com/rpauls02/F1StatFinder-backend/utils"
)

// StatusClassifier decides whether a result status counts as a DNF. The
// vocabulary is configuration because it tracks upstream status-string
// drift ("Finished", "+1 Lap", "Accident", ...).
type StatusClassifier struct {
	FinishedPrefixes []string
	LappedSubstring  string
}

// IsDNF reports whether the status describes a car classified as not
// finishing. A status starting with a finished prefix or carrying the
// lapped marker is a finish.
func (c StatusClassifier) IsDNF(status string) bool {
	lowered := strings.ToLower(status)
	for _, prefix := range c.FinishedPrefixes {
		if strings.HasPrefix(lowered, strings.ToLower(prefix)) {
			return false
		}
	}
	if c.LappedSubstring != "" && strings.Contains(lowered, strings.ToLower(c.LappedSubstring)) {
		return false
	}
	return true
}

type StatsService interface {
	// DriverStats aggregates wins, podiums, poles and DNFs across the
	// completed rounds of the current season.
	DriverStats(ctx context.Context) ([]models.DriverStats, error)
	ConstructorStats(ctx context.Context) ([]models.ConstructorStats, error)
}

type statsService struct {
	client     upstream.Client
	classifier StatusClassifier
	logger     *slog.Logger
	now        func() time.Time
}

func NewStatsService(client upstream.Client, classifier StatusClassifier, logger *slog.Logger) StatsService {
	return &statsService{
		client:     client,
		classifier: classifier,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// completedRounds filters the schedule down to rounds whose main race has
// already happened. A round race-dated in the future never contributes.
func (s *statsService) completedRounds(ctx context.Context, year int) ([]models.Round, error) {
	rounds, err := s.client.RaceSchedule(ctx, year)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoSchedule
		}
		return nil, err
	}
	now := s.now()
	var completed []models.Round
	for _, round := range rounds {
		race, ok := round.RaceSession()
		if ok && !race.Date.After(now) {
			completed = append(completed, round)
		}
	}
	if len(completed) == 0 {
		return nil, ErrNoCompletedRaces
	}
	return completed, nil
}

func (s *statsService) DriverStats(ctx context.Context) ([]models.DriverStats, error) {
	year := s.now().Year()
	rounds, err := s.completedRounds(ctx, year)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*models.DriverStats)
	var order []string
	tally := func(id string) *models.DriverStats {
		entry, ok := stats[id]
		if !ok {
			entry = &models.DriverStats{ID: id}
			stats[id] = entry
			order = append(order, id)
		}
		return entry
	}

	for _, round := range rounds {
		race, err := s.client.RaceResults(ctx, year, round.Number)
		if err != nil && !errors.Is(err, upstream.ErrNoData) {
			s.logger.Warn("race results unavailable for stats",
				slog.Int("round", round.Number), slog.Any("error", err))
		}
		for _, row := range race {
			if row.DriverID == "" {
				continue
			}
			entry := tally(row.DriverID)
			if row.Position != nil && *row.Position == 1 {
				entry.Wins++
			}
			if row.Position != nil && *row.Position <= 3 {
				entry.Podiums++
			}
			if s.classifier.IsDNF(row.Status) {
				entry.DNFs++
			}
		}

		if round.Format.HasSprint() {
			sprint, err := s.client.SprintResults(ctx, year, round.Number)
			if err != nil && !errors.Is(err, upstream.ErrNoData) {
				s.logger.Warn("sprint results unavailable for stats",
					slog.Int("round", round.Number), slog.Any("error", err))
			}
			for _, row := range sprint {
				if row.DriverID == "" {
					continue
				}
				entry := tally(row.DriverID)
				if row.Position != nil && *row.Position == 1 {
					entry.Wins++
				}
				if row.Position != nil && *row.Position <= 3 {
					entry.Podiums++
				}
				if s.classifier.IsDNF(row.Status) {
					entry.DNFs++
				}
				if row.Grid != nil && *row.Grid == 1 {
					entry.Poles++
				}
			}
		}

		quali, err := s.client.QualifyingResults(ctx, year, round.Number)
		if err != nil && !errors.Is(err, upstream.ErrNoData) {
			s.logger.Warn("qualifying results unavailable for stats",
				slog.Int("round", round.Number), slog.Any("error", err))
		}
		for _, row := range quali {
			if row.DriverID == "" {
				continue
			}
			if row.Position != nil && *row.Position == 1 {
				tally(row.DriverID).Poles++
			}
		}
	}

	if len(order) == 0 {
		return nil, ErrNoData
	}
	out := make([]models.DriverStats, 0, len(order))
	for _, id := range order {
		out = append(out, *stats[id])
	}
	return out, nil
}

func (s *statsService) ConstructorStats(ctx context.Context) ([]models.ConstructorStats, error) {
	year := s.now().Year()
	rounds, err := s.completedRounds(ctx, year)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*models.ConstructorStats)
	var order []string
	tally := func(row models.ResultRow) *models.ConstructorStats {
		entry, ok := stats[row.ConstructorID]
		if !ok {
			entry = &models.ConstructorStats{
				ID:          row.ConstructorID,
				Name:        row.ConstructorName,
				Nationality: utils.NationalityCode(row.ConstructorNationality),
			}
			stats[row.ConstructorID] = entry
			order = append(order, row.ConstructorID)
		}
		return entry
	}

	for _, round := range rounds {
		race, err := s.client.RaceResults(ctx, year, round.Number)
		if err != nil && !errors.Is(err, upstream.ErrNoData) {
			s.logger.Warn("race results unavailable for stats",
				slog.Int("round", round.Number), slog.Any("error", err))
		}
		for _, row := range race {
			if row.ConstructorID == "" {
				continue
			}
			entry := tally(row)
			if row.Position != nil && *row.Position == 1 {
				entry.Wins++
			}
			if row.Position != nil && *row.Position <= 3 {
				entry.Podiums++
			}
		}

		quali, err := s.client.QualifyingResults(ctx, year, round.Number)
		if err != nil && !errors.Is(err, upstream.ErrNoData) {
			s.logger.Warn("qualifying results unavailable for stats",
				slog.Int("round", round.Number), slog.Any("error", err))
		}
		for _, row := range quali {
			if row.ConstructorID == "" {
				continue
			}
			if row.Position != nil && *row.Position == 1 {
				tally(row).Poles++
			}
		}
	}

	if len(order) == 0 {
		return nil, ErrNoData
	}
	out := make([]models.ConstructorStats, 0, len(order))
	for _, id := range order {
		out = append(out, *stats[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		if out[i].Podiums != out[j].Podiums {
			return out[i].Podiums > out[j].Podiums
		}
		return out[i].Poles > out[j].Poles
	})
	return out, nil
}
