package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/rpauls02/F1StatFinder-backend/models"
	"github.com/rpauls02/F1StatFinder-backend/upstream"
	"github.com/rpauls02/F1StatFinder-backend/utils"
)

// entityExtractor picks the accumulation key out of a result row. Rows
// reporting ok=false are discarded. The driver and constructor points
// views are both instances of the same merge with different extractors.
type entityExtractor func(models.ResultRow) (id, name, team string, ok bool)

func driverExtractor(row models.ResultRow) (string, string, string, bool) {
	if row.DriverID == "" {
		return "", "", "", false
	}
	return row.DriverID, row.DriverName(), row.ConstructorName, true
}

func constructorExtractor(row models.ResultRow) (string, string, string, bool) {
	if row.ConstructorID == "" {
		return "", "", "", false
	}
	return row.ConstructorID, row.ConstructorName, row.ConstructorName, true
}

// seasonPoints merges race and sprint results of every round of a season
// into per-entity totals. A failed or empty round contributes nothing and
// never aborts the others; only a season with zero contributing rounds is
// an error. Ties preserve first-appearance order at both the weekend and
// the championship level.
func seasonPoints(
	ctx context.Context,
	client upstream.Client,
	logger *slog.Logger,
	year int,
	extract entityExtractor,
) ([]models.SeasonPoints, error) {
	rounds, err := client.RaceSchedule(ctx, year)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoSchedule
		}
		return nil, err
	}

	totals := make(map[string]*models.SeasonPoints)
	var order []string
	contributed := 0

	for _, round := range rounds {
		combined := roundResults(ctx, client, logger, year, round)
		if len(combined) == 0 {
			continue
		}

		type weekendEntry struct {
			id, name, team string
			points         float64
			position       int
		}
		weekend := make(map[string]*weekendEntry)
		var weekendOrder []string

		for _, row := range combined {
			id, name, team, ok := extract(row)
			if !ok {
				continue
			}
			entry, seen := weekend[id]
			if !seen {
				entry = &weekendEntry{id: id, name: name, team: team}
				weekend[id] = entry
				weekendOrder = append(weekendOrder, id)
			}
			entry.points += row.Points
		}
		if len(weekendOrder) == 0 {
			continue
		}
		contributed++

		// Weekend ranking: descending points, stable on first appearance.
		ranked := make([]*weekendEntry, 0, len(weekendOrder))
		for _, id := range weekendOrder {
			ranked = append(ranked, weekend[id])
		}
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].points > ranked[j].points })
		for i, entry := range ranked {
			entry.position = i + 1
		}

		countryCode := utils.CountryCode3(round.Country)
		slug := utils.SlugifyLocation(round.Location)

		for _, id := range weekendOrder {
			entry := weekend[id]
			acc, seen := totals[id]
			if !seen {
				acc = &models.SeasonPoints{ID: id, Name: entry.name, Team: entry.team}
				totals[id] = acc
				order = append(order, id)
			}
			acc.Total += entry.points
			acc.Races = append(acc.Races, models.RaceScore{
				Name:     round.Name,
				Slug:     slug,
				Country:  countryCode,
				Points:   entry.points,
				Position: entry.position,
			})
		}
	}

	if contributed == 0 {
		return nil, ErrNoData
	}

	standings := make([]models.SeasonPoints, 0, len(order))
	for _, id := range order {
		standings = append(standings, *totals[id])
	}
	sort.SliceStable(standings, func(i, j int) bool { return standings[i].Total > standings[j].Total })
	for i := range standings {
		standings[i].Position = i + 1
	}
	return standings, nil
}

// roundResults fetches race and, for sprint weekends, sprint rows of one
// round. Failures are logged and swallowed; the caller treats an empty
// slice as zero contribution.
func roundResults(
	ctx context.Context,
	client upstream.Client,
	logger *slog.Logger,
	year int,
	round models.Round,
) []models.ResultRow {
	var combined []models.ResultRow

	race, err := client.RaceResults(ctx, year, round.Number)
	if err != nil && !errors.Is(err, upstream.ErrNoData) {
		logger.Warn("race results unavailable, round contributes nothing",
			slog.Int("year", year), slog.Int("round", round.Number), slog.Any("error", err))
	}
	combined = append(combined, race...)

	if round.Format.HasSprint() {
		sprint, err := client.SprintResults(ctx, year, round.Number)
		if err != nil && !errors.Is(err, upstream.ErrNoData) {
			logger.Warn("sprint results unavailable, session contributes nothing",
				slog.Int("year", year), slog.Int("round", round.Number), slog.Any("error", err))
		}
		combined = append(combined, sprint...)
	}
	return combined
}
