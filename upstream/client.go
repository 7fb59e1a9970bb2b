package upstream

import (
	"context"
	"errors"

	"github.com/rpauls02/F1StatFinder-backend/models"
)

var (
	// ErrUnavailable means the upstream could not be reached (transport
	// failure, non-success status, or an open circuit breaker).
	ErrUnavailable = errors.New("upstream statistics provider is unavailable")

	// ErrNoData means the upstream answered but the requested table was
	// empty.
	ErrNoData = errors.New("no data available for the requested query")
)

// Client is the upstream statistics provider. Every method returns a
// fully decoded table; an empty table is reported as ErrNoData.
type Client interface {
	Seasons(ctx context.Context, limit int) ([]models.SeasonRef, error)
	Circuits(ctx context.Context, limit int) ([]models.Circuit, error)
	RaceSchedule(ctx context.Context, year int) ([]models.Round, error)
	RaceResults(ctx context.Context, year, round int) ([]models.ResultRow, error)
	SprintResults(ctx context.Context, year, round int) ([]models.ResultRow, error)
	QualifyingResults(ctx context.Context, year, round int) ([]models.ResultRow, error)
	DriverStandings(ctx context.Context, year int) ([]models.StandingRow, error)
	ConstructorStandings(ctx context.Context, year int) ([]models.StandingRow, error)
}
