package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/rpauls02/F1StatFinder-backend/models"
)

// ErgastClient talks to an Ergast-compatible JSON API. All calls go
// through a circuit breaker so a dead upstream fails fast instead of
// holding every request for the full timeout.
type ErgastClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

func NewErgastClient(baseURL string, timeout time.Duration) *ErgastClient {
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "ergast",
		Timeout: 30 * time.Second,
	})
	return &ErgastClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
	}
}

func (c *ErgastClient) Seasons(ctx context.Context, limit int) ([]models.SeasonRef, error) {
	var payload ergastResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/seasons.json?limit=%d", limit), &payload); err != nil {
		return nil, err
	}
	table := payload.MRData.SeasonTable
	if table == nil || len(table.Seasons) == 0 {
		return nil, ErrNoData
	}
	seasons := make([]models.SeasonRef, 0, len(table.Seasons))
	for _, s := range table.Seasons {
		year, err := strconv.Atoi(s.Season)
		if err != nil {
			continue
		}
		seasons = append(seasons, models.SeasonRef{Year: year, URL: s.URL})
	}
	if len(seasons) == 0 {
		return nil, ErrNoData
	}
	return seasons, nil
}

func (c *ErgastClient) Circuits(ctx context.Context, limit int) ([]models.Circuit, error) {
	var payload ergastResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/circuits.json?limit=%d", limit), &payload); err != nil {
		return nil, err
	}
	table := payload.MRData.CircuitTable
	if table == nil || len(table.Circuits) == 0 {
		return nil, ErrNoData
	}
	circuits := make([]models.Circuit, 0, len(table.Circuits))
	for _, dto := range table.Circuits {
		circuits = append(circuits, models.Circuit{
			ID:       dto.CircuitID,
			Name:     dto.CircuitName,
			Location: dto.Location.Locality,
			Country:  dto.Location.Country,
			URL:      dto.URL,
		})
	}
	return circuits, nil
}

func (c *ErgastClient) RaceSchedule(ctx context.Context, year int) ([]models.Round, error) {
	var payload ergastResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/%d.json?limit=100", year), &payload); err != nil {
		return nil, err
	}
	table := payload.MRData.RaceTable
	if table == nil || len(table.Races) == 0 {
		return nil, ErrNoData
	}
	rounds := make([]models.Round, 0, len(table.Races))
	for _, race := range table.Races {
		number, err := strconv.Atoi(race.Round)
		if err != nil {
			continue
		}
		rounds = append(rounds, models.Round{
			Number:      number,
			Name:        race.RaceName,
			Location:    race.Circuit.Location.Locality,
			Country:     race.Circuit.Location.Country,
			CircuitName: race.Circuit.CircuitName,
			Format:      race.eventFormat(),
			Sessions:    race.sessions(),
		})
	}
	sort.Slice(rounds, func(i, j int) bool { return rounds[i].Number < rounds[j].Number })
	return rounds, nil
}

func (c *ErgastClient) RaceResults(ctx context.Context, year, round int) ([]models.ResultRow, error) {
	return c.results(ctx, fmt.Sprintf("/%d/%d/results.json?limit=100", year, round))
}

func (c *ErgastClient) SprintResults(ctx context.Context, year, round int) ([]models.ResultRow, error) {
	return c.results(ctx, fmt.Sprintf("/%d/%d/sprint.json?limit=100", year, round))
}

func (c *ErgastClient) QualifyingResults(ctx context.Context, year, round int) ([]models.ResultRow, error) {
	var payload ergastResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/%d/%d/qualifying.json?limit=100", year, round), &payload); err != nil {
		return nil, err
	}
	table := payload.MRData.RaceTable
	if table == nil || len(table.Races) == 0 || len(table.Races[0].QualifyingResults) == 0 {
		return nil, ErrNoData
	}
	rows := make([]models.ResultRow, 0, len(table.Races[0].QualifyingResults))
	for _, dto := range table.Races[0].QualifyingResults {
		row := dto.toRow()
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *ErgastClient) DriverStandings(ctx context.Context, year int) ([]models.StandingRow, error) {
	var payload ergastResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/%d/driverStandings.json?limit=100", year), &payload); err != nil {
		return nil, err
	}
	lists := standingsLists(payload)
	if len(lists) == 0 || len(lists[0].DriverStandings) == 0 {
		return nil, ErrNoData
	}
	rows := make([]models.StandingRow, 0, len(lists[0].DriverStandings))
	for _, dto := range lists[0].DriverStandings {
		row := models.StandingRow{
			Position:          atoiOrZero(dto.Position),
			Points:            atofOrZero(dto.Points),
			Wins:              atoiOrZero(dto.Wins),
			DriverID:          dto.Driver.DriverID,
			GivenName:         dto.Driver.GivenName,
			FamilyName:        dto.Driver.FamilyName,
			DriverNationality: dto.Driver.Nationality,
		}
		if len(dto.Constructors) > 0 {
			last := dto.Constructors[len(dto.Constructors)-1]
			row.ConstructorID = last.ConstructorID
			row.ConstructorName = last.Name
			row.ConstructorNationality = last.Nationality
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *ErgastClient) ConstructorStandings(ctx context.Context, year int) ([]models.StandingRow, error) {
	var payload ergastResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/%d/constructorStandings.json?limit=100", year), &payload); err != nil {
		return nil, err
	}
	lists := standingsLists(payload)
	if len(lists) == 0 || len(lists[0].ConstructorStandings) == 0 {
		return nil, ErrNoData
	}
	rows := make([]models.StandingRow, 0, len(lists[0].ConstructorStandings))
	for _, dto := range lists[0].ConstructorStandings {
		rows = append(rows, models.StandingRow{
			Position:               atoiOrZero(dto.Position),
			Points:                 atofOrZero(dto.Points),
			Wins:                   atoiOrZero(dto.Wins),
			ConstructorID:          dto.Constructor.ConstructorID,
			ConstructorName:        dto.Constructor.Name,
			ConstructorNationality: dto.Constructor.Nationality,
		})
	}
	return rows, nil
}

func (c *ErgastClient) results(ctx context.Context, path string) ([]models.ResultRow, error) {
	var payload ergastResponse
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}
	table := payload.MRData.RaceTable
	if table == nil || len(table.Races) == 0 {
		return nil, ErrNoData
	}
	race := table.Races[0]
	dtos := race.Results
	if len(dtos) == 0 {
		dtos = race.SprintResults
	}
	if len(dtos) == 0 {
		return nil, ErrNoData
	}
	rows := make([]models.ResultRow, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, dto.toRow())
	}
	return rows, nil
}

func (c *ErgastClient) getJSON(ctx context.Context, path string, dst interface{}) error {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.fetch(ctx, path)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		upstreamCalls.WithLabelValues("breaker_open").Inc()
		return fmt.Errorf("%w: circuit breaker open", ErrUnavailable)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	return nil
}

func (c *ErgastClient) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamCalls.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		upstreamCalls.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: unexpected status %d for %s", ErrUnavailable, resp.StatusCode, path)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamCalls.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	upstreamCalls.WithLabelValues("ok").Inc()
	return body, nil
}

func standingsLists(payload ergastResponse) []standingsListDTO {
	if payload.MRData.StandingsTable == nil {
		return nil
	}
	return payload.MRData.StandingsTable.StandingsLists
}
