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

const seasonListLimit = 100

type ScheduleService interface {
	Seasons(ctx context.Context) ([]models.SeasonRef, error)
	Circuits(ctx context.Context) ([]models.Circuit, error)

	// RaceCalendar returns the calendar of the given season; year 0 means
	// the current season.
	RaceCalendar(ctx context.Context, year int) (*models.RaceCalendar, error)
	NextEvent(ctx context.Context) (*models.NextEvent, error)
	NextEventCountdown(ctx context.Context) (*models.Countdown, error)
}

type scheduleService struct {
	client upstream.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewScheduleService(client upstream.Client, logger *slog.Logger) ScheduleService {
	return &scheduleService{
		client: client,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *scheduleService) Seasons(ctx context.Context) ([]models.SeasonRef, error) {
	seasons, err := s.client.Seasons(ctx, seasonListLimit)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoData
		}
		return nil, err
	}
	// Latest season first.
	sort.SliceStable(seasons, func(i, j int) bool { return seasons[i].Year > seasons[j].Year })
	return seasons, nil
}

func (s *scheduleService) Circuits(ctx context.Context) ([]models.Circuit, error) {
	circuits, err := s.client.Circuits(ctx, seasonListLimit)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoData
		}
		return nil, err
	}
	sort.SliceStable(circuits, func(i, j int) bool { return circuits[i].Name < circuits[j].Name })
	return circuits, nil
}

func (s *scheduleService) RaceCalendar(ctx context.Context, year int) (*models.RaceCalendar, error) {
	if year == 0 {
		year = s.now().Year()
	}
	rounds, err := s.client.RaceSchedule(ctx, year)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, ErrNoSchedule
		}
		return nil, err
	}

	calendar := make([]models.CalendarEvent, 0, len(rounds))
	for _, round := range rounds {
		if len(round.Sessions) == 0 {
			continue
		}
		sessions := make([]models.CalendarSession, 0, len(round.Sessions))
		for _, session := range round.Sessions {
			sessions = append(sessions, models.CalendarSession{
				Name: session.Name,
				Date: session.Date.Format("Jan 02"),
				Time: session.Date.Format("15:04"),
			})
		}

		eventDate := ""
		if race, ok := round.RaceSession(); ok {
			eventDate = race.Date.Format("2006-01-02")
		}

		calendar = append(calendar, models.CalendarEvent{
			Round:        round.Number,
			EventName:    strings.Replace(round.Name, "Grand Prix", "GP", 1),
			Country:      round.Country,
			Location:     round.Location,
			EventDate:    eventDate,
			EventFormat:  string(round.Format),
			CountryCode2: utils.CountryCode2(round.Country),
			CountryCode3: utils.CountryCode3(round.Country),
			Slug:         utils.SlugifyLocation(round.Location),
			Sessions:     sessions,
		})
	}
	if len(calendar) == 0 {
		return nil, ErrNoSchedule
	}

	sort.SliceStable(calendar, func(i, j int) bool { return calendar[i].Round < calendar[j].Round })
	return &models.RaceCalendar{Year: year, Calendar: calendar}, nil
}

// nextRound finds the earliest round whose main race is strictly in the
// future.
func (s *scheduleService) nextRound(ctx context.Context) (*models.Round, time.Time, error) {
	now := s.now()
	rounds, err := s.client.RaceSchedule(ctx, now.Year())
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			return nil, time.Time{}, ErrNoSchedule
		}
		return nil, time.Time{}, err
	}

	var next *models.Round
	var nextDate time.Time
	for i := range rounds {
		race, ok := rounds[i].RaceSession()
		if !ok || !race.Date.After(now) {
			continue
		}
		if next == nil || race.Date.Before(nextDate) {
			next = &rounds[i]
			nextDate = race.Date
		}
	}
	if next == nil {
		return nil, time.Time{}, ErrNoUpcomingRace
	}
	return next, nextDate, nil
}

func (s *scheduleService) NextEvent(ctx context.Context) (*models.NextEvent, error) {
	round, raceDate, err := s.nextRound(ctx)
	if err != nil {
		return nil, err
	}

	eventType := "GP Event"
	if round.Format.HasSprint() {
		eventType = "Sprint Event"
	}

	date := raceDate.Format("02 January 2006")
	clock := raceDate.Format("15:04 PM")

	return &models.NextEvent{
		EventName:   strings.Replace(round.Name, "Grand Prix", "GP", 1),
		Round:       round.Number,
		Country:     round.Country,
		Location:    round.Location,
		CountryCode: utils.CountryCode2(round.Country),
		Slug:        utils.SlugifyLocation(round.Location),
		EventType:   eventType,
		RaceDate:    &date,
		RaceTime:    &clock,
	}, nil
}

func (s *scheduleService) NextEventCountdown(ctx context.Context) (*models.Countdown, error) {
	_, raceDate, err := s.nextRound(ctx)
	if err != nil {
		return nil, err
	}

	total := int(raceDate.Sub(s.now()).Seconds())
	if total < 0 {
		total = 0
	}
	return &models.Countdown{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}, nil
}
