package models

// CalendarSession is a session entry of the race calendar view, with
// display-formatted date and time.
type CalendarSession struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// CalendarEvent is one round of the race calendar view.
type CalendarEvent struct {
	Round        int               `json:"round"`
	EventName    string            `json:"eventName"`
	Country      string            `json:"country"`
	Location     string            `json:"location"`
	EventDate    string            `json:"eventDate"`
	EventFormat  string            `json:"eventFormat"`
	CountryCode2 string            `json:"countryCode2"`
	CountryCode3 string            `json:"countryCode3"`
	Slug         string            `json:"slug"`
	Sessions     []CalendarSession `json:"sessions"`
}

// RaceCalendar is the full calendar of one season.
type RaceCalendar struct {
	Year     int             `json:"year"`
	Calendar []CalendarEvent `json:"calendar"`
}

// NextEvent describes the next upcoming race weekend.
type NextEvent struct {
	EventName   string  `json:"eventName"`
	Round       int     `json:"round"`
	Country     string  `json:"country"`
	Location    string  `json:"location"`
	CountryCode string  `json:"countryCode"`
	Slug        string  `json:"slug"`
	EventType   string  `json:"eventType"`
	RaceDate    *string `json:"raceDate"`
	RaceTime    *string `json:"raceTime"`
}

// Countdown is the time remaining until the next race, decomposed with
// floor division and clamped at zero.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}
