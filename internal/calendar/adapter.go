// Package calendar wraps the Google Calendar v3 API: event creation for the
// CRM calendar, the dashboard's "this week" widget, and the holiday feed that
// the weekly-business grid merges onto its days.
package calendar

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// api is the slice of the Calendar API the adapter uses; tests fake it.
type api interface {
	Insert(ctx context.Context, calendarID string, ev *gcal.Event) (*gcal.Event, error)
	List(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]*gcal.Event, error)
}

type googleAPI struct {
	svc     *gcal.Service
	timeout time.Duration
}

func (g *googleAPI) Insert(ctx context.Context, calendarID string, ev *gcal.Event) (*gcal.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
}

func (g *googleAPI) List(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]*gcal.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	resp, err := g.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Adapter exposes the three calendar operations the CRM needs. CreateEvent
// fails hard; the dashboard and holiday reads fail soft, returning empty
// results so a calendar outage never takes the page down with it.
type Adapter struct {
	api               api
	calendarID        string
	holidayCalendarID string
	timezone          string
	loc               *time.Location
	log               *zap.Logger
}

func NewAdapter(ctx context.Context, calendarID, holidayCalendarID, timezone, credentialsFile string, timeout time.Duration, log *zap.Logger) (*Adapter, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newAdapter(&googleAPI{svc: svc, timeout: timeout}, calendarID, holidayCalendarID, timezone, log)
}

func newAdapter(a api, calendarID, holidayCalendarID, timezone string, log *zap.Logger) (*Adapter, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Adapter{
		api:               a,
		calendarID:        calendarID,
		holidayCalendarID: holidayCalendarID,
		timezone:          timezone,
		loc:               loc,
		log:               log,
	}, nil
}

// EventInput is the payload for CreateEvent. DurationMinutes of zero means
// one hour.
type EventInput struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"duration"`
}

type CreatedEvent struct {
	EventID  string `json:"eventId"`
	EventURL string `json:"eventUrl"`
}

// ErrInvalidStartTime marks a start time that did not parse; it is raised
// before any API call.
type ErrInvalidStartTime struct{ Value string }

func (e *ErrInvalidStartTime) Error() string {
	return fmt.Sprintf("invalid start time: %q", e.Value)
}

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func (a *Adapter) parseStartTime(s string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, a.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ErrInvalidStartTime{Value: s}
}

// CreateEvent inserts one event into the CRM calendar. Upstream failures
// propagate to the caller.
func (a *Adapter) CreateEvent(ctx context.Context, in EventInput) (*CreatedEvent, error) {
	start, err := a.parseStartTime(in.StartTime)
	if err != nil {
		return nil, err
	}
	duration := in.DurationMinutes
	if duration <= 0 {
		duration = 60
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	ev := &gcal.Event{
		Summary:     in.Title,
		Description: in.Description,
		Location:    in.Location,
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: a.timezone},
		End:         &gcal.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: a.timezone},
	}
	created, err := a.api.Insert(ctx, a.calendarID, ev)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	a.log.Info("calendar event created", zap.String("event_id", created.Id))
	return &CreatedEvent{EventID: created.Id, EventURL: created.HtmlLink}, nil
}

// WeekEvents is the dashboard widget payload.
type WeekEvents struct {
	TodayCount  int          `json:"todayCount"`
	WeekCount   int          `json:"weekCount"`
	TodayEvents []*gcal.Event `json:"todayEvents"`
	AllEvents   []*gcal.Event `json:"allEvents"`
}

// ThisWeekEvents lists the current calendar week's events, partitioned into
// today vs the whole week. The week here runs Sunday through Saturday in
// local time, matching what the dashboard has always shown; it is NOT the
// ISO business week the weekly grid uses. On any failure a zeroed result is
// returned instead of an error.
func (a *Adapter) ThisWeekEvents(ctx context.Context) WeekEvents {
	now := time.Now().In(a.loc)
	startOfWeek := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.loc).
		AddDate(0, 0, -int(now.Weekday()))
	endOfWeek := startOfWeek.AddDate(0, 0, 7).Add(-time.Millisecond)

	events, err := a.api.List(ctx, a.calendarID, startOfWeek, endOfWeek)
	if err != nil {
		a.log.Warn("failed to list week events, returning empty", zap.Error(err))
		return WeekEvents{TodayEvents: []*gcal.Event{}, AllEvents: []*gcal.Event{}}
	}

	today := now.Format("2006-01-02")
	todayEvents := make([]*gcal.Event, 0)
	for _, ev := range events {
		if a.eventDay(ev) == today {
			todayEvents = append(todayEvents, ev)
		}
	}

	capped := todayEvents
	if len(capped) > 3 {
		capped = capped[:3]
	}
	return WeekEvents{
		TodayCount:  len(todayEvents),
		WeekCount:   len(events),
		TodayEvents: capped,
		AllEvents:   events,
	}
}

func (a *Adapter) eventDay(ev *gcal.Event) string {
	if ev.Start == nil {
		return ""
	}
	if ev.Start.Date != "" {
		return ev.Start.Date
	}
	t, err := time.Parse(time.RFC3339, ev.Start.DateTime)
	if err != nil {
		return ""
	}
	return t.In(a.loc).Format("2006-01-02")
}

// HolidaysForPeriod returns date -> holiday name for the range, taken from
// the all-day events of the holiday feed. Failures yield an empty map so the
// weekly grid renders without holiday markers instead of erroring.
func (a *Adapter) HolidaysForPeriod(ctx context.Context, start, end time.Time) map[string]string {
	events, err := a.api.List(ctx, a.holidayCalendarID, start, end)
	if err != nil {
		a.log.Warn("failed to list holidays, returning empty", zap.Error(err))
		return map[string]string{}
	}

	holidays := make(map[string]string)
	for _, ev := range events {
		if ev.Start != nil && ev.Start.Date != "" {
			holidays[ev.Start.Date] = ev.Summary
		}
	}
	return holidays
}
