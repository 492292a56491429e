package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
)

type fakeAPI struct {
	inserted   []*gcal.Event
	insertedTo []string
	listed     map[string][]*gcal.Event
	listErr    error
	insertErr  error
}

func (f *fakeAPI) Insert(_ context.Context, calendarID string, ev *gcal.Event) (*gcal.Event, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, ev)
	f.insertedTo = append(f.insertedTo, calendarID)
	return &gcal.Event{Id: "evt-1", HtmlLink: "https://calendar.example/evt-1"}, nil
}

func (f *fakeAPI) List(_ context.Context, calendarID string, _, _ time.Time) ([]*gcal.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed[calendarID], nil
}

func newTestAdapter(t *testing.T, api *fakeAPI) *Adapter {
	t.Helper()
	a, err := newAdapter(api, "primary", "holidays", "UTC", zap.NewNop())
	require.NoError(t, err)
	return a
}

func TestCreateEventRejectsInvalidStartBeforeIO(t *testing.T) {
	api := &fakeAPI{}
	a := newTestAdapter(t, api)

	_, err := a.CreateEvent(context.Background(), EventInput{Title: "demo", StartTime: "whenever"})
	require.Error(t, err)
	var invalid *ErrInvalidStartTime
	assert.ErrorAs(t, err, &invalid)
	assert.Empty(t, api.inserted, "no API call for an unparseable start time")
}

func TestCreateEventDefaultsDuration(t *testing.T) {
	api := &fakeAPI{}
	a := newTestAdapter(t, api)

	created, err := a.CreateEvent(context.Background(), EventInput{
		Title:     "demo",
		StartTime: "2024-05-06T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-1", created.EventID)
	assert.Equal(t, "https://calendar.example/evt-1", created.EventURL)

	require.Len(t, api.inserted, 1)
	start, err := time.Parse(time.RFC3339, api.inserted[0].Start.DateTime)
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, api.inserted[0].End.DateTime)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, end.Sub(start))
	assert.Equal(t, "primary", api.insertedTo[0])
}

func TestCreateEventPropagatesFailure(t *testing.T) {
	boom := errors.New("forbidden")
	a := newTestAdapter(t, &fakeAPI{insertErr: boom})

	_, err := a.CreateEvent(context.Background(), EventInput{
		Title:     "demo",
		StartTime: "2024-05-06T10:00:00Z",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestThisWeekEventsPartitionsToday(t *testing.T) {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	api := &fakeAPI{listed: map[string][]*gcal.Event{
		"primary": {
			{Summary: "today 1", Start: &gcal.EventDateTime{DateTime: now.Format(time.RFC3339)}},
			{Summary: "today 2", Start: &gcal.EventDateTime{Date: today}},
			{Summary: "today 3", Start: &gcal.EventDateTime{Date: today}},
			{Summary: "today 4", Start: &gcal.EventDateTime{Date: today}},
			{Summary: "other day", Start: &gcal.EventDateTime{Date: now.AddDate(0, 0, 1).Format("2006-01-02")}},
		},
	}}
	a := newTestAdapter(t, api)

	got := a.ThisWeekEvents(context.Background())
	assert.Equal(t, 4, got.TodayCount)
	assert.Equal(t, 5, got.WeekCount)
	assert.Len(t, got.TodayEvents, 3, "today list is capped")
	assert.Len(t, got.AllEvents, 5)
}

func TestThisWeekEventsFailsSoft(t *testing.T) {
	a := newTestAdapter(t, &fakeAPI{listErr: errors.New("down")})

	got := a.ThisWeekEvents(context.Background())
	assert.Equal(t, 0, got.TodayCount)
	assert.Equal(t, 0, got.WeekCount)
	assert.NotNil(t, got.TodayEvents)
	assert.NotNil(t, got.AllEvents)
}

func TestHolidaysForPeriod(t *testing.T) {
	api := &fakeAPI{listed: map[string][]*gcal.Event{
		"holidays": {
			{Summary: "New Year's Day", Start: &gcal.EventDateTime{Date: "2024-01-01"}},
			{Summary: "timed, not all-day", Start: &gcal.EventDateTime{DateTime: "2024-01-02T09:00:00Z"}},
		},
	}}
	a := newTestAdapter(t, api)

	got := a.HolidaysForPeriod(context.Background(), time.Now(), time.Now())
	assert.Equal(t, map[string]string{"2024-01-01": "New Year's Day"}, got)
}

func TestHolidaysForPeriodFailsSoft(t *testing.T) {
	a := newTestAdapter(t, &fakeAPI{listErr: errors.New("down")})
	got := a.HolidaysForPeriod(context.Background(), time.Now(), time.Now())
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
