package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/reader"
	"github.com/TFC433/sheetcrm/internal/writer"
)

type fakeSource struct {
	mu   sync.Mutex
	data map[string][][]string
}

func (f *fakeSource) GetRange(_ context.Context, a1Range string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[a1Range], nil
}

type fakeSink struct {
	mu      sync.Mutex
	appends [][]any
	updates map[string][]any
	deletes []int
}

func newFakeSink() *fakeSink {
	return &fakeSink{updates: make(map[string][]any)}
}

func (f *fakeSink) AppendRow(_ context.Context, _ string, row []any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appends = append(f.appends, row)
	return nil
}

func (f *fakeSink) UpdateRow(_ context.Context, a1Range string, row []any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[a1Range] = row
	return nil
}

func (f *fakeSink) DeleteRow(_ context.Context, _ string, rowIndex int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, rowIndex)
	return nil
}

type fakeHolidays struct {
	holidays map[string]string
}

func (f *fakeHolidays) HolidaysForPeriod(_ context.Context, _, _ time.Time) map[string]string {
	if f.holidays == nil {
		return map[string]string{}
	}
	return f.holidays
}

func weeklyRowFor(recordID, date, category, topic string) []string {
	return []string{recordID, date, category, topic, "alice,bob", "summary", "", "2024-01-01T10:00:00Z", "alice"}
}

func newWeeklyFixture(rows [][]string, holidays map[string]string) (*WeeklyBusinessService, *fakeSink) {
	cfg := config.Default()
	src := &fakeSource{data: map[string][][]string{
		"WeeklyBusiness!A:I": append([][]string{make([]string, 9)}, rows...),
	}}
	sink := newFakeSink()
	store := cache.NewStore(zap.NewNop())
	log := zap.NewNop()

	r := reader.NewWeeklyBusinessReader(src, store, cfg, log)
	w := writer.NewWeeklyBusinessWriter(sink, store, cfg, log)
	return NewWeeklyBusinessService(r, w, &fakeHolidays{holidays: holidays}, log), sink
}

func TestSummariesGroupsByWeek(t *testing.T) {
	svc, _ := newWeeklyFixture([][]string{
		weeklyRowFor("WB-1", "2024-01-01", "IoT", "kickoff"),
		weeklyRowFor("WB-2", "2024-01-02", "DT", "review"),
		weeklyRowFor("WB-3", "2024-01-08", "IoT", "follow-up"),
		weeklyRowFor("WB-4", "not-a-date", "IoT", "broken"),
	}, nil)

	summaries, err := svc.Summaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest week first.
	assert.Equal(t, "2024-W02", summaries[0].ID)
	assert.Equal(t, 1, summaries[0].SummaryCount)
	assert.Equal(t, "2024-W01", summaries[1].ID)
	assert.Equal(t, 2, summaries[1].SummaryCount)
	assert.Equal(t, "2024年 1月, 第 1 週", summaries[1].Title)
}

func TestDetailMergesHolidays(t *testing.T) {
	svc, _ := newWeeklyFixture([][]string{
		weeklyRowFor("WB-1", "2024-01-01", "IoT", "kickoff"),
		weeklyRowFor("WB-2", "2024-01-08", "IoT", "other week"),
	}, map[string]string{"2024-01-01": "New Year's Day"})

	detail, err := svc.Detail(context.Background(), "2024-W01")
	require.NoError(t, err)

	require.Len(t, detail.Days, 5)
	assert.Equal(t, "New Year's Day", detail.Days[0].HolidayName)
	assert.Equal(t, "", detail.Days[1].HolidayName)

	require.Len(t, detail.Entries, 1)
	assert.Equal(t, "WB-1", detail.Entries[0].RecordID)
	assert.Equal(t, 1, detail.Entries[0].Day)
}

func TestDetailUnknownWeekIsEmptyNotError(t *testing.T) {
	svc, _ := newWeeklyFixture(nil, nil)

	detail, err := svc.Detail(context.Background(), "2030-W15")
	require.NoError(t, err)
	assert.Empty(t, detail.Entries)
	assert.Len(t, detail.Days, 5)

	_, err = svc.Detail(context.Background(), "garbage")
	assert.Error(t, err)
}

func TestCreateValidates(t *testing.T) {
	svc, sink := newWeeklyFixture(nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, EntryInput{Date: "2024-01-01"}, "alice")
	assert.Error(t, err, "topic is required")

	_, err = svc.Create(ctx, EntryInput{Topic: "t", Date: "2024-01-06"}, "alice")
	assert.Error(t, err, "Saturday is not a business day")

	assert.Empty(t, sink.appends, "validation failures must not write")

	entry, err := svc.Create(ctx, EntryInput{Topic: "kickoff", Date: "2024-01-01", Category: "IoT"}, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.RecordID)
	assert.Equal(t, 1, entry.Day)
	assert.Len(t, sink.appends, 1)
}

func TestUpdatePreservesAuditFields(t *testing.T) {
	svc, sink := newWeeklyFixture([][]string{
		weeklyRowFor("WB-1", "2024-01-01", "IoT", "kickoff"),
	}, nil)

	updated, err := svc.Update(context.Background(), "WB-1",
		EntryInput{Topic: "kickoff v2", Date: "2024-01-02", Category: "IoT"}, "bob")
	require.NoError(t, err)

	assert.Equal(t, "alice", updated.Creator)
	assert.Equal(t, "2024-01-01T10:00:00Z", updated.CreatedTime)
	assert.Equal(t, 2, updated.RowIndex)
	assert.Contains(t, sink.updates, "WeeklyBusiness!A2:I2")
}

func TestDeleteChecksRowIndex(t *testing.T) {
	svc, sink := newWeeklyFixture([][]string{
		weeklyRowFor("WB-1", "2024-01-01", "IoT", "kickoff"),
	}, nil)
	ctx := context.Background()

	err := svc.Delete(ctx, "WB-1", 7)
	assert.Error(t, err, "stale row index must not delete")
	assert.Empty(t, sink.deletes)

	err = svc.Delete(ctx, "WB-1", 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, sink.deletes)

	err = svc.Delete(ctx, "WB-404", 2)
	assert.Error(t, err)
}
