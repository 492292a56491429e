// Package service orchestrates readers, writers, and the calendar adapter to
// serve one request each: load, join, mutate, invalidate.
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/reader"
	"github.com/TFC433/sheetcrm/internal/week"
	"github.com/TFC433/sheetcrm/internal/writer"
)

// HolidaySource is the slice of the calendar adapter the weekly grid needs.
type HolidaySource interface {
	HolidaysForPeriod(ctx context.Context, start, end time.Time) map[string]string
}

type WeeklyBusinessService struct {
	reader   *reader.WeeklyBusinessReader
	writer   *writer.WeeklyBusinessWriter
	holidays HolidaySource
	log      *zap.Logger
}

func NewWeeklyBusinessService(r *reader.WeeklyBusinessReader, w *writer.WeeklyBusinessWriter, holidays HolidaySource, log *zap.Logger) *WeeklyBusinessService {
	return &WeeklyBusinessService{reader: r, writer: w, holidays: holidays, log: log}
}

// Summaries groups every entry by its ISO week and returns one summary row
// per week, newest week first.
func (s *WeeklyBusinessService) Summaries(ctx context.Context) ([]model.WeekSummary, error) {
	entries, err := s.reader.Entries(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, e := range entries {
		t, err := time.ParseInLocation("2006-01-02", e.Date, time.UTC)
		if err != nil {
			s.log.Warn("skipping entry with malformed date",
				zap.String("record_id", e.RecordID), zap.String("date", e.Date))
			continue
		}
		counts[week.ID(t)]++
	}

	out := make([]model.WeekSummary, 0, len(counts))
	for id, count := range counts {
		info, err := week.For(id)
		if err != nil {
			continue
		}
		out = append(out, model.WeekSummary{
			ID:           id,
			Title:        info.Title,
			DateRange:    info.DateRange,
			SummaryCount: count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Detail assembles the grid for one week: the five business days with any
// holidays attached, plus that week's entries. A week with no entries is a
// valid empty grid, not an error.
func (s *WeeklyBusinessService) Detail(ctx context.Context, weekID string) (*model.WeekDetail, error) {
	info, err := week.For(weekID)
	if err != nil {
		return nil, err
	}

	entries, err := s.reader.ByWeek(ctx, weekID)
	if err != nil {
		return nil, err
	}

	holidays := s.holidays.HolidaysForPeriod(ctx, info.Start, info.End.AddDate(0, 0, 1))

	days := make([]model.WeekDay, len(info.Days))
	for i, d := range info.Days {
		days[i] = model.WeekDay{
			DayIndex:    d.DayIndex,
			Date:        d.Date,
			DisplayDate: d.DisplayDate,
			HolidayName: holidays[d.Date],
		}
	}

	return &model.WeekDetail{
		ID:        weekID,
		Title:     info.Title,
		DateRange: info.DateRange,
		Days:      days,
		Entries:   entries,
	}, nil
}

// EntryInput is the create/update payload for one weekly entry.
type EntryInput struct {
	Date         string `json:"date"`
	Category     string `json:"category"`
	Topic        string `json:"topic"`
	Participants string `json:"participants"`
	Summary      string `json:"summary"`
	ActionItems  string `json:"actionItems"`
	RowIndex     int    `json:"rowIndex"`
}

func (in EntryInput) validate() error {
	if in.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("invalid date %q", in.Date)
	}
	if week.DayIndexOf(in.Date) == 0 {
		return fmt.Errorf("date %q is not a business day", in.Date)
	}
	return nil
}

func (s *WeeklyBusinessService) Create(ctx context.Context, in EntryInput, creator string) (*model.WeeklyBusinessEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	entry := model.WeeklyBusinessEntry{
		RecordID:     "WB-" + uuid.New().String(),
		Date:         in.Date,
		Category:     in.Category,
		Topic:        in.Topic,
		Participants: in.Participants,
		Summary:      in.Summary,
		ActionItems:  in.ActionItems,
		CreatedTime:  time.Now().Format(time.RFC3339),
		Creator:      creator,
		Day:          week.DayIndexOf(in.Date),
	}
	if err := s.writer.Append(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *WeeklyBusinessService) Update(ctx context.Context, recordID string, in EntryInput, modifier string) (*model.WeeklyBusinessEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := s.findEntry(ctx, recordID)
	if err != nil {
		return nil, err
	}

	entry := model.WeeklyBusinessEntry{
		RecordID:     recordID,
		Date:         in.Date,
		Category:     in.Category,
		Topic:        in.Topic,
		Participants: in.Participants,
		Summary:      in.Summary,
		ActionItems:  in.ActionItems,
		CreatedTime:  existing.CreatedTime,
		Creator:      existing.Creator,
		RowIndex:     existing.RowIndex,
		Day:          week.DayIndexOf(in.Date),
	}
	if err := s.writer.Update(ctx, existing.RowIndex, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes one entry. rowIndex comes from the request body and is
// checked against the row the record currently occupies, so a delete aimed at
// a stale position fails instead of removing a neighbour.
func (s *WeeklyBusinessService) Delete(ctx context.Context, recordID string, rowIndex int) error {
	existing, err := s.findEntry(ctx, recordID)
	if err != nil {
		return err
	}
	if rowIndex != existing.RowIndex {
		return fmt.Errorf("row index %d is stale for record %s (now at %d)", rowIndex, recordID, existing.RowIndex)
	}
	return s.writer.Delete(ctx, existing.RowIndex)
}

func (s *WeeklyBusinessService) findEntry(ctx context.Context, recordID string) (*model.WeeklyBusinessEntry, error) {
	entries, err := s.reader.Entries(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].RecordID == recordID {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("weekly entry %s not found", recordID)
}
