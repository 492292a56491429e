package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/calendar"
	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/reader"
	"github.com/TFC433/sheetcrm/internal/writer"
)

// EventCreator is the calendar-insert slice of the adapter; nil disables
// calendar coupling entirely.
type EventCreator interface {
	CreateEvent(ctx context.Context, in calendar.EventInput) (*calendar.CreatedEvent, error)
}

type EventLogService struct {
	reader   *reader.EventLogReader
	writer   *writer.EventLogWriter
	calendar EventCreator
	log      *zap.Logger
}

func NewEventLogService(r *reader.EventLogReader, w *writer.EventLogWriter, cal EventCreator, log *zap.Logger) *EventLogService {
	return &EventLogService{reader: r, writer: w, calendar: cal, log: log}
}

// Reader exposes the underlying reader for plain lookups.
func (s *EventLogService) Reader() *reader.EventLogReader {
	return s.reader
}

// EventLogInput is the create/update payload for one event log.
type EventLogInput struct {
	OpportunityID string `json:"opportunityId"`
	CompanyID     string `json:"companyId"`
	EventType     string `json:"eventType"`
	EventTime     string `json:"eventTime"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	AddToCalendar bool   `json:"addToCalendar"`
	Duration      int    `json:"duration"`
}

func (in EventLogInput) validate() error {
	if in.Title == "" {
		return fmt.Errorf("title is required")
	}
	if in.EventType == "" {
		return fmt.Errorf("eventType is required")
	}
	return nil
}

// Create appends an event log and, when asked, mirrors it onto the CRM
// calendar. The calendar insert runs first so its failure surfaces before
// any row is written.
func (s *EventLogService) Create(ctx context.Context, in EventLogInput, creator string) (*model.EventLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	calendarID := ""
	if in.AddToCalendar && s.calendar != nil {
		created, err := s.calendar.CreateEvent(ctx, calendar.EventInput{
			Title:           in.Title,
			Description:     in.Description,
			Location:        in.Location,
			StartTime:       in.EventTime,
			DurationMinutes: in.Duration,
		})
		if err != nil {
			return nil, err
		}
		calendarID = created.EventID
	}

	entry := model.EventLog{
		EventID:       "EVT-" + uuid.New().String(),
		OpportunityID: in.OpportunityID,
		CompanyID:     in.CompanyID,
		EventType:     in.EventType,
		EventTime:     in.EventTime,
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		CalendarID:    calendarID,
		Creator:       creator,
		CreatedTime:   time.Now().Format(time.RFC3339),
	}
	if err := s.writer.Append(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *EventLogService) Update(ctx context.Context, eventID string, in EventLogInput, modifier string) (*model.EventLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := s.reader.ByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("event log %s not found", eventID)
	}

	entry := model.EventLog{
		EventID:       eventID,
		OpportunityID: in.OpportunityID,
		CompanyID:     in.CompanyID,
		EventType:     in.EventType,
		EventTime:     in.EventTime,
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		CalendarID:    existing.CalendarID,
		Creator:       existing.Creator,
		CreatedTime:   existing.CreatedTime,
		RowIndex:      existing.RowIndex,
	}
	if err := s.writer.Update(ctx, existing.RowIndex, entry); err != nil {
		return nil, err
	}
	s.log.Info("event log updated", zap.String("event_id", eventID), zap.String("modifier", modifier))
	return &entry, nil
}

func (s *EventLogService) Delete(ctx context.Context, eventID string) error {
	existing, err := s.reader.ByID(ctx, eventID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("event log %s not found", eventID)
	}
	return s.writer.Delete(ctx, existing.RowIndex)
}
