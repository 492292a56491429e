package writer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/sheets"
)

type EventLogWriter struct {
	sink  sheets.RowSink
	cache *cache.Store
	cfg   *config.Config
	log   *zap.Logger
}

func NewEventLogWriter(sink sheets.RowSink, store *cache.Store, cfg *config.Config, log *zap.Logger) *EventLogWriter {
	return &EventLogWriter{sink: sink, cache: store, cfg: cfg, log: log}
}

func eventLogRow(e model.EventLog) []any {
	return []any{
		e.EventID, e.OpportunityID, e.CompanyID, e.EventType, e.EventTime,
		e.Title, e.Description, e.Location, e.CalendarID, e.Creator, e.CreatedTime,
	}
}

func (w *EventLogWriter) Append(ctx context.Context, e model.EventLog) error {
	rng := w.cfg.Tabs.EventLogs + "!A:K"
	if err := w.sink.AppendRow(ctx, rng, eventLogRow(e)); err != nil {
		return err
	}
	w.cache.Invalidate(cache.KeyEventLogs)
	w.log.Info("event log appended", zap.String("event_id", e.EventID))
	return nil
}

func (w *EventLogWriter) Update(ctx context.Context, rowIndex int, e model.EventLog) error {
	if rowIndex < 2 {
		return fmt.Errorf("invalid row index %d", rowIndex)
	}
	rng := fmt.Sprintf("%s!A%d:K%d", w.cfg.Tabs.EventLogs, rowIndex, rowIndex)
	if err := w.sink.UpdateRow(ctx, rng, eventLogRow(e)); err != nil {
		return err
	}
	w.cache.Invalidate(cache.KeyEventLogs)
	w.log.Info("event log updated", zap.String("event_id", e.EventID), zap.Int("row", rowIndex))
	return nil
}

func (w *EventLogWriter) Delete(ctx context.Context, rowIndex int) error {
	if rowIndex < 2 {
		return fmt.Errorf("invalid row index %d", rowIndex)
	}
	if err := w.sink.DeleteRow(ctx, w.cfg.Tabs.EventLogs, rowIndex); err != nil {
		return err
	}
	w.cache.Invalidate(cache.KeyEventLogs)
	w.log.Info("event log deleted", zap.Int("row", rowIndex))
	return nil
}
