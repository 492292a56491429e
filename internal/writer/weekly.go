// Package writer mutates the backing spreadsheet and invalidates the row
// cache after every successful write. The spreadsheet offers no transactions;
// two concurrent writers on the same tab can race, and the system settles for
// eventual consistency through invalidation.
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

type WeeklyBusinessWriter struct {
	sink  sheets.RowSink
	cache *cache.Store
	cfg   *config.Config
	log   *zap.Logger
}

func NewWeeklyBusinessWriter(sink sheets.RowSink, store *cache.Store, cfg *config.Config, log *zap.Logger) *WeeklyBusinessWriter {
	return &WeeklyBusinessWriter{sink: sink, cache: store, cfg: cfg, log: log}
}

func weeklyRow(e model.WeeklyBusinessEntry) []any {
	return []any{
		e.RecordID, e.Date, e.Category, e.Topic,
		e.Participants, e.Summary, e.ActionItems,
		e.CreatedTime, e.Creator,
	}
}

func (w *WeeklyBusinessWriter) Append(ctx context.Context, e model.WeeklyBusinessEntry) error {
	rng := w.cfg.Tabs.WeeklyBusiness + "!A:I"
	if err := w.sink.AppendRow(ctx, rng, weeklyRow(e)); err != nil {
		return err
	}
	w.cache.Invalidate(cache.KeyWeeklyBusiness)
	w.log.Info("weekly entry appended", zap.String("record_id", e.RecordID))
	return nil
}

func (w *WeeklyBusinessWriter) Update(ctx context.Context, rowIndex int, e model.WeeklyBusinessEntry) error {
	if rowIndex < 2 {
		return fmt.Errorf("invalid row index %d", rowIndex)
	}
	rng := fmt.Sprintf("%s!A%d:I%d", w.cfg.Tabs.WeeklyBusiness, rowIndex, rowIndex)
	if err := w.sink.UpdateRow(ctx, rng, weeklyRow(e)); err != nil {
		return err
	}
	w.cache.Invalidate(cache.KeyWeeklyBusiness)
	w.log.Info("weekly entry updated", zap.String("record_id", e.RecordID), zap.Int("row", rowIndex))
	return nil
}

func (w *WeeklyBusinessWriter) Delete(ctx context.Context, rowIndex int) error {
	if rowIndex < 2 {
		return fmt.Errorf("invalid row index %d", rowIndex)
	}
	if err := w.sink.DeleteRow(ctx, w.cfg.Tabs.WeeklyBusiness, rowIndex); err != nil {
		return err
	}
	w.cache.Invalidate(cache.KeyWeeklyBusiness)
	w.log.Info("weekly entry deleted", zap.Int("row", rowIndex))
	return nil
}
