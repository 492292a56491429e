package reader

import (
	"context"

	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/sheets"
	"github.com/TFC433/sheetcrm/internal/week"
)

type WeeklyBusinessReader struct {
	src   sheets.ValueSource
	cache *cache.Store
	cfg   *config.Config
	log   *zap.Logger
}

func NewWeeklyBusinessReader(src sheets.ValueSource, store *cache.Store, cfg *config.Config, log *zap.Logger) *WeeklyBusinessReader {
	return &WeeklyBusinessReader{src: src, cache: store, cfg: cfg, log: log}
}

// Entries returns every weekly-business row. Day is derived from the date so
// the grid can place the entry without re-parsing.
func (r *WeeklyBusinessReader) Entries(ctx context.Context) ([]model.WeeklyBusinessEntry, error) {
	return fetchCached(ctx, r.cache, r.src, cache.KeyWeeklyBusiness,
		r.cfg.Tabs.WeeklyBusiness+"!A:I",
		func(row []string, sheetRow int) model.WeeklyBusinessEntry {
			date := cell(row, 1)
			return model.WeeklyBusinessEntry{
				RecordID:     cell(row, 0),
				Date:         date,
				Category:     cell(row, 2),
				Topic:        cell(row, 3),
				Participants: cell(row, 4),
				Summary:      cell(row, 5),
				ActionItems:  cell(row, 6),
				CreatedTime:  cell(row, 7),
				Creator:      cell(row, 8),
				RowIndex:     sheetRow,
				Day:          week.DayIndexOf(date),
			}
		},
		nil,
	)
}

// ByWeek returns the entries whose date falls in the identified week.
func (r *WeeklyBusinessReader) ByWeek(ctx context.Context, weekID string) ([]model.WeeklyBusinessEntry, error) {
	all, err := r.Entries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.WeeklyBusinessEntry, 0)
	for _, e := range all {
		if t, err := parseLooseTime(e.Date); err == nil && week.ID(t) == weekID {
			out = append(out, e)
		}
	}
	return out, nil
}
