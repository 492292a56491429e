package reader

import (
	"context"

	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/sheets"
)

// SystemReader reads the configuration tab: rows of (list name, value, note)
// that drive dropdowns and labels across the UI.
type SystemReader struct {
	src   sheets.ValueSource
	cache *cache.Store
	cfg   *config.Config
	log   *zap.Logger
}

func NewSystemReader(src sheets.ValueSource, store *cache.Store, cfg *config.Config, log *zap.Logger) *SystemReader {
	return &SystemReader{src: src, cache: store, cfg: cfg, log: log}
}

type systemRow struct {
	list  string
	value string
	note  string
}

// Options returns the configuration lists grouped by list name.
func (r *SystemReader) Options(ctx context.Context) (map[string][]model.Option, error) {
	rows, err := fetchCached(ctx, r.cache, r.src, cache.KeySystemConfig,
		r.cfg.Tabs.System+"!A:C",
		func(row []string, _ int) systemRow {
			return systemRow{list: cell(row, 0), value: cell(row, 1), note: cell(row, 2)}
		},
		nil,
	)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]model.Option)
	for _, row := range rows {
		if row.list == "" {
			continue
		}
		out[row.list] = append(out[row.list], model.Option{Value: row.value, Note: row.note})
	}
	return out, nil
}
