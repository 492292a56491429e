package reader

import (
	"context"

	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/sheets"
)

type EventLogReader struct {
	src   sheets.ValueSource
	cache *cache.Store
	cfg   *config.Config
	log   *zap.Logger
}

func NewEventLogReader(src sheets.ValueSource, store *cache.Store, cfg *config.Config, log *zap.Logger) *EventLogReader {
	return &EventLogReader{src: src, cache: store, cfg: cfg, log: log}
}

func (r *EventLogReader) Logs(ctx context.Context) ([]model.EventLog, error) {
	return fetchCached(ctx, r.cache, r.src, cache.KeyEventLogs,
		r.cfg.Tabs.EventLogs+"!A:K",
		func(row []string, sheetRow int) model.EventLog {
			return model.EventLog{
				EventID:       cell(row, 0),
				OpportunityID: cell(row, 1),
				CompanyID:     cell(row, 2),
				EventType:     cell(row, 3),
				EventTime:     cell(row, 4),
				Title:         cell(row, 5),
				Description:   cell(row, 6),
				Location:      cell(row, 7),
				CalendarID:    cell(row, 8),
				Creator:       cell(row, 9),
				CreatedTime:   cell(row, 10),
				RowIndex:      sheetRow,
			}
		},
		nil,
	)
}

// ByID finds one event log. A miss returns nil without error.
func (r *EventLogReader) ByID(ctx context.Context, eventID string) (*model.EventLog, error) {
	logs, err := r.Logs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].EventID == eventID {
			return &logs[i], nil
		}
	}
	return nil, nil
}

// ByCompany returns the event logs recorded against one company.
func (r *EventLogReader) ByCompany(ctx context.Context, companyID string) ([]model.EventLog, error) {
	logs, err := r.Logs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.EventLog, 0)
	for _, l := range logs {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out, nil
}
