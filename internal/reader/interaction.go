package reader

import (
	"context"

	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/sheets"
)

type InteractionReader struct {
	src   sheets.ValueSource
	cache *cache.Store
	cfg   *config.Config
	log   *zap.Logger
}

func NewInteractionReader(src sheets.ValueSource, store *cache.Store, cfg *config.Config, log *zap.Logger) *InteractionReader {
	return &InteractionReader{src: src, cache: store, cfg: cfg, log: log}
}

func (r *InteractionReader) Interactions(ctx context.Context) ([]model.Interaction, error) {
	return fetchCached(ctx, r.cache, r.src, cache.KeyInteractions,
		r.cfg.Tabs.Interactions+"!A:G",
		func(row []string, sheetRow int) model.Interaction {
			return model.Interaction{
				OpportunityID: cell(row, 0),
				CompanyID:     cell(row, 1),
				EventType:     cell(row, 2),
				Time:          cell(row, 3),
				Summary:       cell(row, 4),
				NextAction:    cell(row, 5),
				Creator:       cell(row, 6),
				RowIndex:      sheetRow,
			}
		},
		nil,
	)
}

// ByCompany returns the interactions recorded against one company.
func (r *InteractionReader) ByCompany(ctx context.Context, companyID string) ([]model.Interaction, error) {
	all, err := r.Interactions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Interaction, 0)
	for _, it := range all {
		if it.CompanyID == companyID {
			out = append(out, it)
		}
	}
	return out, nil
}
