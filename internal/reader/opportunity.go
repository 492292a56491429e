package reader

import (
	"context"

	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/sheets"
)

type OpportunityReader struct {
	src   sheets.ValueSource
	cache *cache.Store
	cfg   *config.Config
	log   *zap.Logger
}

func NewOpportunityReader(src sheets.ValueSource, store *cache.Store, cfg *config.Config, log *zap.Logger) *OpportunityReader {
	return &OpportunityReader{src: src, cache: store, cfg: cfg, log: log}
}

func (r *OpportunityReader) Opportunities(ctx context.Context) ([]model.Opportunity, error) {
	return fetchCached(ctx, r.cache, r.src, cache.KeyOpportunities,
		r.cfg.Tabs.Opportunities+"!A:I",
		func(row []string, _ int) model.Opportunity {
			return model.Opportunity{
				OpportunityID:   cell(row, 0),
				OpportunityName: cell(row, 1),
				CompanyID:       cell(row, 2),
				Stage:           cell(row, 3),
				Status:          cell(row, 4),
				Owner:           cell(row, 5),
				ExpectedClose:   cell(row, 6),
				CreatedTime:     cell(row, 7),
				LastUpdateTime:  cell(row, 8),
			}
		},
		nil,
	)
}

// ByCompany returns the opportunities belonging to one company.
func (r *OpportunityReader) ByCompany(ctx context.Context, companyID string) ([]model.Opportunity, error) {
	all, err := r.Opportunities(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Opportunity, 0)
	for _, o := range all {
		if o.CompanyID == companyID {
			out = append(out, o)
		}
	}
	return out, nil
}
