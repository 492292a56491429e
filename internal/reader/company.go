package reader

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/sheets"
)

type CompanyReader struct {
	src   sheets.ValueSource
	cache *cache.Store
	cfg   *config.Config
	log   *zap.Logger
}

func NewCompanyReader(src sheets.ValueSource, store *cache.Store, cfg *config.Config, log *zap.Logger) *CompanyReader {
	return &CompanyReader{src: src, cache: store, cfg: cfg, log: log}
}

func (r *CompanyReader) Companies(ctx context.Context) ([]model.Company, error) {
	return fetchCached(ctx, r.cache, r.src, cache.KeyCompanies,
		r.cfg.Tabs.Companies+"!A:K",
		func(row []string, _ int) model.Company {
			return model.Company{
				CompanyID:        cell(row, 0),
				CompanyName:      cell(row, 1),
				CompanyType:      cell(row, 2),
				CustomerStage:    cell(row, 3),
				EngagementRating: cell(row, 4),
				Phone:            cell(row, 5),
				County:           cell(row, 6),
				Address:          cell(row, 7),
				Introduction:     cell(row, 8),
				CreatedTime:      cell(row, 9),
				Creator:          cell(row, 10),
			}
		},
		nil,
	)
}

// NameMap returns companyId -> companyName for display fallback joins.
func (r *CompanyReader) NameMap(ctx context.Context) (map[string]string, error) {
	companies, err := r.Companies(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(companies))
	for _, c := range companies {
		m[c.CompanyID] = c.CompanyName
	}
	return m, nil
}

// ByName finds a company by exact name, case-insensitively. A miss returns
// nil without error; callers treat it as valid-but-empty.
func (r *CompanyReader) ByName(ctx context.Context, name string) (*model.Company, error) {
	companies, err := r.Companies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range companies {
		if strings.EqualFold(companies[i].CompanyName, name) {
			return &companies[i], nil
		}
	}
	return nil, nil
}
