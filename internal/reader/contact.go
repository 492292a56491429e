package reader

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/sheets"
)

// ContactReader reads the three contact-related datasets: raw business cards,
// the filed contact list, and the opportunity-contact link table.
type ContactReader struct {
	src   sheets.ValueSource
	cache *cache.Store
	cfg   *config.Config
	log   *zap.Logger
}

func NewContactReader(src sheets.ValueSource, store *cache.Store, cfg *config.Config, log *zap.Logger) *ContactReader {
	return &ContactReader{src: src, cache: store, cfg: cfg, log: log}
}

// Cards returns up to limit business-card rows, newest first. Rows with an
// empty name and company are NOT filtered out here: downstream joins address
// cards by sheet row, and dropping rows would shift nothing but still lose
// the targets of BC- references. Search-facing filtering happens in
// SearchCards only. limit <= 0 means the configured default cap.
func (r *ContactReader) Cards(ctx context.Context, limit int) ([]model.ContactCard, error) {
	if limit <= 0 {
		limit = r.cfg.Limits.ContactRows
	}
	f := r.cfg.ContactFields
	all, err := fetchCached(ctx, r.cache, r.src, cache.KeyContacts,
		r.cfg.Tabs.Contacts+"!A:Y",
		func(row []string, sheetRow int) model.ContactCard {
			return model.ContactCard{
				RowIndex:     sheetRow,
				CreatedTime:  cell(row, f.Time),
				Name:         cell(row, f.Name),
				Company:      cell(row, f.Company),
				Position:     cell(row, f.Position),
				Department:   cell(row, f.Department),
				Phone:        cell(row, f.Phone),
				Mobile:       cell(row, f.Mobile),
				Email:        cell(row, f.Email),
				Website:      cell(row, f.Website),
				Address:      cell(row, f.Address),
				Confidence:   cell(row, f.Confidence),
				DriveLink:    cell(row, f.DriveLink),
				Status:       cell(row, f.Status),
				UserNickname: cell(row, f.UserNickname),
			}
		},
		cardNewerFirst,
	)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// cardNewerFirst orders by created time descending; rows whose timestamp does
// not parse sink to the end.
func cardNewerFirst(a, b model.ContactCard) bool {
	ta, errA := parseLooseTime(a.CreatedTime)
	tb, errB := parseLooseTime(b.CreatedTime)
	if errB != nil {
		return errA == nil
	}
	if errA != nil {
		return false
	}
	return ta.After(tb)
}

var looseTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

func parseLooseTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range looseTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ContactList returns every filed contact, in sheet order.
func (r *ContactReader) ContactList(ctx context.Context) ([]model.ContactListEntry, error) {
	return fetchCached(ctx, r.cache, r.src, cache.KeyContactList,
		r.cfg.Tabs.ContactList+"!A:M",
		func(row []string, _ int) model.ContactListEntry {
			return model.ContactListEntry{
				ContactID:      cell(row, 0),
				SourceID:       cell(row, 1),
				Name:           cell(row, 2),
				CompanyID:      cell(row, 3),
				Department:     cell(row, 4),
				Position:       cell(row, 5),
				Mobile:         cell(row, 6),
				Phone:          cell(row, 7),
				Email:          cell(row, 8),
				CreatedTime:    cell(row, 9),
				LastUpdateTime: cell(row, 10),
				Creator:        cell(row, 11),
				LastModifier:   cell(row, 12),
			}
		},
		nil,
	)
}

// Links returns every opportunity-contact link row, active or not.
func (r *ContactReader) Links(ctx context.Context) ([]model.OpportunityContactLink, error) {
	return fetchCached(ctx, r.cache, r.src, cache.KeyOppContactLinks,
		r.cfg.Tabs.OppContactLink+"!A:F",
		func(row []string, _ int) model.OpportunityContactLink {
			return model.OpportunityContactLink{
				LinkID:        cell(row, 0),
				OpportunityID: cell(row, 1),
				ContactID:     cell(row, 2),
				Status:        cell(row, 3),
				CreateTime:    cell(row, 4),
				Creator:       cell(row, 5),
			}
		},
		nil,
	)
}

// SearchCards filters business cards for the card-browsing page: rows with
// neither name nor company are dropped, then a case-insensitive substring
// match on name or company is applied when query is non-empty. The whole
// filtered set is returned; the card view does its own paging client-side.
func (r *ContactReader) SearchCards(ctx context.Context, query string) ([]model.ContactCard, error) {
	cards, err := r.Cards(ctx, 0)
	if err != nil {
		return nil, err
	}

	out := make([]model.ContactCard, 0, len(cards))
	term := strings.ToLower(query)
	for _, c := range cards {
		if c.Name == "" && c.Company == "" {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Company), term) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
