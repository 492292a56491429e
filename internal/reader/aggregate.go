package reader

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/model"
)

// Aggregator joins across readers. It receives every reader it needs at
// construction; readers themselves never reach into each other.
type Aggregator struct {
	contacts  *ContactReader
	companies *CompanyReader
	cfg       *config.Config
	log       *zap.Logger
}

func NewAggregator(contacts *ContactReader, companies *CompanyReader, cfg *config.Config, log *zap.Logger) *Aggregator {
	return &Aggregator{contacts: contacts, companies: companies, cfg: cfg, log: log}
}

// LinkedContacts resolves the filed contacts attached to an opportunity.
// Only links whose status is exactly "active" count; with none, it returns
// empty without touching the other datasets. Otherwise the contact list,
// company list, and the unfiltered card list are fetched concurrently, the
// matching contacts get their company name resolved (falling back to the raw
// company id), and contacts filed from a business card get the card's drive
// link attached. A BC- reference that does not resolve to a card row simply
// leaves the drive link empty.
func (a *Aggregator) LinkedContacts(ctx context.Context, opportunityID string) ([]model.LinkedContact, error) {
	links, err := a.contacts.Links(ctx)
	if err != nil {
		return nil, err
	}

	linked := make(map[string]struct{})
	for _, l := range links {
		if l.OpportunityID == opportunityID && l.Active() {
			linked[l.ContactID] = struct{}{}
		}
	}
	if len(linked) == 0 {
		return []model.LinkedContact{}, nil
	}

	var (
		filed     []model.ContactListEntry
		companies map[string]string
		cards     []model.ContactCard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		filed, err = a.contacts.ContactList(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		companies, err = a.companies.NameMap(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cards, err = a.contacts.Cards(gctx, a.cfg.Limits.ContactRowsMax)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cardsByRow := make(map[int]model.ContactCard, len(cards))
	for _, c := range cards {
		cardsByRow[c.RowIndex] = c
	}

	out := make([]model.LinkedContact, 0, len(linked))
	for _, c := range filed {
		if _, ok := linked[c.ContactID]; !ok {
			continue
		}

		driveLink := ""
		if ref := model.ParseSourceRef(c.SourceID); ref.IsCard {
			if card, ok := cardsByRow[ref.RowIndex]; ok {
				driveLink = card.DriveLink
			}
		}

		companyName, ok := companies[c.CompanyID]
		if !ok || companyName == "" {
			companyName = c.CompanyID
		}

		out = append(out, model.LinkedContact{
			ContactID:   c.ContactID,
			SourceID:    c.SourceID,
			Name:        c.Name,
			CompanyID:   c.CompanyID,
			Department:  c.Department,
			Position:    c.Position,
			Mobile:      c.Mobile,
			Phone:       c.Phone,
			Email:       c.Email,
			CompanyName: companyName,
			DriveLink:   driveLink,
		})
	}
	return out, nil
}

// SearchContactList joins filed contacts with company names, filters by a
// case-insensitive substring match on name or company name, and returns one
// fixed-size page. The card search (ContactReader.SearchCards) deliberately
// does not paginate; this one is the primary list page and does.
func (a *Aggregator) SearchContactList(ctx context.Context, query string, page int) (*model.ContactListPage, error) {
	if page < 1 {
		page = 1
	}

	var (
		filed     []model.ContactListEntry
		companies map[string]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		filed, err = a.contacts.ContactList(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		companies, err = a.companies.NameMap(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]model.ContactListView, 0, len(filed))
	term := strings.ToLower(query)
	for _, c := range filed {
		companyName, ok := companies[c.CompanyID]
		if !ok || companyName == "" {
			companyName = c.CompanyID
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(companyName), term) {
			continue
		}
		views = append(views, model.ContactListView{ContactListEntry: c, CompanyName: companyName})
	}

	pageSize := a.cfg.Pagination.ContactsPerPage
	totalItems := len(views)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return &model.ContactListPage{
		Data: views[start:end],
		Pagination: model.Pagination{
			Current:    page,
			Total:      (totalItems + pageSize - 1) / pageSize,
			TotalItems: totalItems,
			HasNext:    (page-1)*pageSize+pageSize < totalItems,
			HasPrev:    page > 1,
		},
	}, nil
}
