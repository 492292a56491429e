package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TFC433/sheetcrm/internal/model"
	"github.com/TFC433/sheetcrm/internal/reader"
)

// CompanyService assembles the company-details page: one aggregate payload
// spanning six datasets.
type CompanyService struct {
	companies     *reader.CompanyReader
	contacts      *reader.ContactReader
	opportunities *reader.OpportunityReader
	interactions  *reader.InteractionReader
	eventLogs     *reader.EventLogReader
	log           *zap.Logger
}

func NewCompanyService(
	companies *reader.CompanyReader,
	contacts *reader.ContactReader,
	opportunities *reader.OpportunityReader,
	interactions *reader.InteractionReader,
	eventLogs *reader.EventLogReader,
	log *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companies:     companies,
		contacts:      contacts,
		opportunities: opportunities,
		interactions:  interactions,
		eventLogs:     eventLogs,
		log:           log,
	}
}

// Details aggregates everything known about one company. A name with no
// company row is still served: business cards mentioning the name become the
// potential contacts, and everything keyed by company id stays empty. The
// independent fetches run concurrently; any failure fails the whole request.
func (s *CompanyService) Details(ctx context.Context, name string) (*model.CompanyDetails, error) {
	company, err := s.companies.ByName(ctx, name)
	if err != nil {
		return nil, err
	}

	details := &model.CompanyDetails{
		Contacts:          []model.ContactListView{},
		Opportunities:     []model.Opportunity{},
		PotentialContacts: []model.ContactCard{},
		Interactions:      []model.Interaction{},
		EventLogs:         []model.EventLog{},
	}

	companyID := ""
	if company != nil {
		details.CompanyInfo = company
		companyID = company.CompanyID
	} else {
		details.CompanyInfo = &model.Company{CompanyName: name}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cards, err := s.contacts.Cards(gctx, 0)
		if err != nil {
			return err
		}
		for _, c := range cards {
			if strings.EqualFold(c.Company, name) {
				details.PotentialContacts = append(details.PotentialContacts, c)
			}
		}
		return nil
	})
	if companyID != "" {
		g.Go(func() error {
			all, err := s.contacts.ContactList(gctx)
			if err != nil {
				return err
			}
			for _, c := range all {
				if c.CompanyID == companyID {
					details.Contacts = append(details.Contacts, model.ContactListView{
						ContactListEntry: c,
						CompanyName:      details.CompanyInfo.CompanyName,
					})
				}
			}
			return nil
		})
		g.Go(func() error {
			opps, err := s.opportunities.ByCompany(gctx, companyID)
			if err != nil {
				return err
			}
			details.Opportunities = opps
			return nil
		})
		g.Go(func() error {
			inter, err := s.interactions.ByCompany(gctx, companyID)
			if err != nil {
				return err
			}
			details.Interactions = inter
			return nil
		})
		g.Go(func() error {
			logs, err := s.eventLogs.ByCompany(gctx, companyID)
			if err != nil {
				return err
			}
			details.EventLogs = logs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}
