package reader

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/config"
)

// fakeSource serves canned ranges and records which ranges were fetched.
type fakeSource struct {
	mu     sync.Mutex
	data   map[string][][]string
	failOn map[string]error
	calls  []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		data:   make(map[string][][]string),
		failOn: make(map[string]error),
	}
}

func (f *fakeSource) GetRange(_ context.Context, a1Range string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, a1Range)
	if err, ok := f.failOn[a1Range]; ok {
		return nil, err
	}
	return f.data[a1Range], nil
}

func (f *fakeSource) fetched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fixture struct {
	src       *fakeSource
	cfg       *config.Config
	contacts  *ContactReader
	companies *CompanyReader
	agg       *Aggregator
}

func newFixture() *fixture {
	src := newFakeSource()
	cfg := config.Default()
	store := cache.NewStore(zap.NewNop())
	log := zap.NewNop()

	contacts := NewContactReader(src, store, cfg, log)
	companies := NewCompanyReader(src, store, cfg, log)
	return &fixture{
		src:       src,
		cfg:       cfg,
		contacts:  contacts,
		companies: companies,
		agg:       NewAggregator(contacts, companies, cfg, log),
	}
}

// cardRow builds a contacts-tab row under the default field positions.
func cardRow(created, name, company, driveLink string) []string {
	row := make([]string, 14)
	row[0] = created
	row[1] = name
	row[2] = company
	row[11] = driveLink
	return row
}

func contactListRow(contactID, sourceID, name, companyID string) []string {
	return []string{contactID, sourceID, name, companyID, "Sales", "Manager",
		"0912-000-000", "02-0000-0000", name + "@example.com",
		"2024-01-01", "2024-01-02", "alice", "bob"}
}

func linkRow(linkID, oppID, contactID, status string) []string {
	return []string{linkID, oppID, contactID, status, "2024-01-01", "alice"}
}

func companyRow(companyID, name string) []string {
	return []string{companyID, name, "vendor", "evaluation", "A",
		"02-1111-1111", "Taipei", "No. 1, Some Rd.", "", "2024-01-01", "alice"}
}

var header = func(n int) []string { return make([]string, n) }
