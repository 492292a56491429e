package model

// Company is a row from the companies tab.
type Company struct {
	CompanyID        string `json:"companyId"`
	CompanyName      string `json:"companyName"`
	CompanyType      string `json:"companyType"`
	CustomerStage    string `json:"customerStage"`
	EngagementRating string `json:"engagementRating"`
	Phone            string `json:"phone"`
	County           string `json:"county"`
	Address          string `json:"address"`
	Introduction     string `json:"introduction"`
	CreatedTime      string `json:"createdTime"`
	Creator          string `json:"creator"`
}

// Opportunity is a row from the opportunities tab.
type Opportunity struct {
	OpportunityID   string `json:"opportunityId"`
	OpportunityName string `json:"opportunityName"`
	CompanyID       string `json:"companyId"`
	Stage           string `json:"stage"`
	Status          string `json:"status"`
	Owner           string `json:"owner"`
	ExpectedClose   string `json:"expectedClose"`
	CreatedTime     string `json:"createdTime"`
	LastUpdateTime  string `json:"lastUpdateTime"`
}

// CompanyDetails aggregates everything the company page shows in one payload.
type CompanyDetails struct {
	CompanyInfo       *Company          `json:"companyInfo"`
	Contacts          []ContactListView `json:"contacts"`
	Opportunities     []Opportunity     `json:"opportunities"`
	PotentialContacts []ContactCard     `json:"potentialContacts"`
	Interactions      []Interaction     `json:"interactions"`
	EventLogs         []EventLog        `json:"eventLogs"`
}
