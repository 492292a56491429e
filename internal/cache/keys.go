package cache

// Dataset keys shared between the readers that fill them and the writers
// that invalidate them.
const (
	KeyContacts        = "contacts"
	KeyContactList     = "contactList"
	KeyOppContactLinks = "oppContactLinks"
	KeyCompanies       = "companies"
	KeyOpportunities   = "opportunities"
	KeyWeeklyBusiness  = "weeklyBusiness"
	KeyEventLogs       = "eventLogs"
	KeyInteractions    = "interactions"
	KeySystemConfig    = "systemConfig"
)
