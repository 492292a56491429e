package model

// ContactCard is a raw business-card row from the contacts tab. Cards have no
// stable ID column; identity is the spreadsheet row they occupy, so RowIndex
// doubles as the foreign key other tabs point at via a "BC-<row>" source ref.
type ContactCard struct {
	RowIndex     int    `json:"rowIndex"`
	CreatedTime  string `json:"createdTime"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	Position     string `json:"position"`
	Department   string `json:"department"`
	Phone        string `json:"phone"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	Address      string `json:"address"`
	Confidence   string `json:"confidence"`
	DriveLink    string `json:"driveLink"`
	Status       string `json:"status"`
	UserNickname string `json:"userNickname"`
}

// ContactListEntry is a filed contact with a stable ID and audit columns.
type ContactListEntry struct {
	ContactID      string `json:"contactId"`
	SourceID       string `json:"sourceId"`
	Name           string `json:"name"`
	CompanyID      string `json:"companyId"`
	Department     string `json:"department"`
	Position       string `json:"position"`
	Mobile         string `json:"mobile"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	CreatedTime    string `json:"createdTime"`
	LastUpdateTime string `json:"lastUpdateTime"`
	Creator        string `json:"creator"`
	LastModifier   string `json:"lastModifier"`
}

// ContactListView is a ContactListEntry with the company name resolved.
type ContactListView struct {
	ContactListEntry
	CompanyName string `json:"companyName"`
}

// LinkedContact is the enriched view returned when resolving the contacts
// attached to an opportunity: company name resolved and, when the contact was
// filed from a business card, the card's drive link attached.
type LinkedContact struct {
	ContactID   string `json:"contactId"`
	SourceID    string `json:"sourceId"`
	Name        string `json:"name"`
	CompanyID   string `json:"companyId"`
	Department  string `json:"department"`
	Position    string `json:"position"`
	Mobile      string `json:"mobile"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	DriveLink   string `json:"driveLink"`
}

// LinkStatusActive is the only status value under which an
// opportunity-contact link participates in joins.
const LinkStatusActive = "active"

// OpportunityContactLink bridges opportunities and filed contacts.
type OpportunityContactLink struct {
	LinkID        string `json:"linkId"`
	OpportunityID string `json:"opportunityId"`
	ContactID     string `json:"contactId"`
	Status        string `json:"status"`
	CreateTime    string `json:"createTime"`
	Creator       string `json:"creator"`
}

// Active reports whether the link participates in contact resolution.
// Anything other than the literal "active" is excluded.
func (l OpportunityContactLink) Active() bool {
	return l.Status == LinkStatusActive
}
