package model

// EventLog is a row from the event-log tab. RowIndex addresses the sheet row
// for updates and deletes.
type EventLog struct {
	EventID       string `json:"eventId"`
	OpportunityID string `json:"opportunityId"`
	CompanyID     string `json:"companyId"`
	EventType     string `json:"eventType"`
	EventTime     string `json:"eventTime"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	CalendarID    string `json:"calendarEventId"`
	Creator       string `json:"creator"`
	CreatedTime   string `json:"createdTime"`
	RowIndex      int    `json:"rowIndex"`
}

// Interaction is a row from the interactions tab.
type Interaction struct {
	OpportunityID string `json:"opportunityId"`
	CompanyID     string `json:"companyId"`
	EventType     string `json:"eventType"`
	Time          string `json:"time"`
	Summary       string `json:"summary"`
	NextAction    string `json:"nextAction"`
	Creator       string `json:"creator"`
	RowIndex      int    `json:"rowIndex"`
}

// Option is one value/label pair from the system-configuration tab.
type Option struct {
	Value string `json:"value"`
	Note  string `json:"note"`
}
