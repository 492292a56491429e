package model

// WeeklyBusinessEntry is a row from the weekly-business tab. Date must fall on
// one of the week's five business days (Mon-Fri); the grid has no weekend
// columns.
type WeeklyBusinessEntry struct {
	RecordID     string `json:"recordId"`
	Date         string `json:"date"`
	Category     string `json:"category"`
	Topic        string `json:"topic"`
	Participants string `json:"participants"`
	Summary      string `json:"summary"`
	ActionItems  string `json:"actionItems"`
	CreatedTime  string `json:"createdTime"`
	Creator      string `json:"creator"`
	RowIndex     int    `json:"rowIndex"`
	Day          int    `json:"day"`
}

// WeekDay is one business day of a week grid.
type WeekDay struct {
	DayIndex    int    `json:"dayIndex"`
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
	HolidayName string `json:"holidayName,omitempty"`
}

// WeekSummary is one row of the week-list page.
type WeekSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	DateRange    string `json:"dateRange"`
	SummaryCount int    `json:"summaryCount"`
}

// WeekDetail is the full grid for one week: the five business days (with any
// holidays attached) plus every entry recorded in that week.
type WeekDetail struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	DateRange string                `json:"dateRange"`
	Days      []WeekDay             `json:"days"`
	Entries   []WeeklyBusinessEntry `json:"entries"`
}

// Pagination is the envelope attached to paginated list responses.
type Pagination struct {
	Current    int  `json:"current"`
	Total      int  `json:"total"`
	TotalItems int  `json:"totalItems"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// ContactListPage is one page of the filed-contact list.
type ContactListPage struct {
	Data       []ContactListView `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
