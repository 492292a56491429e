package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type SheetsConfig struct {
	SpreadsheetID   string `toml:"spreadsheet_id"`
	CredentialsFile string `toml:"credentials_file"`
}

// TabsConfig names the spreadsheet tabs backing each dataset.
type TabsConfig struct {
	Contacts       string `toml:"contacts"`
	ContactList    string `toml:"contact_list"`
	OppContactLink string `toml:"opp_contact_link"`
	Companies      string `toml:"companies"`
	Opportunities  string `toml:"opportunities"`
	WeeklyBusiness string `toml:"weekly_business"`
	EventLogs      string `toml:"event_logs"`
	Interactions   string `toml:"interactions"`
	System         string `toml:"system"`
}

// ContactFields maps business-card columns to their zero-based positions in
// the contacts tab. The tab's column order is an external contract; changing
// it there means changing it here.
type ContactFields struct {
	Time         int `toml:"time"`
	Name         int `toml:"name"`
	Company      int `toml:"company"`
	Position     int `toml:"position"`
	Department   int `toml:"department"`
	Phone        int `toml:"phone"`
	Mobile       int `toml:"mobile"`
	Email        int `toml:"email"`
	Website      int `toml:"website"`
	Address      int `toml:"address"`
	Confidence   int `toml:"confidence"`
	DriveLink    int `toml:"drive_link"`
	Status       int `toml:"status"`
	UserNickname int `toml:"user_nickname"`
}

type LimitsConfig struct {
	ContactRows    int `toml:"contact_rows"`
	ContactRowsMax int `toml:"contact_rows_max"`
}

type PaginationConfig struct {
	ContactsPerPage int `toml:"contacts_per_page"`
}

type CalendarConfig struct {
	CalendarID        string `toml:"calendar_id"`
	HolidayCalendarID string `toml:"holiday_calendar_id"`
	Timezone          string `toml:"timezone"`
}

type TimeoutsConfig struct {
	FetchSeconds int `toml:"fetch_seconds"`
}

type Config struct {
	Sheets        SheetsConfig     `toml:"sheets"`
	Tabs          TabsConfig       `toml:"tabs"`
	ContactFields ContactFields    `toml:"contact_fields"`
	Limits        LimitsConfig     `toml:"limits"`
	Pagination    PaginationConfig `toml:"pagination"`
	Calendar      CalendarConfig   `toml:"calendar"`
	Timeouts      TimeoutsConfig   `toml:"timeouts"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns a config with every non-credential setting filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Tabs.Contacts == "" {
		c.Tabs.Contacts = "Contacts"
	}
	if c.Tabs.ContactList == "" {
		c.Tabs.ContactList = "ContactList"
	}
	if c.Tabs.OppContactLink == "" {
		c.Tabs.OppContactLink = "OppContactLinks"
	}
	if c.Tabs.Companies == "" {
		c.Tabs.Companies = "Companies"
	}
	if c.Tabs.Opportunities == "" {
		c.Tabs.Opportunities = "Opportunities"
	}
	if c.Tabs.WeeklyBusiness == "" {
		c.Tabs.WeeklyBusiness = "WeeklyBusiness"
	}
	if c.Tabs.EventLogs == "" {
		c.Tabs.EventLogs = "EventLogs"
	}
	if c.Tabs.Interactions == "" {
		c.Tabs.Interactions = "Interactions"
	}
	if c.Tabs.System == "" {
		c.Tabs.System = "System"
	}
	if c.ContactFields == (ContactFields{}) {
		c.ContactFields = ContactFields{
			Time: 0, Name: 1, Company: 2, Position: 3, Department: 4,
			Phone: 5, Mobile: 6, Email: 7, Website: 8, Address: 9,
			Confidence: 10, DriveLink: 11, Status: 12, UserNickname: 13,
		}
	}
	if c.Limits.ContactRows == 0 {
		c.Limits.ContactRows = 2000
	}
	if c.Limits.ContactRowsMax == 0 {
		c.Limits.ContactRowsMax = 9999
	}
	if c.Pagination.ContactsPerPage == 0 {
		c.Pagination.ContactsPerPage = 20
	}
	if c.Calendar.HolidayCalendarID == "" {
		c.Calendar.HolidayCalendarID = "zh-TW.taiwan#holiday@group.v.calendar.google.com"
	}
	if c.Calendar.Timezone == "" {
		c.Calendar.Timezone = "Asia/Taipei"
	}
	if c.Timeouts.FetchSeconds == 0 {
		c.Timeouts.FetchSeconds = 15
	}
}

// FetchTimeout is the per-call deadline for external Sheets/Calendar calls.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Timeouts.FetchSeconds) * time.Second
}
