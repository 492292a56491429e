package server

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/calendar"
	"github.com/TFC433/sheetcrm/internal/config"
	"github.com/TFC433/sheetcrm/internal/reader"
	"github.com/TFC433/sheetcrm/internal/service"
	"github.com/TFC433/sheetcrm/internal/sheets"
	"github.com/TFC433/sheetcrm/internal/writer"
)

// Server wires every component together and carries the handler
// dependencies. Readers are shared; the aggregator and services receive the
// readers they join over at construction.
type Server struct {
	cfg *config.Config
	log *zap.Logger

	cache    *cache.Store
	contacts *reader.ContactReader
	system   *reader.SystemReader
	agg      *reader.Aggregator
	adapter  *calendar.Adapter

	weekly    *service.WeeklyBusinessService
	companies *service.CompanyService
	eventLogs *service.EventLogService
}

func New(ctx context.Context, log *zap.Logger) (*Server, error) {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Env overrides for the deploy-specific values.
	if v := os.Getenv("SPREADSHEET_ID"); v != "" {
		cfg.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("GOOGLE_CREDENTIALS_FILE"); v != "" {
		cfg.Sheets.CredentialsFile = v
	}
	if v := os.Getenv("CALENDAR_ID"); v != "" {
		cfg.Calendar.CalendarID = v
	}
	if cfg.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is not configured")
	}

	client, err := sheets.NewClient(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile, cfg.FetchTimeout(), log.Named("sheets"))
	if err != nil {
		return nil, err
	}
	adapter, err := calendar.NewAdapter(ctx,
		cfg.Calendar.CalendarID, cfg.Calendar.HolidayCalendarID, cfg.Calendar.Timezone,
		cfg.Sheets.CredentialsFile, cfg.FetchTimeout(), log.Named("calendar"))
	if err != nil {
		return nil, err
	}

	return build(cfg, client, client, adapter, log), nil
}

// build assembles the object graph from already-constructed edges; tests use
// it with fakes.
func build(cfg *config.Config, src sheets.ValueSource, sink sheets.RowSink, adapter *calendar.Adapter, log *zap.Logger) *Server {
	store := cache.NewStore(log.Named("cache"))

	contacts := reader.NewContactReader(src, store, cfg, log.Named("reader"))
	companies := reader.NewCompanyReader(src, store, cfg, log.Named("reader"))
	opportunities := reader.NewOpportunityReader(src, store, cfg, log.Named("reader"))
	weeklyReader := reader.NewWeeklyBusinessReader(src, store, cfg, log.Named("reader"))
	eventLogReader := reader.NewEventLogReader(src, store, cfg, log.Named("reader"))
	interactions := reader.NewInteractionReader(src, store, cfg, log.Named("reader"))
	system := reader.NewSystemReader(src, store, cfg, log.Named("reader"))
	agg := reader.NewAggregator(contacts, companies, cfg, log.Named("aggregator"))

	weeklyWriter := writer.NewWeeklyBusinessWriter(sink, store, cfg, log.Named("writer"))
	eventLogWriter := writer.NewEventLogWriter(sink, store, cfg, log.Named("writer"))

	return &Server{
		cfg:      cfg,
		log:      log,
		cache:    store,
		contacts: contacts,
		system:   system,
		agg:      agg,
		adapter:  adapter,
		weekly:   service.NewWeeklyBusinessService(weeklyReader, weeklyWriter, adapter, log.Named("weekly")),
		companies: service.NewCompanyService(
			companies, contacts, opportunities, interactions, eventLogReader, log.Named("company")),
		eventLogs: service.NewEventLogService(eventLogReader, eventLogWriter, adapter, log.Named("eventlog")),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	api.POST("/events", s.CreateEventLog)
	api.GET("/events/:id", s.GetEventLog)
	api.PUT("/events/:id", s.UpdateEventLog)
	api.DELETE("/events/:id", s.DeleteEventLog)

	api.POST("/calendar/events", s.CreateCalendarEvent)
	api.GET("/calendar/week", s.GetThisWeekEvents)

	api.GET("/companies/:name/details", s.GetCompanyDetails)

	api.GET("/business/weekly/summary", s.GetWeeklySummaries)
	api.GET("/business/weekly/details/:weekId", s.GetWeeklyDetail)
	api.POST("/business/weekly", s.CreateWeeklyEntry)
	api.PUT("/business/weekly/:id", s.UpdateWeeklyEntry)
	api.DELETE("/business/weekly/:id", s.DeleteWeeklyEntry)

	api.GET("/contacts", s.SearchContacts)
	api.GET("/contact-list", s.SearchContactList)
	api.GET("/opportunities/:id/contacts", s.GetLinkedContacts)
	api.GET("/system/options", s.GetSystemOptions)

	return r
}
