package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TFC433/sheetcrm/internal/calendar"
	"github.com/TFC433/sheetcrm/internal/service"
)

// Every response is {"success": bool, ...}: data on success, a single error
// string otherwise. Not-found reads come back as success with empty data.

func (s *Server) ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (s *Server) fail(c *gin.Context, status int, op string, err error) {
	s.log.Error("request failed", zap.String("op", op), zap.Error(err))
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

// requestUser is filled in by the auth middleware in front of this service;
// without one, writes are attributed to "system".
func requestUser(c *gin.Context) string {
	if name := c.GetHeader("X-User-Name"); name != "" {
		return name
	}
	return "system"
}

// --- Event logs ---

func (s *Server) CreateEventLog(c *gin.Context) {
	var in service.EventLogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, http.StatusBadRequest, "create event log", err)
		return
	}
	entry, err := s.eventLogs.Create(c.Request.Context(), in, requestUser(c))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "create event log", err)
		return
	}
	s.ok(c, entry)
}

func (s *Server) GetEventLog(c *gin.Context) {
	entry, err := s.eventLogs.Reader().ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "get event log", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": entry != nil, "data": entry})
}

func (s *Server) UpdateEventLog(c *gin.Context) {
	var in service.EventLogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, http.StatusBadRequest, "update event log", err)
		return
	}
	entry, err := s.eventLogs.Update(c.Request.Context(), c.Param("id"), in, requestUser(c))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "update event log", err)
		return
	}
	s.ok(c, entry)
}

func (s *Server) DeleteEventLog(c *gin.Context) {
	if err := s.eventLogs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, http.StatusInternalServerError, "delete event log", err)
		return
	}
	s.ok(c, nil)
}

// --- Calendar ---

func (s *Server) CreateCalendarEvent(c *gin.Context) {
	var in calendar.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, http.StatusBadRequest, "create calendar event", err)
		return
	}
	created, err := s.adapter.CreateEvent(c.Request.Context(), in)
	if err != nil {
		status := http.StatusInternalServerError
		if _, ok := err.(*calendar.ErrInvalidStartTime); ok {
			status = http.StatusBadRequest
		}
		s.fail(c, status, "create calendar event", err)
		return
	}
	s.ok(c, created)
}

func (s *Server) GetThisWeekEvents(c *gin.Context) {
	// Fail-soft: the adapter returns a zeroed result on upstream failure.
	s.ok(c, s.adapter.ThisWeekEvents(c.Request.Context()))
}

// --- Companies ---

func (s *Server) GetCompanyDetails(c *gin.Context) {
	details, err := s.companies.Details(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "get company details", err)
		return
	}
	s.ok(c, details)
}

// --- Weekly business ---

func (s *Server) GetWeeklySummaries(c *gin.Context) {
	summaries, err := s.weekly.Summaries(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "get weekly summaries", err)
		return
	}
	s.ok(c, summaries)
}

func (s *Server) GetWeeklyDetail(c *gin.Context) {
	detail, err := s.weekly.Detail(c.Request.Context(), c.Param("weekId"))
	if err != nil {
		s.fail(c, http.StatusBadRequest, "get weekly detail", err)
		return
	}
	s.ok(c, detail)
}

func (s *Server) CreateWeeklyEntry(c *gin.Context) {
	var in service.EntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, http.StatusBadRequest, "create weekly entry", err)
		return
	}
	entry, err := s.weekly.Create(c.Request.Context(), in, requestUser(c))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "create weekly entry", err)
		return
	}
	s.ok(c, entry)
}

func (s *Server) UpdateWeeklyEntry(c *gin.Context) {
	var in service.EntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, http.StatusBadRequest, "update weekly entry", err)
		return
	}
	entry, err := s.weekly.Update(c.Request.Context(), c.Param("id"), in, requestUser(c))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "update weekly entry", err)
		return
	}
	s.ok(c, entry)
}

func (s *Server) DeleteWeeklyEntry(c *gin.Context) {
	var body struct {
		RowIndex int `json:"rowIndex"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, http.StatusBadRequest, "delete weekly entry", err)
		return
	}
	if err := s.weekly.Delete(c.Request.Context(), c.Param("id"), body.RowIndex); err != nil {
		s.fail(c, http.StatusInternalServerError, "delete weekly entry", err)
		return
	}
	s.ok(c, nil)
}

// --- Contacts ---

func (s *Server) SearchContacts(c *gin.Context) {
	cards, err := s.contacts.SearchCards(c.Request.Context(), c.Query("query"))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "search contacts", err)
		return
	}
	s.ok(c, cards)
}

func (s *Server) SearchContactList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	result, err := s.agg.SearchContactList(c.Request.Context(), c.Query("query"), page)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "search contact list", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result.Data, "pagination": result.Pagination})
}

func (s *Server) GetLinkedContacts(c *gin.Context) {
	linked, err := s.agg.LinkedContacts(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "get linked contacts", err)
		return
	}
	s.ok(c, linked)
}

// --- System ---

func (s *Server) GetSystemOptions(c *gin.Context) {
	options, err := s.system.Options(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "get system options", err)
		return
	}
	s.ok(c, options)
}
