package util

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ariebrainware/clinic-api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventType represents the kind of event being logged
type EventType string

const (
	EventEndpointCall         EventType = "ENDPOINT_CALL"
	EventRateLimitExceeded    EventType = "RATE_LIMIT_EXCEEDED"
	EventRateLimitCheckFailed EventType = "RATE_LIMIT_CHECK_FAILED"
	EventPatientCreated       EventType = "PATIENT_CREATED"
	EventPatientUpdated       EventType = "PATIENT_UPDATED"
	EventPatientDeleted       EventType = "PATIENT_DELETED"
	EventAppointmentCreated   EventType = "APPOINTMENT_CREATED"
	EventAppointmentUpdated   EventType = "APPOINTMENT_UPDATED"
	EventAppointmentCancel    EventType = "APPOINTMENT_CANCELLED"
)

// Event represents one log entry
type Event struct {
	Type      EventType
	RequestID string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

// EventLogger writes events as single sanitized lines and, when a database
// is attached, persists them as model.RequestLog rows.
type EventLogger struct {
	logger *log.Logger
	db     *gorm.DB
}

// NewEventLogger returns an EventLogger writing to out (stdout when nil). A
// nil db disables persistence.
func NewEventLogger(out io.Writer, db *gorm.DB) *EventLogger {
	if out == nil {
		out = os.Stdout
	}
	return &EventLogger{
		logger: log.New(out, "[EVENT] ", log.LstdFlags|log.Lmsgprefix),
		db:     db,
	}
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// Log records event. Persistence is best-effort and never fails the caller.
func (l *EventLogger) Log(event Event) {
	if l == nil {
		return
	}

	msg := fmt.Sprintf("Event=%s RequestID=%s IP=%s UserAgent=%s Message=%s",
		sanitizeLogValue(string(event.Type)),
		sanitizeLogValue(event.RequestID),
		sanitizeLogValue(event.IP),
		sanitizeLogValue(event.UserAgent),
		sanitizeLogValue(event.Message),
	)
	if len(event.Details) > 0 {
		// Details are persisted, not printed.
		msg = fmt.Sprintf("%s DetailsCount=%d", msg, len(event.Details))
	}
	l.logger.Println(msg)

	if l.db == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}
	entry := model.RequestLog{
		EventType: string(event.Type),
		RequestID: sanitizeLogValue(event.RequestID),
		IP:        sanitizeLogValue(event.IP),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}
	if err := l.db.Create(&entry).Error; err != nil {
		l.logger.Printf("Failed to persist event: %v", err)
	}
}

// LogRateLimitExceeded logs when rate limit is exceeded
func (l *EventLogger) LogRateLimitExceeded(requestID, ip, endpoint string) {
	l.Log(Event{
		Type:      EventRateLimitExceeded,
		RequestID: requestID,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}
