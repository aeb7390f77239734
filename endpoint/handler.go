package endpoint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ariebrainware/clinic-api/middleware"
	"github.com/ariebrainware/clinic-api/service"
	"github.com/ariebrainware/clinic-api/util"
	"github.com/ariebrainware/clinic-api/validation"
	"github.com/gin-gonic/gin"
)

// Handler serves the patient and appointment endpoints.
type Handler struct {
	Patients     *service.PatientService
	Appointments *service.AppointmentService
	Events       *util.EventLogger
}

// NewHandler wires the handlers to their services.
func NewHandler(patients *service.PatientService, appointments *service.AppointmentService, events *util.EventLogger) *Handler {
	return &Handler{Patients: patients, Appointments: appointments, Events: events}
}

// respondError maps the access layer's error taxonomy onto HTTP responses.
// msg is used for unexpected failures.
func respondError(c *gin.Context, msg string, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		util.CallValidationError(c, util.APIErrorParams{Msg: "Validation failed", Err: err}, verrs)
	case errors.Is(err, service.ErrNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Resource not found", Err: err})
	case errors.Is(err, service.ErrConflict):
		util.CallConflict(c, util.APIErrorParams{Msg: "Request conflicts with existing data", Err: err})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: msg, Err: err})
	}
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondError(c, "", validation.Field(name, fmt.Sprintf("%s must be a positive integer", name)))
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body into req, answering 422 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, "", validation.FromDecodeError(err))
		return false
	}
	return true
}

func (h *Handler) logEvent(c *gin.Context, eventType util.EventType, msg string, details map[string]interface{}) {
	h.Events.Log(util.Event{
		Type:      eventType,
		RequestID: middleware.GetRequestID(c),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   msg,
		Details:   details,
	})
}
