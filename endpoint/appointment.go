package endpoint

import (
	"fmt"

	"github.com/ariebrainware/clinic-api/model"
	"github.com/ariebrainware/clinic-api/util"
	"github.com/gin-gonic/gin"
)

// ListAppointments godoc
// @Summary      List all appointments
// @Description  Get every appointment, cancelled ones included, with the owning patient
// @Tags         Appointment
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.Appointment} "Appointments retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointments/ [get]
func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.Appointments.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to retrieve appointments", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointments retrieved",
		Data: appointments,
	})
}

// GetAppointment godoc
// @Summary      Get an appointment
// @Description  Get an appointment by ID whatever its status
// @Tags         Appointment
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment retrieved"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Router       /appointments/{id} [get]
func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	appointment, err := h.Appointments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to retrieve appointment", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment retrieved",
		Data: appointment,
	})
}

// CreateAppointment godoc
// @Summary      Book an appointment
// @Description  Book a scheduled appointment for an existing patient. The date must not be in the past.
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        appointment body model.CreateAppointmentRequest true "Appointment information"
// @Success      201 {object} util.APIResponse{data=model.Appointment} "Appointment created"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      422 {object} util.APIResponse{data=object{fields=[]validation.FieldError}} "Validation failed"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointments/ [post]
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.Appointments.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create appointment", err)
		return
	}

	h.logEvent(c, util.EventAppointmentCreated, fmt.Sprintf("Appointment %d created", appointment.ID),
		map[string]interface{}{"appointment_id": appointment.ID, "patient_id": appointment.PatientID})
	util.CallCreated(c, util.APISuccessParams{
		Msg:  "Appointment created",
		Data: appointment,
	})
}

// UpdateAppointment godoc
// @Summary      Update an appointment
// @Description  Replace the supplied fields of an appointment. The patient cannot change and a cancelled appointment cannot be rescheduled.
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Param        appointment body model.UpdateAppointmentRequest true "Fields to update"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment updated"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Failure      422 {object} util.APIResponse{data=object{fields=[]validation.FieldError}} "Validation failed"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointments/{id} [put]
func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.Appointments.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "Failed to update appointment", err)
		return
	}

	h.logEvent(c, util.EventAppointmentUpdated, fmt.Sprintf("Appointment %d updated", appointment.ID),
		map[string]interface{}{"appointment_id": appointment.ID, "status": appointment.Status})
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment updated",
		Data: appointment,
	})
}

// CancelAppointment godoc
// @Summary      Cancel an appointment
// @Description  Mark an appointment as cancelled. The record is kept; cancelling twice succeeds.
// @Tags         Appointment
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment cancelled"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointments/{id} [delete]
func (h *Handler) CancelAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	appointment, err := h.Appointments.Cancel(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to cancel appointment", err)
		return
	}

	h.logEvent(c, util.EventAppointmentCancel, fmt.Sprintf("Appointment %d cancelled", appointment.ID),
		map[string]interface{}{"appointment_id": appointment.ID})
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment cancelled",
		Data: appointment,
	})
}
