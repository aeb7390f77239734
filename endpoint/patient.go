package endpoint

import (
	"fmt"

	"github.com/ariebrainware/clinic-api/model"
	"github.com/ariebrainware/clinic-api/util"
	"github.com/gin-gonic/gin"
)

// ListPatients godoc
// @Summary      List all patients
// @Description  Get every registered patient in registration order
// @Tags         Patient
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.Patient} "Patients retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patients/ [get]
func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.Patients.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to retrieve patients", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patients retrieved",
		Data: patients,
	})
}

// GetPatient godoc
// @Summary      Get a patient
// @Description  Get a patient by ID
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient retrieved"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      422 {object} util.APIResponse "Invalid patient ID"
// @Router       /patients/{id} [get]
func (h *Handler) GetPatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	patient, err := h.Patients.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to retrieve patient", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient retrieved",
		Data: patient,
	})
}

// CreatePatient godoc
// @Summary      Create a new patient
// @Description  Register a new patient. Emails are unique regardless of case.
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        patient body model.CreatePatientRequest true "Patient information"
// @Success      201 {object} util.APIResponse{data=model.Patient} "Patient created"
// @Failure      409 {object} util.APIResponse "Email already registered"
// @Failure      422 {object} util.APIResponse{data=object{fields=[]validation.FieldError}} "Validation failed"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patients/ [post]
func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	patient, err := h.Patients.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create patient", err)
		return
	}

	h.logEvent(c, util.EventPatientCreated, fmt.Sprintf("Patient %d created", patient.ID),
		map[string]interface{}{"patient_id": patient.ID})
	util.CallCreated(c, util.APISuccessParams{
		Msg:  "Patient created",
		Data: patient,
	})
}

// UpdatePatient godoc
// @Summary      Update a patient
// @Description  Replace the supplied fields of an existing patient
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path int true "Patient ID"
// @Param        patient body model.UpdatePatientRequest true "Fields to update"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient updated"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      409 {object} util.APIResponse "Email already registered"
// @Failure      422 {object} util.APIResponse{data=object{fields=[]validation.FieldError}} "Validation failed"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patients/{id} [put]
func (h *Handler) UpdatePatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req model.UpdatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	patient, err := h.Patients.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "Failed to update patient", err)
		return
	}

	h.logEvent(c, util.EventPatientUpdated, fmt.Sprintf("Patient %d updated", patient.ID),
		map[string]interface{}{"patient_id": patient.ID})
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient updated",
		Data: patient,
	})
}

// DeletePatient godoc
// @Summary      Delete a patient
// @Description  Delete a patient and its cancelled appointments. Patients with scheduled appointments cannot be deleted.
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse "Patient deleted"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      409 {object} util.APIResponse "Patient has scheduled appointments"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patients/{id} [delete]
func (h *Handler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Patients.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete patient", err)
		return
	}

	h.logEvent(c, util.EventPatientDeleted, fmt.Sprintf("Patient %d deleted", id),
		map[string]interface{}{"patient_id": id})
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient deleted",
		Data: map[string]interface{}{"id": id},
	})
}

// ListPatientAppointments godoc
// @Summary      List a patient's appointments
// @Description  Get every appointment of one patient, cancelled ones included
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=[]model.Appointment} "Appointments retrieved"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patients/{id}/appointments [get]
func (h *Handler) ListPatientAppointments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	appointments, err := h.Appointments.ListByPatient(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to retrieve appointments", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointments retrieved",
		Data: appointments,
	})
}
