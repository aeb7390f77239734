package model

import "time"

// AppointmentStatus is the lifecycle state of an appointment. The only
// transition is scheduled -> cancelled.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s AppointmentStatus) Valid() bool {
	return s == AppointmentScheduled || s == AppointmentCancelled
}

// CanTransitionTo reports whether the status may change from s to next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	return s == AppointmentScheduled && next == AppointmentCancelled
}

// Appointment represents a scheduled visit of a patient
// @Description Appointment information
type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey" example:"1"`
	PatientID       uint              `json:"patient_id" gorm:"not null;index" example:"1"`
	AppointmentDate time.Time         `json:"appointment_date" gorm:"not null" example:"2030-01-01T09:00:00Z"`
	Description     string            `json:"description" gorm:"type:text" example:"Checkup"`
	Status          AppointmentStatus `json:"status" gorm:"size:20;not null;default:scheduled" swaggertype:"string" enums:"scheduled,cancelled" example:"scheduled"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Patient         *Patient          `json:"patient,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CreateAppointmentRequest represents the payload for booking an appointment
// @Description Appointment booking payload
type CreateAppointmentRequest struct {
	PatientID       uint   `json:"patient_id" validate:"required" example:"1"`
	AppointmentDate string `json:"appointment_date" validate:"required,notpast" example:"2030-01-01T09:00:00"`
	Description     string `json:"description" example:"Checkup"`
}

// UpdateAppointmentRequest represents a partial appointment update. The
// patient reference is immutable: a patient_id different from the stored one
// is rejected.
// @Description Partial appointment update payload
type UpdateAppointmentRequest struct {
	PatientID       *uint   `json:"patient_id,omitempty" example:"1"`
	AppointmentDate *string `json:"appointment_date,omitempty" validate:"omitempty,notpast" example:"2030-01-02T10:30:00"`
	Description     *string `json:"description,omitempty" example:"Follow-up"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=scheduled cancelled" enums:"scheduled,cancelled" example:"cancelled"`
}
