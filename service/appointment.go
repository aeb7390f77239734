package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariebrainware/clinic-api/model"
	"github.com/ariebrainware/clinic-api/validation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppointmentService mediates every read and write of appointments.
// Cancelling an appointment is a status change; records are never removed
// through this service.
type AppointmentService struct {
	db       *gorm.DB
	validate *validation.Validator
}

// NewAppointmentService returns an AppointmentService backed by db.
func NewAppointmentService(db *gorm.DB, v *validation.Validator) *AppointmentService {
	return &AppointmentService{db: db, validate: v}
}

func findAppointment(tx *gorm.DB, id uint) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := tx.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("appointment", id)
		}
		return nil, err
	}
	return &appointment, nil
}

// attachPatient loads the owning patient for the response.
func attachPatient(tx *gorm.DB, appointment *model.Appointment) error {
	patient, err := findPatient(tx, appointment.PatientID)
	if err != nil {
		return err
	}
	appointment.Patient = patient
	return nil
}

// List returns every appointment, cancelled ones included, in insertion order.
func (s *AppointmentService) List(ctx context.Context) ([]model.Appointment, error) {
	appointments := []model.Appointment{}
	if err := s.db.WithContext(ctx).Preload("Patient").Order("id ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListByPatient returns the appointments of one patient in insertion order.
func (s *AppointmentService) ListByPatient(ctx context.Context, patientID uint) ([]model.Appointment, error) {
	db := s.db.WithContext(ctx)
	patient, err := findPatient(db, patientID)
	if err != nil {
		return nil, err
	}

	appointments := []model.Appointment{}
	if err := db.Where("patient_id = ?", patientID).Order("id ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	for i := range appointments {
		appointments[i].Patient = patient
	}
	return appointments, nil
}

// Get returns the appointment with the given id, whatever its status.
func (s *AppointmentService) Get(ctx context.Context, id uint) (*model.Appointment, error) {
	db := s.db.WithContext(ctx)
	appointment, err := findAppointment(db, id)
	if err != nil {
		return nil, err
	}
	if err := attachPatient(db, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Create books a new scheduled appointment. The patient lookup and the
// insert share one transaction, and the patient row is share-locked so it
// cannot be deleted before the insert commits.
func (s *AppointmentService) Create(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	if errs := s.validate.Struct(req); errs != nil {
		return nil, errs
	}
	when, err := s.validate.ParseTimestamp(req.AppointmentDate)
	if err != nil {
		return nil, validation.Field("appointment_date", err.Error())
	}

	appointment := model.Appointment{
		PatientID:       req.PatientID,
		AppointmentDate: when,
		Description:     req.Description,
		Status:          model.AppointmentScheduled,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patient, err := findPatient(lockRow(tx, "SHARE"), req.PatientID)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&appointment).Error; err != nil {
			return err
		}
		appointment.Patient = patient
		return nil
	})
	if err != nil {
		return nil, translateWriteError(err)
	}
	return &appointment, nil
}

// Update replaces the supplied fields of appointment id. The patient
// reference cannot change and a cancelled appointment cannot be rescheduled.
func (s *AppointmentService) Update(ctx context.Context, id uint, req model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if errs := s.validate.Struct(req); errs != nil {
		return nil, errs
	}

	var updated *model.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appointment, err := findAppointment(lockRow(tx, "UPDATE"), id)
		if err != nil {
			return err
		}

		if req.PatientID != nil && *req.PatientID != appointment.PatientID {
			return validation.Field("patient_id", "patient_id cannot be changed")
		}
		if req.AppointmentDate != nil {
			when, err := s.validate.ParseTimestamp(*req.AppointmentDate)
			if err != nil {
				return validation.Field("appointment_date", err.Error())
			}
			appointment.AppointmentDate = when
		}
		if req.Description != nil {
			appointment.Description = *req.Description
		}
		if req.Status != nil {
			next := model.AppointmentStatus(*req.Status)
			if !appointment.Status.CanTransitionTo(next) {
				return validation.Field("status", fmt.Sprintf("status cannot change from %s to %s", appointment.Status, next))
			}
			appointment.Status = next
		}

		if err := tx.Omit(clause.Associations).Save(appointment).Error; err != nil {
			return err
		}
		if err := attachPatient(tx, appointment); err != nil {
			return err
		}
		updated = appointment
		return nil
	})
	if err != nil {
		return nil, translateWriteError(err)
	}
	return updated, nil
}

// Cancel marks appointment id as cancelled. Cancelling an already cancelled
// appointment succeeds without changing it.
func (s *AppointmentService) Cancel(ctx context.Context, id uint) (*model.Appointment, error) {
	var cancelled *model.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appointment, err := findAppointment(lockRow(tx, "UPDATE"), id)
		if err != nil {
			return err
		}
		if appointment.Status != model.AppointmentCancelled {
			if err := tx.Model(appointment).Update("status", model.AppointmentCancelled).Error; err != nil {
				return err
			}
			appointment.Status = model.AppointmentCancelled
		}
		if err := attachPatient(tx, appointment); err != nil {
			return err
		}
		cancelled = appointment
		return nil
	})
	if err != nil {
		return nil, translateWriteError(err)
	}
	return cancelled, nil
}
