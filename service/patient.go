package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ariebrainware/clinic-api/model"
	"github.com/ariebrainware/clinic-api/util"
	"github.com/ariebrainware/clinic-api/validation"
	"gorm.io/gorm"
)

// PatientService mediates every read and write of patient records.
type PatientService struct {
	db       *gorm.DB
	validate *validation.Validator
}

// NewPatientService returns a PatientService backed by db.
func NewPatientService(db *gorm.DB, v *validation.Validator) *PatientService {
	return &PatientService{db: db, validate: v}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func findPatient(tx *gorm.DB, id uint) (*model.Patient, error) {
	var patient model.Patient
	if err := tx.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("patient", id)
		}
		return nil, err
	}
	return &patient, nil
}

// ensureEmailAvailable fails with ErrConflict when another patient already
// uses email. exceptID excludes the patient being updated.
func ensureEmailAvailable(tx *gorm.DB, email string, exceptID uint) error {
	var count int64
	query := tx.Model(&model.Patient{}).Where("email = ?", email)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: email %s already registered", ErrConflict, email)
	}
	return nil
}

// List returns every patient in insertion order.
func (s *PatientService) List(ctx context.Context) ([]model.Patient, error) {
	patients := []model.Patient{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// Get returns the patient with the given id.
func (s *PatientService) Get(ctx context.Context, id uint) (*model.Patient, error) {
	return findPatient(s.db.WithContext(ctx), id)
}

func (s *PatientService) buildPatient(req model.CreatePatientRequest) (model.Patient, error) {
	dob, err := model.ParseDate(strings.TrimSpace(req.DateOfBirth))
	if err != nil {
		return model.Patient{}, validation.Field("date_of_birth", err.Error())
	}
	patient := model.Patient{
		FirstName:   util.NormalizeName(req.FirstName),
		LastName:    util.NormalizeName(req.LastName),
		DateOfBirth: dob,
		Gender:      strings.TrimSpace(req.Gender),
		Email:       normalizeEmail(req.Email),
		Address:     req.Address,
	}
	if strings.TrimSpace(req.PhoneNumber) != "" {
		phone, err := s.validate.NormalizePhone(req.PhoneNumber)
		if err != nil {
			return model.Patient{}, validation.Field("phone_number", err.Error())
		}
		patient.PhoneNumber = phone
	}
	return patient, nil
}

// Create validates req and persists a new patient. A duplicate email
// (compared case-insensitively) fails with ErrConflict.
func (s *PatientService) Create(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error) {
	req.Trim()
	if errs := s.validate.Struct(req); errs != nil {
		return nil, errs
	}
	patient, err := s.buildPatient(req)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureEmailAvailable(tx, patient.Email, 0); err != nil {
			return err
		}
		return tx.Create(&patient).Error
	})
	if err != nil {
		return nil, translateWriteError(err)
	}
	return &patient, nil
}

func (s *PatientService) applyUpdate(patient *model.Patient, req model.UpdatePatientRequest) error {
	if req.FirstName != nil {
		patient.FirstName = util.NormalizeName(*req.FirstName)
	}
	if req.LastName != nil {
		patient.LastName = util.NormalizeName(*req.LastName)
	}
	if req.DateOfBirth != nil {
		dob, err := model.ParseDate(strings.TrimSpace(*req.DateOfBirth))
		if err != nil {
			return validation.Field("date_of_birth", err.Error())
		}
		patient.DateOfBirth = dob
	}
	if req.Gender != nil {
		patient.Gender = strings.TrimSpace(*req.Gender)
	}
	if req.PhoneNumber != nil {
		patient.PhoneNumber = ""
		if strings.TrimSpace(*req.PhoneNumber) != "" {
			phone, err := s.validate.NormalizePhone(*req.PhoneNumber)
			if err != nil {
				return validation.Field("phone_number", err.Error())
			}
			patient.PhoneNumber = phone
		}
	}
	if req.Email != nil {
		patient.Email = normalizeEmail(*req.Email)
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	return nil
}

// Update replaces the supplied fields of patient id.
func (s *PatientService) Update(ctx context.Context, id uint, req model.UpdatePatientRequest) (*model.Patient, error) {
	req.Trim()
	if errs := s.validate.Struct(req); errs != nil {
		return nil, errs
	}

	var updated *model.Patient
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patient, err := findPatient(lockRow(tx, "UPDATE"), id)
		if err != nil {
			return err
		}
		if err := s.applyUpdate(patient, req); err != nil {
			return err
		}
		if req.Email != nil {
			if err := ensureEmailAvailable(tx, patient.Email, patient.ID); err != nil {
				return err
			}
		}
		if err := tx.Save(patient).Error; err != nil {
			return err
		}
		updated = patient
		return nil
	})
	if err != nil {
		return nil, translateWriteError(err)
	}
	return updated, nil
}

// Delete removes patient id. A patient with scheduled appointments cannot be
// deleted; once all of them are cancelled, the cancelled records are removed
// together with the patient.
func (s *PatientService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patient, err := findPatient(lockRow(tx, "UPDATE"), id)
		if err != nil {
			return err
		}

		var scheduled int64
		if err := tx.Model(&model.Appointment{}).
			Where("patient_id = ? AND status = ?", id, model.AppointmentScheduled).
			Count(&scheduled).Error; err != nil {
			return err
		}
		if scheduled > 0 {
			return fmt.Errorf("%w: patient %d has %d scheduled appointment(s); cancel them first", ErrConflict, id, scheduled)
		}

		if err := tx.Where("patient_id = ?", id).Delete(&model.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(patient).Error
	})
	return translateWriteError(err)
}
