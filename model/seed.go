package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Models lists every table managed by the application, in migration order.
func Models() []interface{} {
	return []interface{}{&Patient{}, &Appointment{}, &RequestLog{}}
}

// Migrate creates or updates the application tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SamplePatient is inserted by SeedPatients into an empty database.
func SamplePatient() Patient {
	return Patient{
		FirstName:   "Test",
		LastName:    "Patient",
		DateOfBirth: NewDate(1990, time.January, 1),
		Gender:      "Other",
		PhoneNumber: "+254712345678",
		Email:       "test@example.com",
		Address:     "123 Test St, Nairobi, Kenya",
	}
}

// SeedPatients adds the sample patient when the patients table is empty.
// It reports whether a row was inserted.
func SeedPatients(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&Patient{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	patient := SamplePatient()
	if err := db.Create(&patient).Error; err != nil {
		return false, fmt.Errorf("failed to seed patient %s: %w", patient.Email, err)
	}
	return true, nil
}
