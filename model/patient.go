package model

import (
	"strings"
	"time"
)

// Patient represents a clinic patient
// @Description Patient demographic information
type Patient struct {
	ID          uint      `json:"id" gorm:"primaryKey" example:"1"`
	FirstName   string    `json:"first_name" gorm:"size:50;not null" example:"Jane"`
	LastName    string    `json:"last_name" gorm:"size:50;not null" example:"Smith"`
	DateOfBirth Date      `json:"date_of_birth" gorm:"not null" swaggertype:"string" format:"date" example:"1985-05-20"`
	Gender      string    `json:"gender" gorm:"size:10" example:"female"`
	PhoneNumber string    `json:"phone_number" gorm:"size:20" example:"+254738465744"`
	Email       string    `json:"email" gorm:"size:100;not null;uniqueIndex" example:"jane.smith@example.com"`
	Address     string    `json:"address" gorm:"type:text" example:"456 Oak St"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePatientRequest represents the payload for registering a patient
// @Description Patient registration payload
type CreatePatientRequest struct {
	FirstName   string `json:"first_name" validate:"required,notblank,max=50" example:"Jane"`
	LastName    string `json:"last_name" validate:"required,notblank,max=50" example:"Smith"`
	DateOfBirth string `json:"date_of_birth" validate:"required,birthdate" example:"1985-05-20"`
	Gender      string `json:"gender" validate:"omitempty,max=10" example:"female"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,phone" example:"+254738465744"`
	Email       string `json:"email" validate:"required,email,max=100" example:"jane.smith@example.com"`
	Address     string `json:"address" example:"456 Oak St"`
}

// UpdatePatientRequest represents a partial patient update. Only the
// supplied (non-null) fields are validated and replaced.
// @Description Partial patient update payload
type UpdatePatientRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,notblank,max=50" example:"Jane"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,notblank,max=50" example:"Smith"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,birthdate" example:"1985-05-20"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,max=10" example:"female"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,phone" example:"+254738465744"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=100" example:"jane.smith@example.com"`
	Address     *string `json:"address,omitempty" example:"456 Oak St"`
}

// Trim strips surrounding whitespace from every text field.
func (r *CreatePatientRequest) Trim() {
	for _, f := range []*string{&r.FirstName, &r.LastName, &r.DateOfBirth, &r.Gender, &r.PhoneNumber, &r.Email, &r.Address} {
		*f = strings.TrimSpace(*f)
	}
}

// Trim strips surrounding whitespace from every supplied text field.
func (r *UpdatePatientRequest) Trim() {
	for _, f := range []*string{r.FirstName, r.LastName, r.DateOfBirth, r.Gender, r.PhoneNumber, r.Email, r.Address} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}
