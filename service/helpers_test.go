package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ariebrainware/clinic-api/model"
	"github.com/ariebrainware/clinic-api/validation"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

// setupTestDB opens a migrated in-memory database unique to the calling test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:testdb_%s_%d?mode=memory&cache=shared&_fk=1", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))
	return db
}

func newServices(t *testing.T) (*gorm.DB, *PatientService, *AppointmentService) {
	t.Helper()
	db := setupTestDB(t)
	v := validation.New(validation.WithClock(func() time.Time { return fixedNow }))
	return db, NewPatientService(db, v), NewAppointmentService(db, v)
}

func janeSmith() model.CreatePatientRequest {
	return model.CreatePatientRequest{
		FirstName:   "Jane",
		LastName:    "Smith",
		DateOfBirth: "1985-05-20",
		Gender:      "female",
		PhoneNumber: "+254738465744",
		Email:       "jane.smith@example.com",
		Address:     "456 Oak St",
	}
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }
