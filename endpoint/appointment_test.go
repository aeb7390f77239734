package endpoint

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ariebrainware/clinic-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createJane(t *testing.T, env *testEnv) uint {
	t.Helper()
	w, resp := env.do(t, http.MethodPost, "/patients/", janeSmith())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return idOf(t, resp)
}

func TestAppointmentLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	patientID := createJane(t, env)

	w, resp := env.do(t, http.MethodPost, "/appointments/", map[string]interface{}{
		"patient_id":       patientID,
		"appointment_date": "2030-01-01T09:00:00",
		"description":      "Checkup",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	appt := dataObject(t, resp)
	assert.Equal(t, "scheduled", appt["status"])
	assert.Equal(t, float64(patientID), appt["patient_id"])
	assert.Equal(t, "Checkup", appt["description"])
	id := idOf(t, resp)

	path := fmt.Sprintf("/appointments/%d", id)
	for i := 0; i < 2; i++ {
		w, resp = env.do(t, http.MethodDelete, path, nil)
		require.Equal(t, http.StatusOK, w.Code, "cancel #%d: %s", i+1, w.Body.String())
		assert.Equal(t, "cancelled", dataObject(t, resp)["status"])
	}

	w, resp = env.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := dataObject(t, resp)
	assert.Equal(t, "cancelled", got["status"])
	patient, ok := got["patient"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "jane.smith@example.com", patient["email"])
}

func TestCreateAppointment_UnknownPatient(t *testing.T) {
	env := setupTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/appointments/", map[string]interface{}{
		"patient_id":       999999,
		"appointment_date": "2030-01-01T09:00:00",
		"description":      "Checkup",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, resp["success"])

	var count int64
	env.db.Model(&model.Appointment{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateAppointment_Validation(t *testing.T) {
	env := setupTestEnv(t)
	patientID := createJane(t, env)

	w, resp := env.do(t, http.MethodPost, "/appointments/", map[string]interface{}{
		"patient_id":       patientID,
		"appointment_date": "2020-01-01T09:00:00",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"appointment_date"}, violatedFields(t, resp))

	w, resp = env.do(t, http.MethodPost, "/appointments/", map[string]interface{}{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.ElementsMatch(t, []string{"patient_id", "appointment_date"}, violatedFields(t, resp))
}

func TestUpdateAppointment(t *testing.T) {
	env := setupTestEnv(t)
	patientID := createJane(t, env)
	_, resp := env.do(t, http.MethodPost, "/appointments/", map[string]interface{}{
		"patient_id": patientID, "appointment_date": "2030-01-01T09:00:00", "description": "Checkup",
	})
	path := fmt.Sprintf("/appointments/%d", idOf(t, resp))

	w, resp := env.do(t, http.MethodPut, path, map[string]interface{}{
		"patient_id":  patientID,
		"description": "Follow-up",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Follow-up", dataObject(t, resp)["description"])

	w, resp = env.do(t, http.MethodPut, path, map[string]interface{}{"patient_id": patientID + 1})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"patient_id"}, violatedFields(t, resp))

	w, resp = env.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(patientID), dataObject(t, resp)["patient_id"])

	w, _ = env.do(t, http.MethodPut, path, map[string]interface{}{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)
	w, resp = env.do(t, http.MethodPut, path, map[string]interface{}{"status": "scheduled"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"status"}, violatedFields(t, resp))

	w, _ = env.do(t, http.MethodPut, "/appointments/999999", map[string]interface{}{"description": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAppointments(t *testing.T) {
	env := setupTestEnv(t)
	patientID := createJane(t, env)

	for _, date := range []string{"2030-01-01T09:00:00", "2030-02-01 10:00"} {
		w, _ := env.do(t, http.MethodPost, "/appointments/", map[string]interface{}{"patient_id": patientID, "appointment_date": date})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	env.do(t, http.MethodDelete, "/appointments/2", nil)

	w, resp := env.do(t, http.MethodGet, "/appointments/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := dataList(t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "scheduled", list[0].(map[string]interface{})["status"])
	assert.Equal(t, "cancelled", list[1].(map[string]interface{})["status"])

	w, resp = env.do(t, http.MethodGet, fmt.Sprintf("/patients/%d/appointments", patientID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, resp), 2)

	w, _ = env.do(t, http.MethodGet, "/patients/999999/appointments", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
