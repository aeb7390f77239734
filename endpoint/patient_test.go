package endpoint

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ariebrainware/clinic-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePatient_RoundTrip(t *testing.T) {
	env := setupTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/patients/", janeSmith())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, true, resp["success"])
	id := idOf(t, resp)
	assert.NotZero(t, id)

	w, resp = env.do(t, http.MethodGet, fmt.Sprintf("/patients/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := dataObject(t, resp)
	for key, want := range janeSmith() {
		assert.Equal(t, want, got[key], "field %s", key)
	}
	assert.Equal(t, float64(id), got["id"])
	assert.Contains(t, env.events.String(), "Event=PATIENT_CREATED")
}

func TestCreatePatient_MissingEmail(t *testing.T) {
	env := setupTestEnv(t)

	body := janeSmith()
	delete(body, "email")
	w, resp := env.do(t, http.MethodPost, "/patients/", body)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, []string{"email"}, violatedFields(t, resp))

	var count int64
	env.db.Model(&model.Patient{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreatePatient_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)

	w, _ := env.do(t, http.MethodPost, "/patients/", janeSmith())
	require.Equal(t, http.StatusCreated, w.Code)

	dup := janeSmith()
	dup["email"] = "Jane.Smith@Example.com"
	w, resp := env.do(t, http.MethodPost, "/patients/", dup)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, resp["success"])

	var count int64
	env.db.Model(&model.Patient{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreatePatient_InvalidBody(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name   string
		body   interface{}
		fields []string
	}{
		{"malformed json", `{"first_name":`, []string{"body"}},
		{"wrong type", `{"first_name": 12}`, []string{"first_name"}},
		{"future birth date", map[string]interface{}{
			"first_name": "Jane", "last_name": "Smith", "date_of_birth": "2999-01-01", "email": "a@b.co",
		}, []string{"date_of_birth"}},
		{"bad phone and email", map[string]interface{}{
			"first_name": "Jane", "last_name": "Smith", "date_of_birth": "1985-05-20",
			"phone_number": "12", "email": "nope",
		}, []string{"phone_number", "email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := env.do(t, http.MethodPost, "/patients/", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
			assert.ElementsMatch(t, tt.fields, violatedFields(t, resp))
		})
	}
}

func TestListPatients(t *testing.T) {
	env := setupTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/patients/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, dataList(t, resp))

	env.do(t, http.MethodPost, "/patients/", janeSmith())
	w, resp = env.do(t, http.MethodGet, "/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, resp), 1)
}

func TestGetPatient_Errors(t *testing.T) {
	env := setupTestEnv(t)

	w, _ := env.do(t, http.MethodGet, "/patients/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp := env.do(t, http.MethodGet, "/patients/abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"id"}, violatedFields(t, resp))
}

func TestUpdatePatient(t *testing.T) {
	env := setupTestEnv(t)
	_, resp := env.do(t, http.MethodPost, "/patients/", janeSmith())
	id := idOf(t, resp)

	w, resp := env.do(t, http.MethodPut, fmt.Sprintf("/patients/%d", id), map[string]interface{}{
		"address": "789 Pine Rd",
		"gender":  "F",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := dataObject(t, resp)
	assert.Equal(t, "789 Pine Rd", got["address"])
	assert.Equal(t, "F", got["gender"])
	assert.Equal(t, "Jane", got["first_name"])

	w, resp = env.do(t, http.MethodPut, fmt.Sprintf("/patients/%d", id), map[string]interface{}{"last_name": ""})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"last_name"}, violatedFields(t, resp))

	w, _ = env.do(t, http.MethodPut, "/patients/999999", map[string]interface{}{"gender": "M"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePatient(t *testing.T) {
	env := setupTestEnv(t)
	_, resp := env.do(t, http.MethodPost, "/patients/", janeSmith())
	id := idOf(t, resp)

	w, _ := env.do(t, http.MethodPost, "/appointments/", map[string]interface{}{
		"patient_id": id, "appointment_date": "2030-01-01T09:00:00", "description": "Checkup",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/patients/%d", id), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = env.do(t, http.MethodDelete, "/appointments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/patients/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = env.do(t, http.MethodGet, fmt.Sprintf("/patients/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/patients/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
