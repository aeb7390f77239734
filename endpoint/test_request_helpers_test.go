package endpoint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ariebrainware/clinic-api/config"
	"github.com/ariebrainware/clinic-api/model"
	"github.com/ariebrainware/clinic-api/service"
	"github.com/ariebrainware/clinic-api/util"
	"github.com/ariebrainware/clinic-api/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	events *bytes.Buffer
}

// setupTestEnv builds the full router over a fresh in-memory database.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:testdb_%s_%d?mode=memory&cache=shared&_fk=1", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))

	cfg := &config.Config{AppName: "Clinic Management API", AppEnv: "test", RateLimit: 1000, RateLimitWindow: time.Minute}
	v := validation.New(validation.WithClock(func() time.Time { return fixedNow }))
	buf := &bytes.Buffer{}
	events := util.NewEventLogger(buf, nil)

	h := NewHandler(service.NewPatientService(db, v), service.NewAppointmentService(db, v), events)
	router := SetupRouter(RouterOptions{Config: cfg, Handler: h, Events: events})
	return &testEnv{router: router, db: db, events: buf}
}

type requestSpec struct {
	method  string
	path    string
	body    interface{}
	headers map[string]string
}

func performRequest(r *gin.Engine, rs requestSpec) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	var reader *strings.Reader
	setJSONHeader := false
	switch v := rs.body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(v)
		setJSONHeader = true
	default:
		b, _ := json.Marshal(rs.body)
		reader = strings.NewReader(string(b))
		setJSONHeader = true
	}

	req := httptest.NewRequest(rs.method, rs.path, reader)
	if setJSONHeader {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range rs.headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			return w, nil, err
		}
	}
	return w, response, nil
}

// do performs a request and fails the test on an undecodable body.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w, resp, err := performRequest(e.router, requestSpec{method: method, path: path, body: body})
	require.NoError(t, err, "body: %s", w.Body.String())
	return w, resp
}

func dataObject(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "data is not an object: %v", resp["data"])
	return data
}

func dataList(t *testing.T, resp map[string]interface{}) []interface{} {
	t.Helper()
	data, ok := resp["data"].([]interface{})
	require.True(t, ok, "data is not a list: %v", resp["data"])
	return data
}

// violatedFields extracts data.fields[].field from a 422 response.
func violatedFields(t *testing.T, resp map[string]interface{}) []string {
	t.Helper()
	fields, ok := dataObject(t, resp)["fields"].([]interface{})
	require.True(t, ok, "missing data.fields: %v", resp)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.(map[string]interface{})["field"].(string))
	}
	return names
}

func janeSmith() map[string]interface{} {
	return map[string]interface{}{
		"first_name":    "Jane",
		"last_name":     "Smith",
		"date_of_birth": "1985-05-20",
		"gender":        "female",
		"phone_number":  "+254738465744",
		"email":         "jane.smith@example.com",
		"address":       "456 Oak St",
	}
}

func idOf(t *testing.T, resp map[string]interface{}) uint {
	t.Helper()
	id, ok := dataObject(t, resp)["id"].(float64)
	require.True(t, ok, "missing id: %v", resp)
	return uint(id)
}
