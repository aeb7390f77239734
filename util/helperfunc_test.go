package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trim leading whitespace",
			input:    "  John Doe",
			expected: "John Doe",
		},
		{
			name:     "trim trailing whitespace",
			input:    "John Doe  ",
			expected: "John Doe",
		},
		{
			name:     "trim leading and trailing whitespace",
			input:    "  John Doe  ",
			expected: "John Doe",
		},
		{
			name:     "collapse multiple internal spaces",
			input:    "John  Doe",
			expected: "John Doe",
		},
		{
			name:     "collapse many internal spaces",
			input:    "John     Doe",
			expected: "John Doe",
		},
		{
			name:     "trim and collapse combined",
			input:    "  John    Doe  ",
			expected: "John Doe",
		},
		{
			name:     "already normalized",
			input:    "John Doe",
			expected: "John Doe",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "tabs and newlines",
			input:    "John\t\nDoe",
			expected: "John Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResponseHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		call    func(c *gin.Context)
		status  int
		success bool
	}{
		{"ok", func(c *gin.Context) { CallSuccessOK(c, APISuccessParams{Msg: "ok", Data: 1}) }, http.StatusOK, true},
		{"created", func(c *gin.Context) { CallCreated(c, APISuccessParams{Msg: "created", Data: 1}) }, http.StatusCreated, true},
		{"not found", func(c *gin.Context) { CallErrorNotFound(c, APIErrorParams{Msg: "missing", Err: errBoom}) }, http.StatusNotFound, false},
		{"conflict", func(c *gin.Context) { CallConflict(c, APIErrorParams{Msg: "dup", Err: errBoom}) }, http.StatusConflict, false},
		{"too many", func(c *gin.Context) { CallTooManyRequests(c, APIErrorParams{Msg: "slow down", Err: errBoom}) }, http.StatusTooManyRequests, false},
		{"server error", func(c *gin.Context) { CallServerError(c, APIErrorParams{Msg: "oops", Err: errBoom}) }, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.call(c)

			assert.Equal(t, tt.status, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.success, resp.Success)
			if !tt.success {
				assert.Equal(t, "boom", resp.Error)
			}
		})
	}
}

func TestCallValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	CallValidationError(c, APIErrorParams{Msg: "Validation failed", Err: errors.New("email is a required field")},
		[]map[string]string{{"field": "email", "message": "email is a required field"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Data struct {
			Fields []struct {
				Field string `json:"field"`
			} `json:"fields"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Fields, 1)
	assert.Equal(t, "email", resp.Data.Fields[0].Field)
}

func TestCallErrorWithoutErr(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	CallErrorNotFound(c, APIErrorParams{Msg: "Route not found"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error":""`)
}
