package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dispatchkit/core/response"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "simple_string",
			content:  "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "empty_string",
			content:  "",
			expected: "",
		},
		{
			name:     "multiline_string",
			content:  "Line 1\nLine 2\nLine 3",
			expected: "Line 1\nLine 2\nLine 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := response.String(tt.content)
			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()

			err := resp(w, req)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expected, w.Body.String())
		})
	}
}

func TestStringWithStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		statusCode int
	}{
		{
			name:       "created_status",
			content:    "Resource created",
			statusCode: http.StatusCreated,
		},
		{
			name:       "bad_request_status",
			content:    "Invalid input",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "zero_status_defaults_to_ok",
			content:    "Default status",
			statusCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := response.StringWithStatus(tt.content, tt.statusCode)
			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()

			err := resp(w, req)

			expectedStatus := tt.statusCode
			if expectedStatus == 0 {
				expectedStatus = http.StatusOK
			}

			assert.NoError(t, err)
			assert.Equal(t, expectedStatus, w.Code)
			assert.Equal(t, tt.content, w.Body.String())
		})
	}
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	resp := response.NoContent()
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	err := resp(w, req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		expected   int
	}{
		{name: "not_found", statusCode: http.StatusNotFound, expected: http.StatusNotFound},
		{name: "teapot", statusCode: http.StatusTeapot, expected: http.StatusTeapot},
		{name: "zero_defaults_to_ok", statusCode: 0, expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := response.Status(tt.statusCode)
			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()

			err := resp(w, req)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, w.Code)
			assert.Empty(t, w.Body.String())
		})
	}
}
