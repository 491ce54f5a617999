package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/core/response"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	type book struct {
		Title string `json:"title"`
		Pages int    `json:"pages"`
	}

	resp := response.JSON(book{Title: "Go", Pages: 380})
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	err := resp(w, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var decoded book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, book{Title: "Go", Pages: 380}, decoded)
}

func TestJSONWithStatus(t *testing.T) {
	t.Parallel()

	t.Run("custom status with body", func(t *testing.T) {
		t.Parallel()

		resp := response.JSONWithStatus(map[string]string{"id": "1"}, http.StatusCreated)
		req := httptest.NewRequest("POST", "/", nil)
		w := httptest.NewRecorder()

		err := resp(w, req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
	})

	t.Run("nil with unspecified status becomes 204", func(t *testing.T) {
		t.Parallel()

		resp := response.JSONWithStatus(nil, 0)
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		err := resp(w, req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("204 suppresses body", func(t *testing.T) {
		t.Parallel()

		resp := response.JSONWithStatus(map[string]string{"ignored": "x"}, http.StatusNoContent)
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		err := resp(w, req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("nil with explicit status encodes null", func(t *testing.T) {
		t.Parallel()

		resp := response.JSONWithStatus(nil, http.StatusOK)
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		err := resp(w, req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null\n", w.Body.String())
	})
}
