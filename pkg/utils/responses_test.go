package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	ResponseBadRequest(w, "Validation failed", map[string]string{"name": "name is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.False(t, body.Status)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Nil(t, body.Data)
	assert.Equal(t, map[string]any{"name": "name is required"}, body.Errors)
}

func TestResponseUnencodableData(t *testing.T) {
	w := httptest.NewRecorder()
	ResponseSuccess(w, "ok", make(chan int))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}
