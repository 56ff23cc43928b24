package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckWithoutReadwise(t *testing.T) {
	_, api := setupTestServer(t, "", "", businessStub())

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[HealthResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))

	assert.Equal(t, "degraded", envelope.Data.Status)
	assert.Equal(t, "healthy", envelope.Data.Components["taxonomy"].Status)
	assert.Equal(t, "degraded", envelope.Data.Components["readwise"].Status)
}

func TestHealthCheckWithReadwise(t *testing.T) {
	_, api := setupTestServer(t, "http://localhost:0", "test-token", businessStub())

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[HealthResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "healthy", envelope.Data.Status)
}
