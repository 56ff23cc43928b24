package api

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/nextreadapp/nextread-server/internal/errors"
)

func TestRegisterErrorHandlerMapsDomainErrors(t *testing.T) {
	RegisterErrorHandler()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domainerrors.Validation("bad input"), 400, "VALIDATION"},
		{"not found", domainerrors.NotFound("missing"), 404, "NOT_FOUND"},
		{"config", domainerrors.Config("no key"), 500, "CONFIG"},
		{"upstream", domainerrors.Upstream("provider down"), 502, "UPSTREAM"},
		{"internal", domainerrors.Internal("boom"), 500, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statusErr := huma.NewError(500, "fallback message", tt.err)

			apiErr, ok := statusErr.(*APIError)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, apiErr.GetStatus())
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestRegisterErrorHandlerKeepsDetails(t *testing.T) {
	RegisterErrorHandler()

	err := domainerrors.Validation("request validation failed").
		WithDetails(map[string]any{"title": "is required"})

	statusErr := huma.NewError(500, "ignored", err)
	apiErr, ok := statusErr.(*APIError)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"title": "is required"}, apiErr.Details)
}

func TestRegisterErrorHandlerFallsBackToStatus(t *testing.T) {
	RegisterErrorHandler()

	statusErr := huma.NewError(422, "invalid body")
	apiErr, ok := statusErr.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 422, apiErr.GetStatus())
	assert.Equal(t, "VALIDATION", apiErr.Code)
	assert.Equal(t, "invalid body", apiErr.Message)
}

func TestStatusToCode(t *testing.T) {
	assert.Equal(t, "VALIDATION", statusToCode(400))
	assert.Equal(t, "VALIDATION", statusToCode(422))
	assert.Equal(t, "NOT_FOUND", statusToCode(404))
	assert.Equal(t, "UPSTREAM", statusToCode(502))
	assert.Equal(t, "INTERNAL", statusToCode(500))
	assert.Equal(t, "INTERNAL", statusToCode(418))
}
