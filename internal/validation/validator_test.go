package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextreadapp/nextread-server/internal/errors"
)

type sampleRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Limit  int    `json:"limit" validate:"min=1,max=20"`
}

func TestStructValid(t *testing.T) {
	v := New()
	err := v.Struct(sampleRequest{Title: "Dune", Author: "Frank Herbert", Limit: 5})
	assert.NoError(t, err)
}

func TestStructInvalid(t *testing.T) {
	v := New()
	err := v.Struct(sampleRequest{Limit: 50})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))

	var domainErr *errors.Error
	require.True(t, errors.As(err, &domainErr))
	details, ok := domainErr.Details.(map[string]any)
	require.True(t, ok)
	// field names come from json tags, not Go field names
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "author")
	assert.Contains(t, details, "limit")
	assert.Equal(t, "is required", details["title"])
	assert.Equal(t, "must be at most 20", details["limit"])
}
