package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saathilabs/interview-coach/errors"
)

type sampleRequest struct {
	Role     string `json:"role" validate:"required,max=10"`
	Language string `json:"language" validate:"omitempty,oneof=en de fr"`
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, Validate(sampleRequest{Role: "SRE"}))
	assert.NoError(t, Validate(sampleRequest{Role: "SRE", Language: "en"}))
}

func TestValidateRequired(t *testing.T) {
	err := Validate(sampleRequest{})
	require.Error(t, err)

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInvalidInput, appErr.Code)
	assert.Contains(t, appErr.Message, "role")
	assert.Contains(t, appErr.Message, "is required")
}

func TestValidateMax(t *testing.T) {
	err := Validate(sampleRequest{Role: "a role name far beyond the limit"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 10")
}

func TestValidateFieldDetails(t *testing.T) {
	err := Validate(sampleRequest{Role: "SRE", Language: "xx"})
	require.Error(t, err)

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	fields, ok := appErr.Details["fields"].([]FieldError)
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "language", fields[0].Field)
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "grammar_score", toSnakeCase("GrammarScore"))
	assert.Equal(t, "role", toSnakeCase("Role"))
}
