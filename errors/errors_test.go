package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       ErrorCode
		httpStatus int
		retryable  bool
	}{
		{"missing field", MissingField("audio"), ErrCodeMissingField, http.StatusBadRequest, false},
		{"invalid input", InvalidInput("role", "too long"), ErrCodeInvalidInput, http.StatusBadRequest, false},
		{"validation", Validation("role must be shorter"), ErrCodeInvalidInput, http.StatusBadRequest, false},
		{"timeout", Timeout("transcription"), ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{"internal", Internal(stderrors.New("boom")), ErrCodeInternal, http.StatusInternalServerError, false},
		{"external service", ExternalServiceError("transcription", stderrors.New("down")), ErrCodeExternalService, http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestMissingFieldDetails(t *testing.T) {
	err := MissingField("audio")
	assert.Equal(t, "audio", err.Details["field"])
	assert.Contains(t, err.Message, "audio")
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := ExternalServiceError("transcription", cause)

	assert.True(t, stderrors.Is(err, cause))

	wrapped := fmt.Errorf("pipeline failed: %w", err)
	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeExternalService, appErr.Code)
}

func TestAsAppErrorPlainError(t *testing.T) {
	_, ok := AsAppError(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestWithCauseAndDetail(t *testing.T) {
	cause := stderrors.New("root")
	err := Validation("bad input").WithCause(cause).WithDetail("field", "role")

	assert.Equal(t, cause, err.Unwrap())
	assert.Equal(t, "role", err.Details["field"])
	assert.Contains(t, err.Error(), "root")
}

func TestToResponse(t *testing.T) {
	err := MissingField("audio")
	resp := err.ToResponse()

	assert.Equal(t, ErrCodeMissingField, resp.Error.Code)
	assert.Equal(t, err.Message, resp.Error.Message)
	assert.False(t, resp.Error.Retryable)
	assert.Equal(t, "audio", resp.Error.Details["field"])
}

func TestIsRetryableCode(t *testing.T) {
	assert.True(t, IsRetryableCode(ErrCodeTimeout))
	assert.True(t, IsRetryableCode(ErrCodeRateLimited))
	assert.True(t, IsRetryableCode(ErrCodeExternalService))
	assert.False(t, IsRetryableCode(ErrCodeInvalidInput))
	assert.False(t, IsRetryableCode(ErrCodeInternal))
}
