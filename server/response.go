package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/saathilabs/interview-coach/errors"
)

// RespondWithError is the single response-mapping layer for failures:
// if err is an *apperrors.AppError the status and structured body are derived
// from it; anything else becomes a generic 500.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}

// RespondOK sends a 200 response with the given body.
func RespondOK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}
