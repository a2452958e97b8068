package endpoint

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/saathilabs/interview-coach/errors"
	"github.com/saathilabs/interview-coach/interview"
	"github.com/saathilabs/interview-coach/server"
	"github.com/saathilabs/interview-coach/validation"
)

// QuestionRequest is the JSON body accepted by POST /api/question.
type QuestionRequest struct {
	Role string `json:"role" validate:"max=200"`
}

// Question returns a handler that generates an interview question for a role.
// The role is optional: GET reads it from the query string, POST from the
// JSON body; an absent role falls back to the service default.
func Question(svc *interview.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuestionRequest

		if c.Request.Method == "POST" && c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				server.RespondWithError(c, apperrors.InvalidInput("", "request body must be valid JSON"))
				return
			}
			if err := validation.Validate(req); err != nil {
				server.RespondWithError(c, err)
				return
			}
		} else {
			req.Role = c.Query("role")
		}

		question, err := svc.GenerateQuestion(c.Request.Context(), req.Role)
		if err != nil {
			server.RespondWithError(c, err)
			return
		}

		role := req.Role
		if role == "" {
			role = interview.DefaultRole
		}
		server.RespondOK(c, gin.H{
			"question": question,
			"role":     role,
		})
	}
}
