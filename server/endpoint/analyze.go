package endpoint

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	apperrors "github.com/saathilabs/interview-coach/errors"
	"github.com/saathilabs/interview-coach/interview"
	"github.com/saathilabs/interview-coach/server"
)

// Analyze returns the handler for POST /api/analyze. It expects a multipart
// form with an "audio" file and optional "role" and "question" fields, and
// responds with the full analysis report.
func Analyze(svc *interview.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("audio")
		if err != nil {
			server.RespondWithError(c, apperrors.MissingField("audio"))
			return
		}
		defer file.Close()

		report, err := svc.AnalyzeAnswer(c.Request.Context(), interview.AnswerUpload{
			Audio:    file,
			Suffix:   filepath.Ext(header.Filename),
			Role:     c.PostForm("role"),
			Question: c.PostForm("question"),
		})
		if err != nil {
			server.RespondWithError(c, err)
			return
		}

		server.RespondOK(c, report)
	}
}
