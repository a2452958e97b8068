// Package interview orchestrates question generation and answer analysis:
// save the uploaded audio, transcribe it, evaluate the transcript, and
// derive the readiness score.
package interview

import (
	"context"
	"io"

	"github.com/saathilabs/interview-coach/analysis"
	"github.com/saathilabs/interview-coach/audiostore"
	"github.com/saathilabs/interview-coach/errors"
	"github.com/saathilabs/interview-coach/logger"
	"github.com/saathilabs/interview-coach/readiness"
	"github.com/saathilabs/interview-coach/transcription"
)

const (
	// DefaultRole is assumed when the client sends no role.
	DefaultRole = "Software Engineer"
	// DefaultQuestion is assumed when the client sends no question.
	DefaultQuestion = "Tell me about yourself."

	// xpPerAnswer is the flat experience reward per analyzed answer.
	xpPerAnswer = 50
)

// AnswerUpload is a recorded answer plus its interview context.
type AnswerUpload struct {
	// Audio is the uploaded audio stream.
	Audio io.Reader
	// Suffix is the audio file extension including the dot (e.g. ".webm").
	Suffix string
	// Role is the job role; empty means DefaultRole.
	Role string
	// Question is the interview question; empty means DefaultQuestion.
	Question string
}

// Report is the per-request analysis result returned to the client.
// It is never persisted.
type Report struct {
	Transcript                  string   `json:"transcript"`
	GrammarScore                float64  `json:"grammar_score"`
	StructureScore              float64  `json:"structure_score"`
	ProfessionalToneScore       float64  `json:"professional_tone_score"`
	ConfidenceScore             float64  `json:"confidence_score"`
	FillerWords                 []string `json:"filler_words"`
	StarMethodDetected          bool     `json:"star_method_detected"`
	ImprovementSuggestions      []string `json:"improvement_suggestions"`
	RewrittenProfessionalAnswer string   `json:"rewritten_professional_answer"`
	ReadinessScore              float64  `json:"readiness_score"`
	XPEarned                    int      `json:"xp_earned"`
}

// Service wires the transcription and analysis providers together.
type Service struct {
	transcriber transcription.Provider
	analyzer    analysis.Provider
	store       *audiostore.Store
	log         *logger.Logger
}

// NewService creates the interview service.
func NewService(transcriber transcription.Provider, analyzer analysis.Provider, store *audiostore.Store, log *logger.Logger) *Service {
	return &Service{
		transcriber: transcriber,
		analyzer:    analyzer,
		store:       store,
		log:         log.WithComponent("interview"),
	}
}

// GenerateQuestion returns an interview question for the role.
func (s *Service) GenerateQuestion(ctx context.Context, role string) (string, error) {
	if role == "" {
		role = DefaultRole
	}

	question, err := s.analyzer.GenerateQuestion(ctx, role)
	if err != nil {
		s.log.WithError(err).Error("Question generation failed", map[string]interface{}{
			logger.FieldRole:     role,
			logger.FieldProvider: s.analyzer.Name(),
		})
		return "", errors.ExternalServiceError("question generation", err)
	}
	return question, nil
}

// AnalyzeAnswer runs the full pipeline for one recorded answer. The audio is
// written to a temporary file that is removed on every exit path.
func (s *Service) AnalyzeAnswer(ctx context.Context, upload AnswerUpload) (*Report, error) {
	if upload.Audio == nil {
		return nil, errors.MissingField("audio")
	}
	if upload.Role == "" {
		upload.Role = DefaultRole
	}
	if upload.Question == "" {
		upload.Question = DefaultQuestion
	}

	audioPath, err := s.store.Save(upload.Audio, upload.Suffix)
	if err != nil {
		return nil, errors.Internal(err)
	}
	defer func() {
		if err := s.store.Remove(audioPath); err != nil {
			s.log.WithError(err).Warn("Temp audio cleanup failed", map[string]interface{}{
				"path": audioPath,
			})
		}
	}()

	transcript, err := s.transcriber.Transcribe(ctx, transcription.Request{
		AudioPath: audioPath,
	})
	if err != nil {
		s.log.WithError(err).Error("Transcription failed", map[string]interface{}{
			logger.FieldProvider: s.transcriber.Name(),
		})
		return nil, errors.ExternalServiceError("transcription", err)
	}

	evaluation, err := s.analyzer.Evaluate(ctx, analysis.EvaluationRequest{
		Transcript: transcript.Text,
		Role:       upload.Role,
		Question:   upload.Question,
	})
	if err != nil {
		s.log.WithError(err).Error("Answer evaluation failed", map[string]interface{}{
			logger.FieldProvider: s.analyzer.Name(),
		})
		return nil, errors.ExternalServiceError("answer analysis", err)
	}

	scores := readiness.Compute(
		evaluation.GrammarScore,
		evaluation.StructureScore,
		evaluation.ProfessionalToneScore,
		len(evaluation.FillerWords),
	)

	return &Report{
		Transcript:                  transcript.Text,
		GrammarScore:                evaluation.GrammarScore,
		StructureScore:              evaluation.StructureScore,
		ProfessionalToneScore:       evaluation.ProfessionalToneScore,
		ConfidenceScore:             scores.Confidence,
		FillerWords:                 evaluation.FillerWords,
		StarMethodDetected:          evaluation.StarMethodDetected,
		ImprovementSuggestions:      evaluation.ImprovementSuggestions,
		RewrittenProfessionalAnswer: evaluation.RewrittenProfessionalAnswer,
		ReadinessScore:              scores.Readiness,
		XPEarned:                    xpPerAnswer,
	}, nil
}
