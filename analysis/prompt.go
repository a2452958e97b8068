package analysis

import (
	"fmt"
	"strings"
)

// EvaluationSystemPrompt instructs the model to produce the evaluation JSON.
const EvaluationSystemPrompt = `You are an experienced interview coach. You evaluate spoken interview answers from their transcripts and respond with ONLY a JSON object, no markdown and no commentary. The JSON object has these fields:
  "grammar_score": number 0-10,
  "structure_score": number 0-10,
  "professional_tone_score": number 0-10,
  "filler_words": array of filler words found in the answer (e.g. "um", "like"),
  "star_method_detected": boolean, true if the answer follows the STAR method (Situation, Task, Action, Result),
  "improvement_suggestions": array of short, actionable suggestions,
  "rewritten_professional_answer": the answer rewritten in polished professional English.`

// QuestionSystemPrompt instructs the model to produce a single question.
const QuestionSystemPrompt = `You are an experienced interviewer. Given a job role, ask one realistic behavioral or role-specific interview question. Respond with only the question text, no numbering and no commentary.`

// EvaluationPrompt builds the user prompt for answer evaluation.
func EvaluationPrompt(req EvaluationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Role: %s\n", req.Role)
	fmt.Fprintf(&b, "Interview question: %s\n\n", req.Question)
	fmt.Fprintf(&b, "Candidate's transcribed answer:\n%s\n", req.Transcript)
	return b.String()
}

// QuestionPrompt builds the user prompt for question generation.
func QuestionPrompt(role string) string {
	return fmt.Sprintf("The candidate is interviewing for the role: %s", role)
}

// ExtractJSON pulls a JSON object from model output that may contain
// markdown fences or surrounding prose.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s[3:], "\n"); idx >= 0 {
			s = s[3+idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
