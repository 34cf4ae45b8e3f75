package llm

import (
	"encoding/json"
	"strings"
	"unicode"

	"interviewcoach/api/internal/models"
)

// ParseQuestions extracts a question list from raw model output. Lines are
// kept when they start with a number or a "Q" marker; numbering and labels
// are stripped. Falls back to the generic question bank when nothing matches.
func ParseQuestions(raw string) []string {
	var questions []string

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !unicode.IsDigit(rune(line[0])) && !strings.HasPrefix(line, "Q") {
			continue
		}

		question := line
		if idx := strings.Index(line, ". "); idx >= 0 {
			question = line[idx+2:]
		} else if idx := strings.Index(line, ": "); idx >= 0 {
			question = line[idx+2:]
		}
		questions = append(questions, question)
	}

	if len(questions) == 0 {
		return FallbackRoleQuestions("General", 3)
	}
	return questions
}

// ParseEvaluation extracts the JSON object between the first "{" and the
// last "}" of the raw model output. On any failure it returns a fixed
// best-effort evaluation with the raw text preserved as feedback, so
// nothing the model said is silently discarded.
func ParseEvaluation(raw string) models.EvaluationResult {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start >= 0 && end > start {
		var result models.EvaluationResult
		if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err == nil {
			return result
		}
	}

	return models.EvaluationResult{
		Score:            7,
		Strengths:        []string{"Good attempt at answering the question"},
		Weaknesses:       []string{"Could provide more specific examples"},
		Feedback:         raw,
		ImprovementAreas: []string{"Provide more concrete examples", "Structure your response better"},
		Resources:        []string{"Interview preparation guides", "STAR method resources"},
	}
}
