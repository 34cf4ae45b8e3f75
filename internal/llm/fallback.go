package llm

import (
	"fmt"
	"strings"

	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/utils"
)

// Canned results returned when the provider fails or produces unusable
// output. Deterministic on purpose: the caller must never see a raw
// provider error, the worst outcome is a generic answer.

var fallbackRoleQuestions = map[string][]string{
	"software_engineer": {
		"Tell me about a challenging technical problem you solved recently.",
		"How do you approach debugging a complex system issue?",
		"Describe a time when you had to learn a new technology quickly.",
	},
	"data_scientist": {
		"Walk me through a data analysis project you worked on.",
		"How do you handle missing or inconsistent data?",
		"Explain a machine learning model you've implemented.",
	},
	"product_manager": {
		"How do you prioritize features in a product roadmap?",
		"Tell me about a time you had to make a difficult product decision.",
		"How do you gather and analyze user feedback?",
	},
}

var genericRoleQuestions = []string{
	"Tell me about yourself and your background.",
	"What are your greatest strengths and weaknesses?",
	"Where do you see yourself in 5 years?",
}

var fallbackSingleQuestions = map[string]map[string]string{
	"behavioral": {
		models.DifficultyBeginner:     "Tell me about a time when you had to work with a difficult team member.",
		models.DifficultyIntermediate: "Describe a situation where you had to adapt to a significant change at work.",
		models.DifficultyAdvanced:     "Tell me about a time when you had to make a difficult decision with limited information.",
	},
	"technical": {
		models.DifficultyBeginner:     "What programming languages are you most comfortable with?",
		models.DifficultyIntermediate: "How would you approach debugging a complex system issue?",
		models.DifficultyAdvanced:     "Explain how you would design a scalable architecture for a high-traffic application.",
	},
}

// FallbackRoleQuestions returns up to count canned questions for the role.
// Unrecognized roles get the generic bank.
func FallbackRoleQuestions(role string, count int) []string {
	questions, ok := fallbackRoleQuestions[utils.NormalizeRole(role)]
	if !ok {
		questions = genericRoleQuestions
	}

	if count <= 0 || count > len(questions) {
		count = len(questions)
	}

	result := make([]string, count)
	copy(result, questions[:count])
	return result
}

// FallbackSingleQuestion returns one canned question for the category and
// difficulty, or a generic opener for unknown combinations.
func FallbackSingleQuestion(category, difficulty string) string {
	if byDifficulty, ok := fallbackSingleQuestions[category]; ok {
		if question, ok := byDifficulty[difficulty]; ok {
			return question
		}
	}
	return "Tell me about yourself."
}

// FallbackQAFeedback builds the same section format the model is asked to
// produce, with fixed generic content per pair.
func FallbackQAFeedback(pairs []models.QAPair) string {
	var feedback strings.Builder
	for i, pair := range pairs {
		feedback.WriteString(fmt.Sprintf(`---
Question %d: %s
Candidate Answer: %s
✅ Strengths:
- Attempted to answer the question
- Showed some understanding of the topic

⚠️ Weaknesses:
- Response could be more detailed
- Missing specific examples
- Could improve structure

💡 Suggestion:
- Use the STAR method (Situation, Task, Action, Result) to structure your response
- Provide specific examples from your experience
- Be more concise and focused

---
`, i+1, pair.Question, pair.Answer))
	}
	return feedback.String()
}

// FallbackEvaluation is the canned verdict used when the provider call
// itself fails (as opposed to returning unparseable text).
func FallbackEvaluation() models.EvaluationResult {
	return models.EvaluationResult{
		Score:            6,
		Strengths:        []string{"Attempted to answer the question"},
		Weaknesses:       []string{"Response could be more detailed"},
		Feedback:         "Your response shows effort, but could benefit from more specific examples and structure.",
		ImprovementAreas: []string{"Provide specific examples", "Use the STAR method", "Be more concise"},
		Resources:        []string{"Interview preparation guides", "STAR method resources"},
	}
}
