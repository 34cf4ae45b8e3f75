package llm

import (
	"context"

	"go.uber.org/zap"

	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/prompts"
)

// Evaluation and Q&A feedback run at a low fixed temperature for
// determinism, independent of the configured default used elsewhere.
const (
	evaluationTemperature = 0.3
	qaFeedbackMaxTokens   = 2000
)

// Gateway is the only place the external LLM capability is invoked.
// Every operation makes a single attempt and degrades to a deterministic
// canned result on failure; no provider error escapes this boundary.
type Gateway struct {
	provider Provider
	builder  *prompts.Builder
	logger   *zap.Logger
}

func NewGateway(provider Provider, builder *prompts.Builder, logger *zap.Logger) *Gateway {
	return &Gateway{
		provider: provider,
		builder:  builder,
		logger:   logger,
	}
}

// GenerateQuestion produces one interview question tailored to the profile.
func (g *Gateway) GenerateQuestion(ctx context.Context, profile models.UserProfile, category, difficulty string) string {
	prompt, err := g.builder.QuestionPrompt(profile, category, difficulty)
	if err != nil {
		g.logger.Error("Failed to build question prompt", zap.Error(err))
		return FallbackSingleQuestion(category, difficulty)
	}

	text, err := g.provider.Complete(ctx, &CompletionRequest{
		Prompt:        prompt,
		SystemMessage: g.builder.SystemMessage(prompts.ModeQuestion),
	})
	if err != nil {
		g.logger.Error("Question generation failed, using fallback",
			zap.Error(err),
			zap.String("category", category),
			zap.String("difficulty", difficulty))
		return FallbackSingleQuestion(category, difficulty)
	}

	return text
}

// EvaluateResponse scores an answer against its question.
func (g *Gateway) EvaluateResponse(ctx context.Context, question, response, category string) models.EvaluationResult {
	prompt, err := g.builder.EvaluationPrompt(question, response, category)
	if err != nil {
		g.logger.Error("Failed to build evaluation prompt", zap.Error(err))
		return FallbackEvaluation()
	}

	text, err := g.provider.Complete(ctx, &CompletionRequest{
		Prompt:        prompt,
		SystemMessage: g.builder.SystemMessage(prompts.ModeEvaluation),
		Temperature:   evaluationTemperature,
	})
	if err != nil {
		g.logger.Error("Response evaluation failed, using fallback",
			zap.Error(err),
			zap.String("category", category))
		return FallbackEvaluation()
	}

	return ParseEvaluation(text)
}

// GenerateRoleQuestions produces a list of questions for a role.
func (g *Gateway) GenerateRoleQuestions(ctx context.Context, role string, count int) []string {
	prompt, err := g.builder.RoleQuestionsPrompt(role, count)
	if err != nil {
		g.logger.Error("Failed to build role questions prompt", zap.Error(err))
		return FallbackRoleQuestions(role, count)
	}

	text, err := g.provider.Complete(ctx, &CompletionRequest{
		Prompt:        prompt,
		SystemMessage: g.builder.SystemMessage(prompts.ModeRoleQuestions),
	})
	if err != nil {
		g.logger.Error("Role question generation failed, using fallback",
			zap.Error(err),
			zap.String("role", role))
		return FallbackRoleQuestions(role, count)
	}

	return ParseQuestions(text)
}

// GenerateQAFeedback produces the "---" delimited feedback block for a
// list of question/answer pairs.
func (g *Gateway) GenerateQAFeedback(ctx context.Context, pairs []models.QAPair, role string) string {
	prompt, err := g.builder.QAFeedbackPrompt(pairs, role)
	if err != nil {
		g.logger.Error("Failed to build Q&A feedback prompt", zap.Error(err))
		return FallbackQAFeedback(pairs)
	}

	text, err := g.provider.Complete(ctx, &CompletionRequest{
		Prompt:        prompt,
		SystemMessage: g.builder.SystemMessage(prompts.ModeQAFeedback),
		MaxTokens:     qaFeedbackMaxTokens,
		Temperature:   evaluationTemperature,
	})
	if err != nil {
		g.logger.Error("Q&A feedback generation failed, using fallback",
			zap.Error(err),
			zap.String("role", role),
			zap.Int("qa_count", len(pairs)))
		return FallbackQAFeedback(pairs)
	}

	return text
}

func (g *Gateway) ProviderName() string {
	return g.provider.GetProviderName()
}
