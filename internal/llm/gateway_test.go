package llm

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/prompts"
)

type mockProvider struct {
	completeFn func(ctx context.Context, req *CompletionRequest) (string, error)
	lastReq    *CompletionRequest
	calls      int
}

func (m *mockProvider) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	m.calls++
	m.lastReq = req
	if m.completeFn == nil {
		return "mock response", nil
	}
	return m.completeFn(ctx, req)
}

func (m *mockProvider) GetProviderName() string {
	return "mock"
}

func newTestGateway(t *testing.T, provider Provider) *Gateway {
	t.Helper()
	builder, err := prompts.NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder error: %v", err)
	}
	return NewGateway(provider, builder, zap.NewNop())
}

func failingProvider() *mockProvider {
	return &mockProvider{
		completeFn: func(ctx context.Context, req *CompletionRequest) (string, error) {
			return "", &ProviderError{Provider: "mock", Code: ErrCodeServiceDown, Message: "down"}
		},
	}
}

func TestGenerateQuestionSuccess(t *testing.T) {
	provider := &mockProvider{
		completeFn: func(ctx context.Context, req *CompletionRequest) (string, error) {
			if !strings.Contains(req.Prompt, "backend engineer") {
				t.Fatalf("expected target role in prompt, got: %s", req.Prompt)
			}
			if !strings.Contains(req.Prompt, "technical") || !strings.Contains(req.Prompt, "beginner") {
				t.Fatalf("expected category and difficulty in prompt, got: %s", req.Prompt)
			}
			if req.SystemMessage == "" {
				t.Fatal("expected a system message")
			}
			return "What is a goroutine?", nil
		},
	}
	gateway := newTestGateway(t, provider)

	profile := models.UserProfile{CareerField: "software_engineering", TargetRole: "backend engineer"}
	question := gateway.GenerateQuestion(context.Background(), profile, "technical", "beginner")
	if question != "What is a goroutine?" {
		t.Fatalf("unexpected question: %q", question)
	}
}

func TestGenerateQuestionFallbackOnProviderError(t *testing.T) {
	gateway := newTestGateway(t, failingProvider())

	question := gateway.GenerateQuestion(context.Background(), models.UserProfile{}, "technical", "beginner")
	if question != FallbackSingleQuestion("technical", "beginner") {
		t.Fatalf("expected canned fallback question, got %q", question)
	}
	if question == "" {
		t.Fatal("fallback must never be empty")
	}
}

func TestEvaluateResponseUsesFixedLowTemperature(t *testing.T) {
	provider := &mockProvider{
		completeFn: func(ctx context.Context, req *CompletionRequest) (string, error) {
			return `{"score": 9, "strengths": ["good"], "weaknesses": [], "feedback": "nice", "improvement_areas": [], "resources": []}`, nil
		},
	}
	gateway := newTestGateway(t, provider)

	result := gateway.EvaluateResponse(context.Background(), "q", "a", "behavioral")
	if result.Score != 9 {
		t.Fatalf("expected parsed score 9, got %d", result.Score)
	}
	if provider.lastReq.Temperature != 0.3 {
		t.Fatalf("expected evaluation temperature 0.3, got %v", provider.lastReq.Temperature)
	}
}

func TestEvaluateResponseFallbackOnProviderError(t *testing.T) {
	gateway := newTestGateway(t, failingProvider())

	result := gateway.EvaluateResponse(context.Background(), "q", "a", "behavioral")
	if result.Score != 6 {
		t.Fatalf("expected transport fallback score 6, got %d", result.Score)
	}
}

func TestEvaluateResponseParsesMalformedOutputToFallback(t *testing.T) {
	provider := &mockProvider{
		completeFn: func(ctx context.Context, req *CompletionRequest) (string, error) {
			return "I refuse to emit JSON today", nil
		},
	}
	gateway := newTestGateway(t, provider)

	result := gateway.EvaluateResponse(context.Background(), "q", "a", "behavioral")
	if result.Score != 7 {
		t.Fatalf("expected parse fallback score 7, got %d", result.Score)
	}
	if result.Feedback != "I refuse to emit JSON today" {
		t.Fatalf("expected raw text preserved, got %q", result.Feedback)
	}
}

func TestGenerateRoleQuestionsSuccess(t *testing.T) {
	provider := &mockProvider{
		completeFn: func(ctx context.Context, req *CompletionRequest) (string, error) {
			if !strings.Contains(req.Prompt, "5") || !strings.Contains(req.Prompt, "staff engineer") {
				t.Fatalf("expected count and role in prompt, got: %s", req.Prompt)
			}
			return "1. One\n2. Two\n3. Three", nil
		},
	}
	gateway := newTestGateway(t, provider)

	questions := gateway.GenerateRoleQuestions(context.Background(), "staff engineer", 5)
	if len(questions) != 3 || questions[0] != "One" {
		t.Fatalf("unexpected questions: %v", questions)
	}
}

func TestGenerateRoleQuestionsFallbackOnProviderError(t *testing.T) {
	gateway := newTestGateway(t, failingProvider())

	questions := gateway.GenerateRoleQuestions(context.Background(), "Data Scientist", 2)
	if len(questions) != 2 {
		t.Fatalf("expected 2 fallback questions, got %d", len(questions))
	}
	if questions[0] != "Walk me through a data analysis project you worked on." {
		t.Fatalf("expected data scientist bank, got %v", questions)
	}
}

func TestGenerateQAFeedbackUsesHigherTokenBudget(t *testing.T) {
	provider := &mockProvider{}
	gateway := newTestGateway(t, provider)

	pairs := []models.QAPair{{Question: "q", Answer: "a"}}
	feedback := gateway.GenerateQAFeedback(context.Background(), pairs, "General")
	if feedback != "mock response" {
		t.Fatalf("unexpected feedback: %q", feedback)
	}
	if provider.lastReq.MaxTokens != 2000 {
		t.Fatalf("expected 2000 token budget, got %d", provider.lastReq.MaxTokens)
	}
	if provider.lastReq.Temperature != 0.3 {
		t.Fatalf("expected temperature 0.3, got %v", provider.lastReq.Temperature)
	}
	if !strings.Contains(provider.lastReq.Prompt, "Question 1: q") {
		t.Fatalf("expected pairs appended to prompt, got: %s", provider.lastReq.Prompt)
	}
}

func TestGenerateQAFeedbackFallbackOnProviderError(t *testing.T) {
	gateway := newTestGateway(t, failingProvider())

	pairs := []models.QAPair{{Question: "Why us?", Answer: "Reasons."}}
	feedback := gateway.GenerateQAFeedback(context.Background(), pairs, "General")
	if !strings.Contains(feedback, "Question 1: Why us?") || !strings.Contains(feedback, "✅ Strengths:") {
		t.Fatalf("expected canned section format, got: %s", feedback)
	}
}

func TestGatewayMakesSingleAttempt(t *testing.T) {
	provider := failingProvider()
	gateway := newTestGateway(t, provider)

	gateway.GenerateQuestion(context.Background(), models.UserProfile{}, "behavioral", "beginner")
	if provider.calls != 1 {
		t.Fatalf("expected exactly one provider call, got %d", provider.calls)
	}
}
