package llm

import "context"

// CompletionRequest is a single completion call to an LLM provider.
type CompletionRequest struct {
	Prompt        string
	SystemMessage string
	MaxTokens     int32
	Temperature   float32
}

// defines the interface for LLM providers
type Provider interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

// Common error codes
// For current and future use across different providers
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)
