package explainer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"learnboard/internal/config"
	"learnboard/internal/domain"
	"learnboard/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 20 * time.Second
	maxExplanation = 600
)

// llmCaller is the part of a langchaingo model the explainer uses.
type llmCaller interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// llmExplainer implements domain.ExplanationProvider
type llmExplainer struct {
	llmClient llmCaller
	timeout   time.Duration
}

// NewLLMExplainer wraps an LLM client as an ExplanationProvider.
func NewLLMExplainer(llm llmCaller, timeout time.Duration) domain.ExplanationProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &llmExplainer{llmClient: llm, timeout: timeout}
}

// NewOllamaExplainer connects to the Ollama server in cfg. It returns nil when the
// LLM is disabled.
func NewOllamaExplainer(cfg config.LLMConfig) (domain.ExplanationProvider, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	timeout := cfg.Timeout
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return NewLLMExplainer(llm, timeout), nil
}

// Explain implements domain.ExplanationProvider
func (e *llmExplainer) Explain(ctx context.Context, questionText string, correctAnswer string) (string, error) {
	l := logger.Get()

	prompt := fmt.Sprintf(`You are a patient tutor. Explain in at most three sentences why the answer below is correct.
Respond with the explanation only, without headings or lists.

Question: %s
Correct Answer: %s`, questionText, correctAnswer)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.llmClient.Call(ctx, prompt, llms.WithTemperature(0.1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.Error(err))
			return "", domain.NewLLMServiceError(fmt.Errorf("LLM request timed out: %w", err))
		}
		l.Error("Failed to get response from LLM", zap.Error(err))
		return "", domain.NewLLMServiceError(fmt.Errorf("LLM call failed: %w", err))
	}

	explanation := cleanResponse(raw)
	if explanation == "" {
		return "", domain.NewLLMServiceError(errors.New("empty explanation in LLM response"))
	}
	l.Debug("Generated explanation", zap.Int("length", len(explanation)))
	return explanation, nil
}

// cleanResponse strips <think> blocks emitted by reasoning models and caps the length.
func cleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		start := strings.Index(s, "<think>")
		if start == -1 {
			break
		}
		end := strings.Index(s, "</think>")
		if end == -1 || end < start {
			s = s[:start]
			break
		}
		s = s[:start] + s[end+len("</think>"):]
	}
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxExplanation {
		s = strings.TrimSpace(string(r[:maxExplanation])) + "..."
	}
	return s
}
