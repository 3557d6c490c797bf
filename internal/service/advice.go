package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	nutritionSystemPrompt = "You are a helpful nutrition assistant."
	smallTalkSystemPrompt = "You are a helpful assistant."
	smallTalkUserPrompt   = "How are you?"
)

var errEmptyCompletion = errors.New("completion returned no text")

// ChatCompleter is the part of the OpenAI client the advice service needs
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AdviceService asks the completion API for short advisory text.
// Every call is a single best-effort exchange without history.
type AdviceService struct {
	client  ChatCompleter
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewAdviceService creates a new advice service
func NewAdviceService(client ChatCompleter, model string, timeout time.Duration, logger *zap.Logger) *AdviceService {
	return &AdviceService{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// NewOpenAIClient builds the OpenAI client, honoring a custom base URL
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// MealAdvice returns nutritional advice for a meal, or false if unavailable
func (s *AdviceService) MealAdvice(ctx context.Context, meal string) (string, bool) {
	return s.ask(ctx, nutritionSystemPrompt, fmt.Sprintf("I ate %s. Please provide nutritional advice.", meal))
}

// SmallTalk answers "how are you", or false if unavailable
func (s *AdviceService) SmallTalk(ctx context.Context) (string, bool) {
	return s.ask(ctx, smallTalkSystemPrompt, smallTalkUserPrompt)
}

func (s *AdviceService) ask(ctx context.Context, system, user string) (string, bool) {
	text, err := s.complete(ctx, system, user)
	if err != nil {
		s.logger.Error("Completion request failed",
			zap.Error(err),
			zap.String("model", s.model),
		)
		return "", false
	}
	return text, true
}

func (s *AdviceService) complete(ctx context.Context, system, user string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errEmptyCompletion
	}
	return text, nil
}
