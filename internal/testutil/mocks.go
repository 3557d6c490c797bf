package testutil

import (
	"context"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/mock"
)

// MockMealRepository is a mock for MealRepository
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) Append(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

func (m *MockMealRepository) List(ctx context.Context, chatID int64) ([]string, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMealRepository) Clear(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

// MockChatCompleter is a mock for the OpenAI chat completion call
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

// MockAdvisor is a mock for the advice provider used by the dialog router
type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) MealAdvice(ctx context.Context, meal string) (string, bool) {
	args := m.Called(ctx, meal)
	return args.String(0), args.Bool(1)
}

func (m *MockAdvisor) SmallTalk(ctx context.Context) (string, bool) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1)
}
