package testutil

import (
	"sync"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewCompletion builds a completion response with one choice per text
func NewCompletion(texts ...string) openai.ChatCompletionResponse {
	resp := openai.ChatCompletionResponse{}
	for i, text := range texts {
		resp.Choices = append(resp.Choices, openai.ChatCompletionChoice{
			Index: i,
			Message: openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: text,
			},
		})
	}
	return resp
}

// RecordingReplier collects replies in the order they were sent
type RecordingReplier struct {
	mu      sync.Mutex
	Replies []string
	Err     error
}

func (r *RecordingReplier) Reply(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Replies = append(r.Replies, text)
	return r.Err
}

// Last returns the most recent reply or an empty string
func (r *RecordingReplier) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Replies) == 0 {
		return ""
	}
	return r.Replies[len(r.Replies)-1]
}

// Reset forgets recorded replies
func (r *RecordingReplier) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Replies = nil
}
