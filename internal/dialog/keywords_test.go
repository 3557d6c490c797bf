package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKeyword(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedAction keywordAction
		expectedReply  string
	}{
		{
			name:           "hello",
			input:          "hello",
			expectedAction: replyFixed,
			expectedReply:  "Hello There!",
		},
		{
			name:           "hello is case insensitive",
			input:          "HeLLo bot",
			expectedAction: replyFixed,
			expectedReply:  "Hello There!",
		},
		{
			name:           "how are you asks small talk",
			input:          "Hey, how are you?",
			expectedAction: replySmallTalk,
			expectedReply:  "I am fine, thank you!",
		},
		{
			name:           "bye",
			input:          "ok BYE",
			expectedAction: replyFixed,
			expectedReply:  "Goodbye!",
		},
		{
			name:           "hello wins over later rules",
			input:          "hello, how are you and goodbye",
			expectedAction: replyFixed,
			expectedReply:  "Hello There!",
		},
		{
			name:           "how are you wins over bye",
			input:          "how are you? bye",
			expectedAction: replySmallTalk,
			expectedReply:  "I am fine, thank you!",
		},
		{
			name:           "unknown text",
			input:          "what's the weather",
			expectedAction: replyFixed,
			expectedReply:  "I do not understand that command",
		},
		{
			name:           "empty text",
			input:          "",
			expectedAction: replyFixed,
			expectedReply:  "I do not understand that command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, reply := matchKeyword(tt.input)
			assert.Equal(t, tt.expectedAction, action)
			assert.Equal(t, tt.expectedReply, reply)
		})
	}
}
