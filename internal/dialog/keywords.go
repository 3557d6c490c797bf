package dialog

import "strings"

type keywordAction int

const (
	replyFixed keywordAction = iota
	replySmallTalk
)

type keywordRule struct {
	substr string
	action keywordAction
	reply  string
}

// First match wins, so order matters.
var keywordRules = []keywordRule{
	{substr: "hello", action: replyFixed, reply: "Hello There!"},
	{substr: "how are you", action: replySmallTalk, reply: msgSmallTalkFallback},
	{substr: "bye", action: replyFixed, reply: "Goodbye!"},
}

// matchKeyword picks the rule for free text. The returned reply is the
// fallback when the action is replySmallTalk.
func matchKeyword(text string) (keywordAction, string) {
	processed := strings.ToLower(text)
	for _, rule := range keywordRules {
		if strings.Contains(processed, rule.substr) {
			return rule.action, rule.reply
		}
	}
	return replyFixed, msgUnknown
}
