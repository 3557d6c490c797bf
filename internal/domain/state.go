package domain

import "time"

// DialogState is the short-lived mode a chat is in
type DialogState string

const (
	StateIdle             DialogState = "idle"
	StateTracking         DialogState = "tracking"
	StateConfirmingDelete DialogState = "confirming_delete"
)

// ChatSession holds the dialog state of one chat
type ChatSession struct {
	State     DialogState
	UpdatedAt time.Time
}

// Expired reports whether the session has been inactive longer than timeout.
// A zero timeout never expires.
func (s ChatSession) Expired(now time.Time, timeout time.Duration) bool {
	if timeout <= 0 {
		return false
	}
	return now.Sub(s.UpdatedAt) > timeout
}
