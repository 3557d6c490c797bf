package dialog

import (
	"sync"
	"time"

	"nutritrack/internal/domain"
)

// Machine holds the dialog state of every chat. Chats without an entry are idle.
type Machine struct {
	sessions map[int64]domain.ChatSession
	mu       sync.Mutex
	timeout  time.Duration
	now      func() time.Time
}

// NewMachine creates a state machine whose non-idle states expire after
// timeout of inactivity; zero disables expiry.
func NewMachine(timeout time.Duration) *Machine {
	return &Machine{
		sessions: make(map[int64]domain.ChatSession),
		timeout:  timeout,
		now:      time.Now,
	}
}

// State returns the chat's current state, dropping an expired session
func (m *Machine) State(chatID int64) domain.DialogState {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[chatID]
	if !ok {
		return domain.StateIdle
	}
	if session.Expired(m.now(), m.timeout) {
		delete(m.sessions, chatID)
		return domain.StateIdle
	}
	return session.State
}

// Set moves the chat into state
func (m *Machine) Set(chatID int64, state domain.DialogState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state == domain.StateIdle {
		delete(m.sessions, chatID)
		return
	}
	m.sessions[chatID] = domain.ChatSession{State: state, UpdatedAt: m.now()}
}

// Reset returns the chat to idle
func (m *Machine) Reset(chatID int64) {
	m.Set(chatID, domain.StateIdle)
}

// Active returns the number of chats in a non-idle state, expired ones included
func (m *Machine) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
