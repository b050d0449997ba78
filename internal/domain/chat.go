package domain

import "time"

// ChatRole is the author kind of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// IsValid checks if the role is one of the allowed values.
func (r ChatRole) IsValid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

// ChatMessage is one append-only message in an (agent, user) thread.
type ChatMessage struct {
	ID        int64
	AgentID   int64
	UserID    int64
	Role      ChatRole
	Message   string
	CreatedAt time.Time
}
