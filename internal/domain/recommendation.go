package domain

import "time"

// Recommendation is an append-only suggestion for an agent. A nil
// UserID means the recommendation is visible to every user.
type Recommendation struct {
	ID        int64
	AgentID   int64
	UserID    *int64
	Text      string
	Category  *string
	CreatedAt time.Time
}
