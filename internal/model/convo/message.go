package convo

import "time"

// Role identifies which side of the conversation produced a message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is a single turn in the widget conversation. Messages are
// append-only: once inserted into a session log they are never edited or
// removed.
type Message struct {
	ID               string              `json:"id"`
	SessionID        string              `json:"sessionId"`
	Role             Role                `json:"role"`
	Content          string              `json:"content"`
	StructuredAnswer *StructuredResponse `json:"structuredAnswer,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}
