package types

// Roles of chat turn speakers.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn represents a single message in the conversation.
type ChatTurn struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionPhase tracks the per-question submit cycle. Ask is only
// re-enabled after the previous call settles, so turns append in real
// submission order.
type SessionPhase string

const (
	PhaseAwaitingInput SessionPhase = "awaiting_input"
	PhaseSubmitting    SessionPhase = "submitting"
)
