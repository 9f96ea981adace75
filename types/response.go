package types

// DataResponse is the envelope every HTTP handler responds with.
type DataResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Notification is a transient toast-style message surfaced to the
// user. It is never persisted.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SessionView is the read-only snapshot of the session returned to
// clients.
type SessionView struct {
	Files   []FileInfo     `json:"files"`
	State   IngestionState `json:"state"`
	Phase   SessionPhase   `json:"phase"`
	History []ChatTurn     `json:"history"`
}

// AskResponse carries the two turns produced by a successful ask.
type AskResponse struct {
	Question ChatTurn `json:"question"`
	Answer   ChatTurn `json:"answer"`
}

// AskFailure is returned when an answer call fails. RestoredInput
// carries the question text back so the client can put it in the input
// box for a manual retry.
type AskFailure struct {
	Notification  Notification `json:"notification"`
	RestoredInput string       `json:"restored_input"`
}
