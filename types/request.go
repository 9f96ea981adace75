package types

// ChatRequest is the HTTP payload for submitting a question.
type ChatRequest struct {
	Question string `json:"question"`
}

// WebsocketRequest is one frame received on the chat websocket.
type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WebsocketAskPayload is the payload of an "ask" frame.
type WebsocketAskPayload struct {
	Question string `json:"question"`
}

// WebsocketResponse is one frame sent on the chat websocket.
type WebsocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	TypeWebsocketPing   = "ping"
	TypeWebsocketPong   = "pong"
	TypeWebsocketAsk    = "ask"
	TypeWebsocketAnswer = "answer"
	TypeWebsocketError  = "error"
)
