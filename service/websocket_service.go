package service

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pdfchat/pdfchat-be/types"
)

// WebSocketService serves the conversation over a websocket. Answers
// are delivered as whole frames; there is no partial streaming.
type WebSocketService struct {
	session  *SessionService
	upgrader websocket.Upgrader
}

func NewWebSocketService(session *SessionService) *WebSocketService {
	return &WebSocketService{
		session: session,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			log.Println("Unmarshal error:", err)
			s.writeError(conn, types.Notification{
				Title:       "Error",
				Description: "Invalid message",
			}, "")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketPing:
			s.write(conn, types.WebsocketResponse{Type: types.TypeWebsocketPong})
		case types.TypeWebsocketAsk:
			s.handleAsk(conn, r, req)
		default:
			s.writeError(conn, types.Notification{
				Title:       "Error",
				Description: "Unknown message type: " + req.Type,
			}, "")
		}
	}
}

func (s *WebSocketService) handleAsk(conn *websocket.Conn, r *http.Request, req types.WebsocketRequest) {
	var ask types.WebsocketAskPayload
	raw, err := json.Marshal(req.Payload)
	if err == nil {
		err = json.Unmarshal(raw, &ask)
	}
	if err != nil {
		s.writeError(conn, types.Notification{
			Title:       "Error",
			Description: "Invalid ask payload",
		}, "")
		return
	}

	resp, err := s.session.Ask(r.Context(), ask.Question)
	if err != nil {
		if types.IsValidationError(err) {
			s.writeError(conn, types.Notification{
				Title:       "Cannot submit question",
				Description: err.Error(),
			}, "")
			return
		}
		s.writeError(conn, types.Notification{
			Title:       "Error",
			Description: "Failed to get an answer. Please try again.",
		}, ask.Question)
		return
	}

	s.write(conn, types.WebsocketResponse{
		Type:    types.TypeWebsocketAnswer,
		Payload: resp,
	})
}

func (s *WebSocketService) writeError(conn *websocket.Conn, n types.Notification, restoredInput string) {
	s.write(conn, types.WebsocketResponse{
		Type: types.TypeWebsocketError,
		Payload: types.AskFailure{
			Notification:  n,
			RestoredInput: restoredInput,
		},
	})
}

func (s *WebSocketService) write(conn *websocket.Conn, resp types.WebsocketResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Println("WebSocket write error:", err)
	}
}
