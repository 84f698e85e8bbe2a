package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/app"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/gorilla/websocket"
)

// ChatWSHandler serves the mentor conversation over a websocket so the
// front end can keep one connection open for the whole session instead
// of posting each turn.
type ChatWSHandler struct {
	mentor   *app.MentorService
	upgrader websocket.Upgrader
}

func NewChatWSHandler(mentor *app.MentorService) *ChatWSHandler {
	return &ChatWSHandler{
		mentor: mentor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type wsInbound struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type wsChatPayload struct {
	Message             string     `json:"message"`
	ConversationHistory []chatTurn `json:"conversationHistory"`
}

type wsOutbound[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type wsError struct {
	Message string `json:"message"`
}

type wsReply struct {
	Response string `json:"response"`
}

// ServeWS upgrades the request and answers chat turns until the client
// disconnects. Each turn is synchronous: one inbound message, one reply.
func (h *ChatWSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var inbound wsInbound
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		switch inbound.Type {
		case "chat":
			var payload wsChatPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				_ = conn.WriteJSON(wsOutbound[wsError]{Type: "error", Payload: wsError{Message: "invalid chat payload"}})
				continue
			}
			history := make([]domain.ChatMessage, 0, len(payload.ConversationHistory))
			for _, turn := range payload.ConversationHistory {
				history = append(history, domain.ChatMessage{Role: turn.Role, Content: turn.Content})
			}
			reply, err := h.mentor.Chat(r.Context(), userID, payload.Message, history)
			if err != nil {
				_ = conn.WriteJSON(wsOutbound[wsError]{Type: "error", Payload: wsError{Message: err.Error()}})
				continue
			}
			if err := conn.WriteJSON(wsOutbound[wsReply]{Type: "reply", Payload: wsReply{Response: reply}}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		default:
			_ = conn.WriteJSON(wsOutbound[wsError]{Type: "error", Payload: wsError{Message: "unsupported message type"}})
		}
	}
}
