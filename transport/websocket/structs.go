package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ResponsePayload struct {
	Session string            `json:"session,omitempty"`
	Game    *entity.GameState `json:"game,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type TurnPayload struct {
	Cell *int `json:"cell"`
}

type JumpPayload struct {
	Step *int `json:"step"`
}
