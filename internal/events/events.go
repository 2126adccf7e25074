package events

import (
	"encoding/json"
	"fmt"

	"ctchen222/tictactoe-minimax/internal/game"
)

// Event types
const (
	GameStarted  = "game_started"
	MoveMade     = "move_made"
	MoveRejected = "move_rejected"
	GameOver     = "game_over"
)

// Event represents something that happened during a match.
type Event struct {
	Type    string          `json:"event"`
	GameID  string          `json:"game_id"`
	Payload json.RawMessage `json:"payload"`
}

// New builds an event, marshalling payload into the envelope.
func New(eventType, gameID string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, GameID: gameID, Payload: raw}, nil
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %w", e.Type, err)
	}
	return nil
}

// PlayerInfo describes one participant.
type PlayerInfo struct {
	Name string          `json:"name"`
	Mark game.PlayerMark `json:"mark"`
}

// GameStartedPayload is the payload for the "game_started" event.
type GameStartedPayload struct {
	Players [2]PlayerInfo `json:"players"`
	First   PlayerInfo    `json:"first"`
	Board   game.Board    `json:"board"`
}

// MoveMadePayload is the payload for the "move_made" event.
type MoveMadePayload struct {
	Player PlayerInfo `json:"player"`
	Cell   int        `json:"cell"`
	Ply    int        `json:"ply"`
	Board  game.Board `json:"board"`
}

// MoveRejectedPayload is the payload for the "move_rejected" event.
type MoveRejectedPayload struct {
	Player PlayerInfo `json:"player"`
	Cell   int        `json:"cell"`
	Reason string     `json:"reason"`
}

// GameOverPayload is the payload for the "game_over" event.
type GameOverPayload struct {
	Winner *PlayerInfo `json:"winner,omitempty"`
	Draw   bool        `json:"draw"`
	Moves  []int       `json:"moves"`
	Board  game.Board  `json:"board"`
}
