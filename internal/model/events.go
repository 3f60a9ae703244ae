package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventMovePlayed   EventType = "move_played"
	EventMoveRejected EventType = "move_rejected"
	EventGameFinished EventType = "game_finished"
)

// Event describes something that happened to a game.
// The harness subscribes to these to drive its output.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Color     Color // The color that moved or tried to move; Empty for game events
	Payload   any   // Type-specific data
}

// MovePlayedPayload contains data for move played events
type MovePlayedPayload struct {
	Move Move
}

// MoveRejectedPayload contains data for move rejected events
type MoveRejectedPayload struct {
	Column int
	Reason error
}

// GameFinishedPayload contains data for game finished events
type GameFinishedPayload struct {
	Outcome   Outcome
	MoveCount int
}
