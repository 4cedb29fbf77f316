package models

import (
	"time"
)

// RevealKind distinguishes what an ability reveal looked at
type RevealKind string

const (
	// RevealKindPlayer is a seer or guard inspection of another player's card
	RevealKindPlayer RevealKind = "player"

	// RevealKindCenter is a medium inspection of a center card
	RevealKindCenter RevealKind = "center"
)

// Reveal records what a single player learned from their night ability.
// Reveals are private to the viewing player and are stored outside the shared
// game record so that other subscribers can never read them.
type Reveal struct {
	// ID is a unique identifier for this reveal
	ID string `json:"id"`

	// GameID is the game the reveal happened in
	GameID string `json:"gameId"`

	// PlayerID is the player who performed the inspection and may read this
	PlayerID string `json:"playerId"`

	// Kind says whether a player card or a center card was inspected
	Kind RevealKind `json:"kind"`

	// TargetID is the inspected player's id, empty for center reveals
	TargetID string `json:"targetId,omitempty"`

	// TargetName is the inspected player's display name, empty for center reveals
	TargetName string `json:"targetName,omitempty"`

	// CardIndex is the inspected center card position, meaningful for center reveals
	CardIndex int `json:"cardIndex,omitempty"`

	// Role is the true role that was revealed
	Role Role `json:"role"`

	// Timestamp is when the reveal happened
	Timestamp time.Time `json:"timestamp"`
}
