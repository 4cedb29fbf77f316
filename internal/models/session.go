package models

import (
	"time"
)

// PlayerSession maps an identity-provider player id to the game they are in,
// so a client that reconnects can be routed back to their table.
type PlayerSession struct {
	// PlayerID is the opaque id issued by the identity provider
	PlayerID string `json:"playerId"`

	// Name is the display name the player last joined with
	Name string `json:"name"`

	// CurrentGameID is the game the player is currently in, empty if none
	CurrentGameID string `json:"currentGameId,omitempty"`

	// UpdatedAt is when the session was last touched
	UpdatedAt time.Time `json:"updatedAt"`
}
