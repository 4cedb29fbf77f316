package models

// NightActionState tracks where a player is in the night-phase sequence.
// It replaces recomputing "whose turn" from list position on every read.
type NightActionState string

const (
	// NightActionPending indicates the player has not yet looked at their role card
	NightActionPending NightActionState = "pending"

	// NightActionRevealed indicates the player has seen their role (and, for
	// werewolves, the list of fellow werewolves) but still owes a night action
	NightActionRevealed NightActionState = "revealed"

	// NightActionResolved indicates the player has finished the night phase
	NightActionResolved NightActionState = "resolved"
)

// Player represents a participant in a game
type Player struct {
	// ID is the opaque identity-provider id of the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// IsHost marks the single player with phase-advance authority
	IsHost bool `json:"isHost"`

	// IsAlive is false once the player has been eliminated by the vote
	IsAlive bool `json:"isAlive"`

	// Role is the true assigned role, empty until the game starts
	Role Role `json:"role,omitempty"`

	// RoleClaim is the publicly declared role (CO), empty until declared.
	// It may differ from Role for non-villager-team roles.
	RoleClaim Role `json:"roleClaim,omitempty"`

	// HasUsedAbility is true once the one-shot night ability has been consumed
	HasUsedAbility bool `json:"hasUsedAbility"`

	// NightAction is the player's position in the night-phase sequence
	NightAction NightActionState `json:"nightAction,omitempty"`
}

// HasDeclared reports whether the player has made their public role claim
func (p *Player) HasDeclared() bool {
	return p.RoleClaim != ""
}
