package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusWaiting indicates a game is waiting for players to join
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusNight indicates the night phase is in progress
	GameStatusNight GameStatus = "night"

	// GameStatusDay indicates the discussion and voting phase is in progress
	GameStatusDay GameStatus = "day"

	// GameStatusResult indicates the game has reached a terminal outcome
	GameStatusResult GameStatus = "result"
)

// Game represents a single play session shared by every participant
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// Status is the current state-machine position
	Status GameStatus `json:"status"`

	// HostID is the player who created the game and holds phase-advance authority
	HostID string `json:"hostId"`

	// PlayerCount is the target roster size, fixed at creation
	PlayerCount int `json:"playerCount"`

	// Players is the roster in join order
	Players []*Player `json:"players"`

	// CenterCards are the undealt role cards; only the medium may inspect them
	CenterCards []Role `json:"centerCards,omitempty"`

	// Votes maps voter id to target id, one entry per voter, last vote wins
	Votes map[string]string `json:"votes,omitempty"`

	// Timer is the remaining discussion time in seconds, advisory only
	Timer int `json:"timer"`

	// IsTimerRunning indicates whether the discussion countdown is active
	IsTimerRunning bool `json:"isTimerRunning"`

	// Result is populated once Status becomes GameStatusResult, nil before
	Result *Result `json:"result,omitempty"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}

// FindPlayer returns the player with the given id, or nil if not present
func (g *Game) FindPlayer(playerID string) *Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// IsFull reports whether the roster has reached the target size
func (g *Game) IsFull() bool {
	return len(g.Players) >= g.PlayerCount
}

// AliveCount returns the number of players still in the game
func (g *Game) AliveCount() int {
	count := 0
	for _, p := range g.Players {
		if p.IsAlive {
			count++
		}
	}
	return count
}

// AliveWerewolfCount returns the number of living werewolves
func (g *Game) AliveWerewolfCount() int {
	count := 0
	for _, p := range g.Players {
		if p.IsAlive && p.Role == RoleWerewolf {
			count++
		}
	}
	return count
}

// WerewolfIDs returns the ids of every player holding a werewolf card
func (g *Game) WerewolfIDs() []string {
	ids := make([]string, 0, 2)
	for _, p := range g.Players {
		if p.Role == RoleWerewolf {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
