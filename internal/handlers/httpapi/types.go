package httpapi

import (
	"time"

	"onemorning/internal/models"
)

// guestRequest is the body for POST /auth/guest
type guestRequest struct {
	Name string `json:"name" binding:"required"`
}

// guestResponse carries the minted identity
type guestResponse struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// createGameRequest is the body for POST /games
type createGameRequest struct {
	PlayerCount int `json:"playerCount" binding:"required"`
}

// declareRoleRequest is the body for POST /games/:id/declare
type declareRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// useAbilityRequest is the body for POST /games/:id/ability
type useAbilityRequest struct {
	TargetPlayerID  string `json:"targetPlayerId"`
	CenterCardIndex *int   `json:"centerCardIndex"`
}

// castVoteRequest is the body for POST /games/:id/vote
type castVoteRequest struct {
	TargetID string `json:"targetId" binding:"required"`
}

// playerView is a player as one particular viewer may see them
type playerView struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	IsHost         bool                    `json:"isHost"`
	IsAlive        bool                    `json:"isAlive"`
	Role           models.Role             `json:"role,omitempty"`
	RoleClaim      models.Role             `json:"roleClaim,omitempty"`
	HasUsedAbility bool                    `json:"hasUsedAbility"`
	NightAction    models.NightActionState `json:"nightAction,omitempty"`
}

// gameView is the game record as one particular viewer may see it.
// Hidden information is stripped server-side before serialization.
type gameView struct {
	ID              string            `json:"id"`
	Status          models.GameStatus `json:"status"`
	HostID          string            `json:"hostId"`
	PlayerCount     int               `json:"playerCount"`
	Players         []*playerView     `json:"players"`
	CenterCardCount int               `json:"centerCardCount"`
	CenterCards     []models.Role     `json:"centerCards,omitempty"`
	Votes           map[string]string `json:"votes,omitempty"`
	Timer           int               `json:"timer"`
	IsTimerRunning  bool              `json:"isTimerRunning"`
	Result          *models.Result    `json:"result,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// ackResponse carries the caller's private role information
type ackResponse struct {
	Role              models.Role `json:"role"`
	RoleName          string      `json:"roleName"`
	FellowWerewolfIDs []string    `json:"fellowWerewolfIds,omitempty"`
	Game              *gameView   `json:"game"`
}

// abilityResponse carries the caller's private reveal
type abilityResponse struct {
	Reveal  *models.Reveal `json:"reveal"`
	Special *models.Result `json:"special,omitempty"`
	Game    *gameView      `json:"game"`
}

// leaveResponse reports whether the game survived the departure
type leaveResponse struct {
	GameDeleted bool      `json:"gameDeleted"`
	Game        *gameView `json:"game,omitempty"`
}

// currentGameResponse is the session reattach answer
type currentGameResponse struct {
	GameID string    `json:"gameId,omitempty"`
	Game   *gameView `json:"game,omitempty"`
}

// errorResponse is the uniform error body
type errorResponse struct {
	Error string `json:"error"`
}
