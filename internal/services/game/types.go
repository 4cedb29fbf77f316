package game

import (
	"onemorning/internal/common/clock"
	"onemorning/internal/common/uuid"
	"onemorning/internal/deck"
	"onemorning/internal/models"
	gameRepo "onemorning/internal/repositories/game"
	playerRepo "onemorning/internal/repositories/player"
	revealRepo "onemorning/internal/repositories/reveal"
)

// Config holds configuration for the game service
type Config struct {
	// DiscussionSeconds is the advisory day-phase countdown length
	DiscussionSeconds int

	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	RevealRepo revealRepo.Repository

	// Service dependencies
	Dealer        deck.Dealer
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// HostID is the identity of the player creating the game
	HostID string

	// HostName is the display name of the host
	HostName string

	// PlayerCount is the target roster size, 4 to 8
	PlayerCount int
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// Game is the newly created game record
	Game *models.Game
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	GameID     string
	PlayerID   string
	PlayerName string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	// Game is the updated game record
	Game *models.Game

	// AlreadyJoined indicates the player was already on the roster
	AlreadyJoined bool
}

// LeaveGameInput contains parameters for leaving a game
type LeaveGameInput struct {
	GameID   string
	PlayerID string
}

// LeaveGameOutput contains the result of leaving a game
type LeaveGameOutput struct {
	// GameDeleted indicates the host left and the game was torn down
	GameDeleted bool

	// Game is the updated record, nil when the game was deleted
	Game *models.Game
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GameID string
	HostID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Game *models.Game
}

// DeclareRoleInput contains parameters for a public role declaration (CO)
type DeclareRoleInput struct {
	GameID    string
	PlayerID  string
	RoleClaim models.Role
}

// DeclareRoleOutput contains the result of a role declaration
type DeclareRoleOutput struct {
	Game *models.Game
}

// AcknowledgeRoleInput contains parameters for confirming the dealt role
type AcknowledgeRoleInput struct {
	GameID   string
	PlayerID string
}

// AcknowledgeRoleOutput carries the caller's private role information
type AcknowledgeRoleOutput struct {
	// Role is the caller's true role
	Role models.Role

	// FellowWerewolfIDs lists the other werewolves, only for werewolf callers
	FellowWerewolfIDs []string

	Game *models.Game
}

// UseAbilityInput contains parameters for a night ability
type UseAbilityInput struct {
	GameID   string
	PlayerID string

	// TargetPlayerID is required for the seer and the guard
	TargetPlayerID string

	// CenterCardIndex is required for the medium
	CenterCardIndex *int
}

// UseAbilityOutput carries the private reveal and any triggered special condition
type UseAbilityOutput struct {
	// Reveal is what the caller learned; it is never written into the shared record
	Reveal *models.Reveal

	// Special is set when the reveal ended the game instantly
	Special *models.Result

	Game *models.Game
}

// StartDayPhaseInput contains parameters for advancing to the day phase
type StartDayPhaseInput struct {
	GameID string
	HostID string
}

// StartDayPhaseOutput contains the result of advancing to the day phase
type StartDayPhaseOutput struct {
	Game *models.Game
}

// SkipDiscussionInput contains parameters for cutting the discussion short
type SkipDiscussionInput struct {
	GameID string
	HostID string
}

// SkipDiscussionOutput contains the result of cutting the discussion short
type SkipDiscussionOutput struct {
	Game *models.Game
}

// CastVoteInput contains parameters for casting or changing a vote
type CastVoteInput struct {
	GameID   string
	VoterID  string
	TargetID string
}

// CastVoteOutput contains the result of casting a vote
type CastVoteOutput struct {
	Game *models.Game
}

// TallyVotesInput contains parameters for resolving the vote
type TallyVotesInput struct {
	GameID string
	HostID string
}

// TallyVotesOutput contains the result of resolving the vote
type TallyVotesOutput struct {
	Game   *models.Game
	Result *models.Result
}

// ResetGameInput contains parameters for resetting a game to the lobby
type ResetGameInput struct {
	GameID string
	HostID string
}

// ResetGameOutput contains the result of resetting a game
type ResetGameOutput struct {
	Game *models.Game
}

// GetGameInput contains parameters for fetching a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the fetched game
type GetGameOutput struct {
	Game *models.Game
}

// ListOpenGamesInput contains parameters for listing joinable games
type ListOpenGamesInput struct {
}

// ListOpenGamesOutput contains the joinable games
type ListOpenGamesOutput struct {
	Games []*models.Game
}

// GetRevealsInput contains parameters for fetching a player's private reveals
type GetRevealsInput struct {
	GameID   string
	PlayerID string
}

// GetRevealsOutput contains the player's private reveals
type GetRevealsOutput struct {
	Reveals []*models.Reveal
}

// GetCurrentGameInput contains parameters for session reattach
type GetCurrentGameInput struct {
	PlayerID string
}

// GetCurrentGameOutput contains the game the player is currently in, if any
type GetCurrentGameOutput struct {
	GameID string
	Game   *models.Game
}
