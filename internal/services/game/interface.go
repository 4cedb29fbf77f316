package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go onemorning/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame creates a new game with the caller as host
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to a waiting game
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// LeaveGame removes a player from a game; a leaving host deletes the game
	LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error)

	// StartGame deals roles and moves the game into the night phase
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// DeclareRole records a player's one-shot public role claim
	DeclareRole(ctx context.Context, input *DeclareRoleInput) (*DeclareRoleOutput, error)

	// AcknowledgeRole confirms the caller has seen their dealt role
	AcknowledgeRole(ctx context.Context, input *AcknowledgeRoleInput) (*AcknowledgeRoleOutput, error)

	// UseAbility resolves a night ability and evaluates instant win/loss conditions
	UseAbility(ctx context.Context, input *UseAbilityInput) (*UseAbilityOutput, error)

	// StartDayPhase opens the discussion and voting phase
	StartDayPhase(ctx context.Context, input *StartDayPhaseInput) (*StartDayPhaseOutput, error)

	// SkipDiscussion stops the advisory discussion countdown
	SkipDiscussion(ctx context.Context, input *SkipDiscussionInput) (*SkipDiscussionOutput, error)

	// CastVote records a vote, overwriting any earlier vote by the same voter
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// TallyVotes resolves the elimination vote and evaluates win conditions
	TallyVotes(ctx context.Context, input *TallyVotesInput) (*TallyVotesOutput, error)

	// ResetGame returns a finished game to the lobby with the roster preserved
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// GetGame fetches a game record
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// ListOpenGames lists games still waiting for players
	ListOpenGames(ctx context.Context, input *ListOpenGamesInput) (*ListOpenGamesOutput, error)

	// GetReveals fetches the caller's private ability reveals
	GetReveals(ctx context.Context, input *GetRevealsInput) (*GetRevealsOutput, error)

	// GetCurrentGame resolves the game a reconnecting player belongs to
	GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetCurrentGameOutput, error)
}
