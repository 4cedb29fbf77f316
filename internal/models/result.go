package models

// ResultType represents how a game ended, or that a round continues
type ResultType string

const (
	// ResultFoxLoss indicates the fox card was inspected and everyone on it loses
	ResultFoxLoss ResultType = "foxLoss"

	// ResultExposerWin indicates the exposer was inspected and wins with the inspector
	ResultExposerWin ResultType = "exposerWin"

	// ResultUnknownLoss indicates a medium turned up the forbidden center card
	ResultUnknownLoss ResultType = "unknownLoss"

	// ResultNoVotes indicates the tally ran with no votes cast
	ResultNoVotes ResultType = "noVotes"

	// ResultVillagerWin indicates every werewolf has been eliminated
	ResultVillagerWin ResultType = "villagerWin"

	// ResultWerewolfWin indicates werewolves reached parity with the rest
	ResultWerewolfWin ResultType = "werewolfWin"

	// ResultElimination indicates a player was voted out but no side has won yet
	ResultElimination ResultType = "elimination"
)

// IsTerminal reports whether the result ends the game rather than the round
func (t ResultType) IsTerminal() bool {
	return t != ResultElimination
}

// PlayerSnapshot captures a player's identity and role at the moment of elimination
type PlayerSnapshot struct {
	// ID is the player's id
	ID string `json:"id"`

	// Name is the player's display name
	Name string `json:"name"`

	// Role is the player's true role
	Role Role `json:"role"`
}

// Result describes a game outcome
type Result struct {
	// Type classifies the outcome
	Type ResultType `json:"type"`

	// Message is the player-facing summary of the outcome
	Message string `json:"message"`

	// EliminatedPlayer is set for vote outcomes, nil for instant conditions
	EliminatedPlayer *PlayerSnapshot `json:"eliminatedPlayer,omitempty"`

	// WinnerIDs lists individual winners for special conditions such as the
	// exposer win; empty for team outcomes and losses
	WinnerIDs []string `json:"winnerIds,omitempty"`
}
