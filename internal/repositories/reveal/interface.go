package reveal

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go onemorning/internal/repositories/reveal Repository

import (
	"context"
)

// Repository defines the interface for the private reveal ledger.
//
// Reveals are keyed per viewing player so an ability result never travels
// through the shared game record that every subscriber can read.
type Repository interface {
	// AddReveal stores a reveal for the viewing player
	AddReveal(ctx context.Context, input *AddRevealInput) error

	// GetRevealsForPlayer retrieves everything one player has learned in a game
	GetRevealsForPlayer(ctx context.Context, input *GetRevealsForPlayerInput) (*GetRevealsForPlayerOutput, error)

	// DeleteRevealsForGame removes all reveals for a game
	DeleteRevealsForGame(ctx context.Context, input *DeleteRevealsForGameInput) error
}
