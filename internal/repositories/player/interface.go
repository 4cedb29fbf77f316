package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go onemorning/internal/repositories/player Repository

import (
	"context"

	"onemorning/internal/models"
)

// Repository defines the interface for player session persistence
type Repository interface {
	// SaveSession persists a player session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a player session by player ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.PlayerSession, error)

	// DeleteSession removes a player session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
