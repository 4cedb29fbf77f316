package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go onemorning/internal/repositories/game Repository

import (
	"context"

	"onemorning/internal/models"
)

// Repository defines the interface for game record persistence.
//
// The game record is a single shared document under concurrent multi-writer
// access, so every mutation goes through UpdateGame, which re-reads the record
// under an optimistic lock and applies a targeted mutation to the fresh copy.
// Blind whole-record overwrites of an existing game are reserved for creation.
type Repository interface {
	// SaveGame persists a new game record
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// UpdateGame applies a mutation to the current record under a
	// compare-and-swap, retrying a bounded number of times on conflict.
	// The mutation runs against a freshly read copy on every attempt.
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetWaitingGames retrieves all games still open for joining
	GetWaitingGames(ctx context.Context, input *GetWaitingGamesInput) (*GetWaitingGamesOutput, error)

	// SubscribeGame streams every new version of a game record
	SubscribeGame(ctx context.Context, input *SubscribeGameInput) (*Subscription, error)

	// SubscribeWaitingGames streams the open-game list every time it changes
	SubscribeWaitingGames(ctx context.Context, input *SubscribeWaitingGamesInput) (*WaitingSubscription, error)
}
