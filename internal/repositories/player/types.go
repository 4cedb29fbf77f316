package player

import "onemorning/internal/models"

// SaveSessionInput contains parameters for saving a player session
type SaveSessionInput struct {
	Session *models.PlayerSession
}

// GetSessionInput contains parameters for retrieving a player session
type GetSessionInput struct {
	PlayerID string
}

// DeleteSessionInput contains parameters for removing a player session
type DeleteSessionInput struct {
	PlayerID string
}
