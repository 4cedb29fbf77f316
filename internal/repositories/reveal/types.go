package reveal

import "onemorning/internal/models"

// AddRevealInput contains parameters for storing a reveal
type AddRevealInput struct {
	Reveal *models.Reveal
}

// GetRevealsForPlayerInput contains parameters for retrieving a player's reveals
type GetRevealsForPlayerInput struct {
	GameID   string
	PlayerID string
}

// GetRevealsForPlayerOutput contains the result of retrieving a player's reveals
type GetRevealsForPlayerOutput struct {
	Reveals []*models.Reveal
}

// DeleteRevealsForGameInput contains parameters for clearing a game's reveals
type DeleteRevealsForGameInput struct {
	GameID string
}
