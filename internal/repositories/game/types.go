package game

import "onemorning/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

// UpdateGameInput carries the mutation applied under the optimistic lock.
// Update receives the freshly read record; returning an error aborts the
// write and is surfaced to the caller unchanged.
type UpdateGameInput struct {
	GameID string
	Update func(game *models.Game) error
}

type DeleteGameInput struct {
	GameID string
}

type GetWaitingGamesInput struct {
}

type GetWaitingGamesOutput struct {
	Games []*models.Game
}

type SubscribeGameInput struct {
	GameID string
}

// Subscription delivers each new version of a single game record.
// C is closed when the subscription ends; Close releases the underlying
// pub/sub connection and is safe to call more than once.
type Subscription struct {
	C     <-chan *models.Game
	close func()
}

// Close releases the subscription
func (s *Subscription) Close() {
	if s.close != nil {
		s.close()
		s.close = nil
	}
}

type SubscribeWaitingGamesInput struct {
}

// WaitingSubscription delivers the full open-game list on every change
type WaitingSubscription struct {
	C     <-chan []*models.Game
	close func()
}

// Close releases the subscription
func (s *WaitingSubscription) Close() {
	if s.close != nil {
		s.close()
		s.close = nil
	}
}
