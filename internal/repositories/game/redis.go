package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"onemorning/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix       = "game:"
	gameChannelPrefix   = "game:updates:"
	waitingGamesKey     = "waiting_games"
	waitingGamesChannel = "waiting_games:events"

	// maxUpdateRetries bounds the optimistic-lock retry loop
	maxUpdateRetries = 3
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// ErrConcurrentModification is returned when an update loses the optimistic
// lock race on every retry
var ErrConcurrentModification = errors.New("game record was modified concurrently")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveGame persists a new game record to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()

	gameKey := gameKeyPrefix + input.Game.ID
	pipe.Set(ctx, gameKey, gameJSON, 0)
	r.indexGame(ctx, pipe, input.Game)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	r.publishGame(ctx, input.Game, gameJSON)

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := gameKeyPrefix + input.GameID
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// UpdateGame applies a mutation under WATCH so a concurrent peer write aborts
// the transaction instead of being silently overwritten. The mutation runs
// against the freshly watched copy on every attempt.
func (r *redisRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	if input.Update == nil {
		return nil, errors.New("update function cannot be nil")
	}

	gameKey := gameKeyPrefix + input.GameID

	var updated *models.Game
	var updatedJSON []byte

	txn := func(tx *redis.Tx) error {
		gameJSON, err := tx.Get(ctx, gameKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrGameNotFound
			}
			return fmt.Errorf("failed to get game: %w", err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return fmt.Errorf("failed to unmarshal game: %w", err)
		}

		if err := input.Update(&game); err != nil {
			return err
		}

		updatedJSON, err = json.Marshal(&game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}
		updated = &game

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, updatedJSON, 0)
			r.indexGame(ctx, pipe, &game)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		err := r.client.Watch(ctx, txn, gameKey)
		if err == nil {
			r.publishGame(ctx, updated, updatedJSON)
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Lost the race, re-read and try again
			continue
		}
		return nil, err
	}

	return nil, ErrConcurrentModification
}

// DeleteGame removes a game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, gameKeyPrefix+input.GameID)
	pipe.SRem(ctx, waitingGamesKey, input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	r.client.Publish(ctx, waitingGamesChannel, input.GameID)

	return nil
}

// GetWaitingGames retrieves all games still open for joining
func (r *redisRepository) GetWaitingGames(ctx context.Context, input *GetWaitingGamesInput) (*GetWaitingGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, waitingGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get waiting game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetWaitingGamesOutput{
			Games: []*models.Game{},
		}, nil
	}

	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd)

	for _, gameID := range gameIDs {
		gameCommands[gameID] = pipe.Get(ctx, gameKeyPrefix+gameID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get waiting games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for gameID, cmd := range gameCommands {
		gameJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Game was deleted between getting the IDs and fetching the game
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
		}

		// The index can lag a phase change briefly
		if game.Status != models.GameStatusWaiting {
			continue
		}

		games = append(games, &game)
	}

	return &GetWaitingGamesOutput{
		Games: games,
	}, nil
}

// SubscribeGame streams every new version of a game record via Redis pub/sub
func (r *redisRepository) SubscribeGame(ctx context.Context, input *SubscribeGameInput) (*Subscription, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, gameChannelPrefix+input.GameID)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to game: %w", err)
	}

	out := make(chan *models.Game)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var game models.Game
			if err := json.Unmarshal([]byte(msg.Payload), &game); err != nil {
				continue
			}
			select {
			case out <- &game:
			case <-ctx.Done():
				return
			}
		}
	}()

	return &Subscription{
		C:     out,
		close: func() { pubsub.Close() },
	}, nil
}

// SubscribeWaitingGames streams the open-game list on every waiting-set change
func (r *redisRepository) SubscribeWaitingGames(ctx context.Context, input *SubscribeWaitingGamesInput) (*WaitingSubscription, error) {
	pubsub := r.client.Subscribe(ctx, waitingGamesChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to waiting games: %w", err)
	}

	out := make(chan []*models.Game)
	go func() {
		defer close(out)
		for range pubsub.Channel() {
			listing, err := r.GetWaitingGames(ctx, &GetWaitingGamesInput{})
			if err != nil {
				continue
			}
			select {
			case out <- listing.Games:
			case <-ctx.Done():
				return
			}
		}
	}()

	return &WaitingSubscription{
		C:     out,
		close: func() { pubsub.Close() },
	}, nil
}

// indexGame maintains the waiting-game set alongside the record itself
func (r *redisRepository) indexGame(ctx context.Context, pipe redis.Pipeliner, game *models.Game) {
	if game.Status == models.GameStatusWaiting {
		pipe.SAdd(ctx, waitingGamesKey, game.ID)
	} else {
		pipe.SRem(ctx, waitingGamesKey, game.ID)
	}
}

// publishGame fans the new record version out to subscribers
func (r *redisRepository) publishGame(ctx context.Context, game *models.Game, gameJSON []byte) {
	r.client.Publish(ctx, gameChannelPrefix+game.ID, gameJSON)
	// The waiting list changes both when a waiting game is touched and when a
	// game leaves the waiting state, so signal the lobby either way.
	r.client.Publish(ctx, waitingGamesChannel, game.ID)
}
