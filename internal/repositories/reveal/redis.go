package reveal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"onemorning/internal/models"
)

const (
	// Key prefixes for Redis
	revealKeyPrefix       = "reveal:"
	playerRevealsPrefix   = "player_reveals:"
	gameRevealIndexPrefix = "game_reveal_index:"
)

// Config holds configuration for the Redis reveal repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed reveal repository
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

// playerRevealsKey scopes the reveal list to a single viewer in a single game
func playerRevealsKey(gameID, playerID string) string {
	return fmt.Sprintf("%s%s:%s", playerRevealsPrefix, gameID, playerID)
}

// AddReveal stores a reveal for the viewing player
func (r *redisRepository) AddReveal(ctx context.Context, input *AddRevealInput) error {
	if input == nil || input.Reveal == nil {
		return errors.New("input and reveal cannot be nil")
	}

	record := input.Reveal

	if record.ID == "" {
		return errors.New("reveal ID cannot be empty")
	}

	if record.GameID == "" || record.PlayerID == "" {
		return errors.New("reveal game ID and player ID cannot be empty")
	}

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal reveal: %w", err)
	}

	pipe := r.client.Pipeline()

	// Store the reveal itself
	pipe.Set(ctx, revealKeyPrefix+record.ID, recordJSON, 0)

	// Index it under the viewing player only
	pipe.ZAdd(ctx, playerRevealsKey(record.GameID, record.PlayerID), redis.Z{
		Score:  float64(record.Timestamp.UnixNano()),
		Member: record.ID,
	})

	// Track the per-player key so a game reset can clear everything
	pipe.SAdd(ctx, gameRevealIndexPrefix+record.GameID, playerRevealsKey(record.GameID, record.PlayerID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save reveal: %w", err)
	}

	return nil
}

// GetRevealsForPlayer retrieves everything one player has learned in a game
func (r *redisRepository) GetRevealsForPlayer(ctx context.Context, input *GetRevealsForPlayerInput) (*GetRevealsForPlayerOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("input, game ID and player ID cannot be empty")
	}

	revealIDs, err := r.client.ZRange(ctx, playerRevealsKey(input.GameID, input.PlayerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get reveal IDs: %w", err)
	}

	if len(revealIDs) == 0 {
		return &GetRevealsForPlayerOutput{
			Reveals: []*models.Reveal{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(revealIDs))
	for _, id := range revealIDs {
		commands = append(commands, pipe.Get(ctx, revealKeyPrefix+id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get reveals: %w", err)
	}

	reveals := make([]*models.Reveal, 0, len(revealIDs))
	for _, cmd := range commands {
		revealJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get reveal: %w", err)
		}

		var record models.Reveal
		if err := json.Unmarshal([]byte(revealJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reveal: %w", err)
		}

		reveals = append(reveals, &record)
	}

	return &GetRevealsForPlayerOutput{
		Reveals: reveals,
	}, nil
}

// DeleteRevealsForGame removes all reveals for a game
func (r *redisRepository) DeleteRevealsForGame(ctx context.Context, input *DeleteRevealsForGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	indexKey := gameRevealIndexPrefix + input.GameID
	playerKeys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get reveal index: %w", err)
	}

	pipe := r.client.Pipeline()

	for _, playerKey := range playerKeys {
		revealIDs, err := r.client.ZRange(ctx, playerKey, 0, -1).Result()
		if err != nil {
			return fmt.Errorf("failed to get reveal IDs: %w", err)
		}
		for _, id := range revealIDs {
			pipe.Del(ctx, revealKeyPrefix+id)
		}
		pipe.Del(ctx, playerKey)
	}

	pipe.Del(ctx, indexKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete reveals: %w", err)
	}

	return nil
}
