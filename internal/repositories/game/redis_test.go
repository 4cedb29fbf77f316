package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"onemorning/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newWaitingGame(id string) *models.Game {
	return &models.Game{
		ID:          id,
		Status:      models.GameStatusWaiting,
		HostID:      "host-id",
		PlayerCount: 4,
		Players: []*models.Player{
			{
				ID:      "host-id",
				Name:    "Host Player",
				IsHost:  true,
				IsAlive: true,
			},
		},
		Votes:     map[string]string{},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	game := s.newWaitingGame("test-game-id")

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(models.GameStatusWaiting, retrieved.Status)
	s.Equal("host-id", retrieved.HostID)
	s.Require().Len(retrieved.Players, 1)
	s.Equal("Host Player", retrieved.Players[0].Name)
	s.True(retrieved.Players[0].IsAlive)
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "missing-game-id",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameAppliesMutation() {
	game := s.newWaitingGame("test-game-id")

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().NoError(err)

	updated, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "test-game-id",
		Update: func(g *models.Game) error {
			g.Players = append(g.Players, &models.Player{
				ID:      "joiner-id",
				Name:    "Joiner",
				IsAlive: true,
			})
			return nil
		},
	})
	s.Require().NoError(err)
	s.Len(updated.Players, 2)

	// The mutation is persisted, not just returned
	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Len(retrieved.Players, 2)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameMutationErrorAborts() {
	game := s.newWaitingGame("test-game-id")

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().NoError(err)

	sentinel := errors.New("validation failed")
	_, err = s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "test-game-id",
		Update: func(g *models.Game) error {
			g.Players = nil
			return sentinel
		},
	})
	s.Require().ErrorIs(err, sentinel)

	// The aborted mutation left the record untouched
	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Len(retrieved.Players, 1)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameNotFound() {
	_, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "missing-game-id",
		Update: func(g *models.Game) error { return nil },
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	game := s.newWaitingGame("test-game-id")

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().NoError(err)

	err = s.repo.DeleteGame(context.Background(), &DeleteGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)

	// Deletion also drops the game from the waiting list
	listing, err := s.repo.GetWaitingGames(context.Background(), &GetWaitingGamesInput{})
	s.Require().NoError(err)
	s.Empty(listing.Games)
}

func (s *RedisRepositoryTestSuite) TestGetWaitingGamesOnlyListsWaiting() {
	waiting := s.newWaitingGame("waiting-game-id")
	started := s.newWaitingGame("started-game-id")
	started.Status = models.GameStatusNight

	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: waiting}))
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: started}))

	listing, err := s.repo.GetWaitingGames(context.Background(), &GetWaitingGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(listing.Games, 1)
	s.Equal("waiting-game-id", listing.Games[0].ID)
}

func (s *RedisRepositoryTestSuite) TestGameLeavesWaitingListOnStatusChange() {
	game := s.newWaitingGame("test-game-id")

	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game}))

	_, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "test-game-id",
		Update: func(g *models.Game) error {
			g.Status = models.GameStatusNight
			return nil
		},
	})
	s.Require().NoError(err)

	listing, err := s.repo.GetWaitingGames(context.Background(), &GetWaitingGamesInput{})
	s.Require().NoError(err)
	s.Empty(listing.Games)
}

func (s *RedisRepositoryTestSuite) TestSubscribeGameReceivesUpdates() {
	game := s.newWaitingGame("test-game-id")
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := s.repo.SubscribeGame(ctx, &SubscribeGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	defer sub.Close()

	_, err = s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "test-game-id",
		Update: func(g *models.Game) error {
			g.Status = models.GameStatusNight
			return nil
		},
	})
	s.Require().NoError(err)

	select {
	case received := <-sub.C:
		s.Require().NotNil(received)
		s.Equal(models.GameStatusNight, received.Status)
	case <-time.After(2 * time.Second):
		s.Fail("expected a game update on the subscription")
	}
}
