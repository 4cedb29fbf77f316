package player

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"onemorning/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	session := &models.PlayerSession{
		PlayerID:      "test-player-id",
		Name:          "Test Player",
		CurrentGameID: "test-game-id",
		UpdatedAt:     time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC),
	}

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.Equal("Test Player", retrieved.Name)
	s.Equal("test-game-id", retrieved.CurrentGameID)
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		PlayerID: "missing-player-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	session := &models.PlayerSession{
		PlayerID: "test-player-id",
		Name:     "Test Player",
	}

	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session}))

	err := s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{
		PlayerID: "test-player-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}
