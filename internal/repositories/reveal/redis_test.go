package reveal

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
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
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

	s.testNow = time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestAddAndGetReveal() {
	record := &models.Reveal{
		ID:         "test-reveal-id",
		GameID:     "test-game-id",
		PlayerID:   "seer-id",
		Kind:       models.RevealKindPlayer,
		TargetID:   "target-id",
		TargetName: "Target Player",
		Role:       models.RoleWerewolf,
		Timestamp:  s.testNow,
	}

	err := s.repo.AddReveal(context.Background(), &AddRevealInput{
		Reveal: record,
	})
	s.Require().NoError(err)

	out, err := s.repo.GetRevealsForPlayer(context.Background(), &GetRevealsForPlayerInput{
		GameID:   "test-game-id",
		PlayerID: "seer-id",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Reveals, 1)
	s.Equal(models.RoleWerewolf, out.Reveals[0].Role)
	s.Equal("target-id", out.Reveals[0].TargetID)
}

func (s *RedisRepositoryTestSuite) TestRevealsAreScopedToViewer() {
	record := &models.Reveal{
		ID:        "test-reveal-id",
		GameID:    "test-game-id",
		PlayerID:  "seer-id",
		Kind:      models.RevealKindPlayer,
		TargetID:  "target-id",
		Role:      models.RoleFox,
		Timestamp: s.testNow,
	}

	s.Require().NoError(s.repo.AddReveal(context.Background(), &AddRevealInput{Reveal: record}))

	// Another player in the same game sees nothing
	out, err := s.repo.GetRevealsForPlayer(context.Background(), &GetRevealsForPlayerInput{
		GameID:   "test-game-id",
		PlayerID: "other-player-id",
	})
	s.Require().NoError(err)
	s.Empty(out.Reveals)
}

func (s *RedisRepositoryTestSuite) TestDeleteRevealsForGame() {
	for _, record := range []*models.Reveal{
		{
			ID:        "reveal-1",
			GameID:    "test-game-id",
			PlayerID:  "seer-id",
			Kind:      models.RevealKindPlayer,
			TargetID:  "target-id",
			Role:      models.RoleVillager,
			Timestamp: s.testNow,
		},
		{
			ID:        "reveal-2",
			GameID:    "test-game-id",
			PlayerID:  "medium-id",
			Kind:      models.RevealKindCenter,
			CardIndex: 0,
			Role:      models.RoleSeer,
			Timestamp: s.testNow,
		},
	} {
		s.Require().NoError(s.repo.AddReveal(context.Background(), &AddRevealInput{Reveal: record}))
	}

	err := s.repo.DeleteRevealsForGame(context.Background(), &DeleteRevealsForGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)

	for _, playerID := range []string{"seer-id", "medium-id"} {
		out, err := s.repo.GetRevealsForPlayer(context.Background(), &GetRevealsForPlayerInput{
			GameID:   "test-game-id",
			PlayerID: playerID,
		})
		s.Require().NoError(err)
		s.Empty(out.Reveals)
	}
}
