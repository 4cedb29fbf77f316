package deck

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"onemorning/internal/models"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckTestSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestDistributionForSupportedSizes() {
	for count := MinPlayers; count <= MaxPlayers; count++ {
		d, err := DistributionFor(count)
		s.Require().NoError(err)
		s.Equal(count, d.Total())
		s.GreaterOrEqual(d.Werewolf, 1)
		s.GreaterOrEqual(d.Seer, 1)
		s.GreaterOrEqual(d.Guard, 1)
	}
}

func (s *DeckTestSuite) TestDistributionForUnsupportedSizes() {
	for _, count := range []int{0, 1, 3, 9, -4} {
		_, err := DistributionFor(count)
		s.Require().ErrorIs(err, ErrUnsupportedPlayerCount)
	}
}

func (s *DeckTestSuite) TestMediumOnlyInEightPlayerDeck() {
	for count := MinPlayers; count <= MaxPlayers; count++ {
		d, err := DistributionFor(count)
		s.Require().NoError(err)
		if count == 8 {
			s.Equal(1, d.Medium)
		} else {
			s.Zero(d.Medium)
		}
	}
}

func (s *DeckTestSuite) TestBuildMatchesDistribution() {
	for count := MinPlayers; count <= MaxPlayers; count++ {
		cards, err := Build(count)
		s.Require().NoError(err)
		s.Len(cards, count)

		counts := map[models.Role]int{}
		for _, role := range cards {
			counts[role]++
		}

		d, err := DistributionFor(count)
		s.Require().NoError(err)
		s.Equal(d.Werewolf, counts[models.RoleWerewolf])
		s.Equal(d.Villager, counts[models.RoleVillager])
		s.Equal(d.Seer, counts[models.RoleSeer])
		s.Equal(d.Guard, counts[models.RoleGuard])
		s.Equal(d.Medium, counts[models.RoleMedium])
	}
}

func (s *DeckTestSuite) TestShufflePreservesMultiset() {
	d := New(&Config{Seed: 42})

	for count := MinPlayers; count <= MaxPlayers; count++ {
		cards, err := Build(count)
		s.Require().NoError(err)

		before := map[models.Role]int{}
		for _, role := range cards {
			before[role]++
		}

		d.Shuffle(cards)

		after := map[models.Role]int{}
		for _, role := range cards {
			after[role]++
		}
		s.Equal(before, after)
	}
}

func (s *DeckTestSuite) TestShuffleReachesEveryPosition() {
	// Over many shuffles every role should land in every slot at least once.
	// A shuffle that pins any card in place would fail this.
	d := New(&Config{Seed: 7})

	const trials = 2000
	seen := make([]map[models.Role]bool, MaxPlayers)
	for i := range seen {
		seen[i] = map[models.Role]bool{}
	}

	for t := 0; t < trials; t++ {
		cards, err := Build(MaxPlayers)
		s.Require().NoError(err)
		d.Shuffle(cards)
		for i, role := range cards {
			seen[i][role] = true
		}
	}

	for i, roles := range seen {
		s.Truef(roles[models.RoleWerewolf], "werewolf never landed in slot %d", i)
		s.Truef(roles[models.RoleVillager], "villager never landed in slot %d", i)
		s.Truef(roles[models.RoleSeer], "seer never landed in slot %d", i)
		s.Truef(roles[models.RoleGuard], "guard never landed in slot %d", i)
		s.Truef(roles[models.RoleMedium], "medium never landed in slot %d", i)
	}
}

func (s *DeckTestSuite) TestPickIndexBounds() {
	d := New(&Config{Seed: 99})

	s.Zero(d.PickIndex(0))
	s.Zero(d.PickIndex(1))

	for t := 0; t < 1000; t++ {
		i := d.PickIndex(3)
		s.GreaterOrEqual(i, 0)
		s.Less(i, 3)
	}
}

func (s *DeckTestSuite) TestPickIndexCoversRange() {
	d := New(&Config{Seed: 13})

	hits := map[int]int{}
	for t := 0; t < 1000; t++ {
		hits[d.PickIndex(4)]++
	}

	for i := 0; i < 4; i++ {
		s.Positivef(hits[i], "index %d was never picked", i)
	}
}
