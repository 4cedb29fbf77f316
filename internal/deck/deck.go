package deck

//go:generate mockgen -package=mocks -destination=mocks/mock_dealer.go onemorning/internal/deck Dealer

import (
	"errors"
	"math/rand"
	"time"

	"onemorning/internal/models"
)

// MinPlayers and MaxPlayers bound the supported roster sizes
const (
	MinPlayers = 4
	MaxPlayers = 8
)

// ErrUnsupportedPlayerCount is returned for roster sizes outside [MinPlayers, MaxPlayers]
var ErrUnsupportedPlayerCount = errors.New("unsupported player count")

// Distribution holds the fixed role counts for one roster size
type Distribution struct {
	Werewolf int
	Villager int
	Seer     int
	Guard    int
	Medium   int
}

// Total returns the number of cards in the deck for this distribution
func (d Distribution) Total() int {
	return d.Werewolf + d.Villager + d.Seer + d.Guard + d.Medium
}

// distributions is the fixed role table per roster size
var distributions = map[int]Distribution{
	4: {Werewolf: 1, Villager: 1, Seer: 1, Guard: 1, Medium: 0},
	5: {Werewolf: 1, Villager: 2, Seer: 1, Guard: 1, Medium: 0},
	6: {Werewolf: 1, Villager: 3, Seer: 1, Guard: 1, Medium: 0},
	7: {Werewolf: 2, Villager: 3, Seer: 1, Guard: 1, Medium: 0},
	8: {Werewolf: 2, Villager: 3, Seer: 1, Guard: 1, Medium: 1},
}

// DistributionFor returns the role counts for a roster size
func DistributionFor(playerCount int) (Distribution, error) {
	d, ok := distributions[playerCount]
	if !ok {
		return Distribution{}, ErrUnsupportedPlayerCount
	}
	return d, nil
}

// Build returns the unshuffled multiset of role cards for a roster size
func Build(playerCount int) ([]models.Role, error) {
	d, err := DistributionFor(playerCount)
	if err != nil {
		return nil, err
	}

	cards := make([]models.Role, 0, d.Total())
	for i := 0; i < d.Werewolf; i++ {
		cards = append(cards, models.RoleWerewolf)
	}
	for i := 0; i < d.Villager; i++ {
		cards = append(cards, models.RoleVillager)
	}
	for i := 0; i < d.Seer; i++ {
		cards = append(cards, models.RoleSeer)
	}
	for i := 0; i < d.Guard; i++ {
		cards = append(cards, models.RoleGuard)
	}
	for i := 0; i < d.Medium; i++ {
		cards = append(cards, models.RoleMedium)
	}

	return cards, nil
}

// Dealer provides the randomness for dealing and tie-breaking
type Dealer interface {
	// Shuffle permutes the cards in place with a uniform shuffle
	Shuffle(cards []models.Role)

	// PickIndex returns a uniformly random index in [0, n)
	PickIndex(n int) int
}

// Config for the dealer
type Config struct {
	// Optional seed for testing
	Seed int64
}

// dealer implements Dealer with a seeded PRNG
type dealer struct {
	random *rand.Rand
}

// New creates a new dealer
func New(cfg *Config) Dealer {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &dealer{
		random: rand.New(source),
	}
}

// Shuffle performs a Fisher-Yates shuffle from the last index down to 1
func (d *dealer) Shuffle(cards []models.Role) {
	for i := len(cards) - 1; i > 0; i-- {
		j := d.random.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// PickIndex returns a uniformly random index in [0, n)
func (d *dealer) PickIndex(n int) int {
	if n <= 1 {
		return 0
	}
	return d.random.Intn(n)
}
