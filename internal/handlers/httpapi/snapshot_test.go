package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onemorning/internal/models"
)

func nightGame() *models.Game {
	return &models.Game{
		ID:          "game-id",
		Status:      models.GameStatusNight,
		HostID:      "wolf1",
		PlayerCount: 5,
		Players: []*models.Player{
			{ID: "wolf1", Name: "Anna", IsHost: true, IsAlive: true, Role: models.RoleWerewolf},
			{ID: "wolf2", Name: "Ben", IsAlive: true, Role: models.RoleWerewolf},
			{ID: "seer", Name: "Cleo", IsAlive: true, Role: models.RoleSeer},
			{ID: "guard", Name: "Dev", IsAlive: true, Role: models.RoleGuard},
			{ID: "villager", Name: "Eve", IsAlive: true, Role: models.RoleVillager},
		},
		CenterCards: []models.Role{models.RoleVillager},
	}
}

func TestSnapshotHidesOtherRoles(t *testing.T) {
	view := snapshotFor(nightGame(), "seer")
	require.NotNil(t, view)

	for _, p := range view.Players {
		if p.ID == "seer" {
			assert.Equal(t, models.RoleSeer, p.Role)
		} else {
			assert.Empty(t, p.Role, "role of %s must be hidden", p.ID)
		}
	}
}

func TestSnapshotWerewolfSeesFellowWolves(t *testing.T) {
	view := snapshotFor(nightGame(), "wolf1")

	for _, p := range view.Players {
		switch p.ID {
		case "wolf1", "wolf2":
			assert.Equal(t, models.RoleWerewolf, p.Role)
		default:
			assert.Empty(t, p.Role)
		}
	}
}

func TestSnapshotHidesCenterCardFaces(t *testing.T) {
	view := snapshotFor(nightGame(), "seer")

	assert.Equal(t, 1, view.CenterCardCount)
	assert.Empty(t, view.CenterCards)
}

func TestSnapshotRevealsEverythingAtResult(t *testing.T) {
	g := nightGame()
	g.Status = models.GameStatusResult
	g.Result = &models.Result{Type: models.ResultVillagerWin}

	view := snapshotFor(g, "villager")

	for _, p := range view.Players {
		assert.NotEmpty(t, p.Role)
	}
	assert.Equal(t, []models.Role{models.RoleVillager}, view.CenterCards)
	require.NotNil(t, view.Result)
	assert.Equal(t, models.ResultVillagerWin, view.Result.Type)
}

func TestSnapshotForOutsideViewer(t *testing.T) {
	// A spectator who is not on the roster sees no roles at all
	view := snapshotFor(nightGame(), "stranger")

	for _, p := range view.Players {
		assert.Empty(t, p.Role)
	}
}

func TestSnapshotPublicFieldsPassThrough(t *testing.T) {
	g := nightGame()
	g.Players[0].RoleClaim = models.RoleVillager
	g.Players[2].HasUsedAbility = true
	g.Votes = map[string]string{"seer": "wolf1"}

	view := snapshotFor(g, "villager")

	assert.Equal(t, models.RoleVillager, view.Players[0].RoleClaim)
	assert.True(t, view.Players[2].HasUsedAbility)
	assert.Equal(t, "wolf1", view.Votes["seer"])
}

func TestSnapshotNilGame(t *testing.T) {
	assert.Nil(t, snapshotFor(nil, "anyone"))
}
