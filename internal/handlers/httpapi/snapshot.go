package httpapi

import (
	"onemorning/internal/models"
)

// snapshotFor renders the game record as the given viewer is allowed to see
// it. Every participant subscribes to the same record, so hidden information
// must be stripped here rather than trusted to the client:
//
//   - a player always sees their own role
//   - werewolves see the roles of fellow werewolves
//   - everyone sees every role once the game has a result
//   - center card faces stay hidden until the result, only the count is public
//
// Role claims, votes, ability usage and night-action progress are public by
// the rules of the game and pass through unchanged.
func snapshotFor(g *models.Game, viewerID string) *gameView {
	if g == nil {
		return nil
	}

	finished := g.Status == models.GameStatusResult

	viewer := g.FindPlayer(viewerID)
	viewerIsWolf := viewer != nil && viewer.Role == models.RoleWerewolf

	players := make([]*playerView, 0, len(g.Players))
	for _, p := range g.Players {
		view := &playerView{
			ID:             p.ID,
			Name:           p.Name,
			IsHost:         p.IsHost,
			IsAlive:        p.IsAlive,
			RoleClaim:      p.RoleClaim,
			HasUsedAbility: p.HasUsedAbility,
			NightAction:    p.NightAction,
		}

		switch {
		case finished:
			view.Role = p.Role
		case p.ID == viewerID:
			view.Role = p.Role
		case viewerIsWolf && p.Role == models.RoleWerewolf:
			view.Role = p.Role
		}

		players = append(players, view)
	}

	view := &gameView{
		ID:              g.ID,
		Status:          g.Status,
		HostID:          g.HostID,
		PlayerCount:     g.PlayerCount,
		Players:         players,
		CenterCardCount: len(g.CenterCards),
		Votes:           g.Votes,
		Timer:           g.Timer,
		IsTimerRunning:  g.IsTimerRunning,
		Result:          g.Result,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}

	if finished {
		view.CenterCards = g.CenterCards
	}

	return view
}
