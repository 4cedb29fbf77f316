package game

import (
	"context"
	"errors"
	"fmt"

	"onemorning/internal/common/clock"
	"onemorning/internal/common/uuid"
	"onemorning/internal/deck"
	"onemorning/internal/models"
	gameRepo "onemorning/internal/repositories/game"
	playerRepo "onemorning/internal/repositories/player"
	revealRepo "onemorning/internal/repositories/reveal"
)

// defaultDiscussionSeconds is the advisory day-phase countdown length
const defaultDiscussionSeconds = 120

// Command names for the phase transition table
const (
	opJoinGame       = "joinGame"
	opLeaveGame      = "leaveGame"
	opStartGame      = "startGame"
	opDeclareRole    = "declareRole"
	opAcknowledge    = "acknowledgeRole"
	opUseAbility     = "useAbility"
	opStartDayPhase  = "startDayPhase"
	opSkipDiscussion = "skipDiscussion"
	opCastVote       = "castVote"
	opTallyVotes     = "tallyVotes"
	opResetGame      = "resetGame"
)

// allowedPhases is the transition table: the state-machine positions in which
// each command is accepted. Commands missing from the table are read-only and
// accepted anywhere.
var allowedPhases = map[string][]models.GameStatus{
	opJoinGame:       {models.GameStatusWaiting},
	opLeaveGame:      {models.GameStatusWaiting},
	opStartGame:      {models.GameStatusWaiting},
	opDeclareRole:    {models.GameStatusNight, models.GameStatusDay},
	opAcknowledge:    {models.GameStatusNight},
	opUseAbility:     {models.GameStatusNight},
	opStartDayPhase:  {models.GameStatusNight},
	opSkipDiscussion: {models.GameStatusDay},
	opCastVote:       {models.GameStatusDay},
	opTallyVotes:     {models.GameStatusDay},
	opResetGame:      {models.GameStatusNight, models.GameStatusDay, models.GameStatusResult},
}

// requirePhase rejects a command whose current status is not in the table
func requirePhase(op string, g *models.Game) error {
	statuses, ok := allowedPhases[op]
	if !ok {
		return nil
	}
	for _, status := range statuses {
		if g.Status == status {
			return nil
		}
	}
	return ErrInvalidPhaseForOperation
}

// AllAbilitiesResolved reports whether every ability-bearing player has used
// their night ability, i.e. the night phase can end.
func AllAbilitiesResolved(g *models.Game) bool {
	for _, p := range g.Players {
		if p.Role.HasNightAbility() && !p.HasUsedAbility {
			return false
		}
	}
	return true
}

// service implements the Service interface
type service struct {
	discussionSeconds int
	gameRepo          gameRepo.Repository
	playerRepo        playerRepo.Repository
	revealRepo        revealRepo.Repository
	dealer            deck.Dealer
	clock             clock.Clock
	uuider            uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.RevealRepo == nil {
		return nil, ErrNilRevealRepo
	}

	if cfg.Dealer == nil {
		return nil, ErrNilDealer
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	discussionSeconds := cfg.DiscussionSeconds
	if discussionSeconds <= 0 {
		discussionSeconds = defaultDiscussionSeconds
	}

	return &service{
		discussionSeconds: discussionSeconds,
		gameRepo:          cfg.GameRepo,
		playerRepo:        cfg.PlayerRepo,
		revealRepo:        cfg.RevealRepo,
		dealer:            cfg.Dealer,
		clock:             cfg.Clock,
		uuider:            cfg.UUIDGenerator,
	}, nil
}

// CreateGame creates a new game with the caller as host
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if _, err := deck.DistributionFor(input.PlayerCount); err != nil {
		return nil, ErrUnsupportedPlayerCount
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:          s.uuider.NewUUID(),
		Status:      models.GameStatusWaiting,
		HostID:      input.HostID,
		PlayerCount: input.PlayerCount,
		Players: []*models.Player{
			{
				ID:      input.HostID,
				Name:    input.HostName,
				IsHost:  true,
				IsAlive: true,
			},
		},
		Votes:     map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, s.mapRepoError(err)
	}

	s.saveSession(ctx, input.HostID, input.HostName, game.ID)

	return &CreateGameOutput{Game: game}, nil
}

// JoinGame adds a player to a waiting game
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	alreadyJoined := false

	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			if g.FindPlayer(input.PlayerID) != nil {
				alreadyJoined = true
				return nil
			}

			if err := requirePhase(opJoinGame, g); err != nil {
				return err
			}

			if g.IsFull() {
				return ErrGameFull
			}

			g.Players = append(g.Players, &models.Player{
				ID:      input.PlayerID,
				Name:    input.PlayerName,
				IsAlive: true,
			})
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	s.saveSession(ctx, input.PlayerID, input.PlayerName, input.GameID)

	return &JoinGameOutput{
		Game:          updated,
		AlreadyJoined: alreadyJoined,
	}, nil
}

// LeaveGame removes a player from a game. The host leaving deletes the game
// for everyone; other players may only leave while the game is waiting.
func (s *service) LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	if game.HostID == input.PlayerID {
		if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: input.GameID}); err != nil {
			return nil, s.mapRepoError(err)
		}
		if err := s.revealRepo.DeleteRevealsForGame(ctx, &revealRepo.DeleteRevealsForGameInput{GameID: input.GameID}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		s.clearSession(ctx, input.PlayerID)

		return &LeaveGameOutput{GameDeleted: true}, nil
	}

	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			if err := requirePhase(opLeaveGame, g); err != nil {
				return err
			}

			remaining := make([]*models.Player, 0, len(g.Players))
			found := false
			for _, p := range g.Players {
				if p.ID == input.PlayerID {
					found = true
					continue
				}
				remaining = append(remaining, p)
			}
			if !found {
				return ErrPlayerNotInGame
			}

			g.Players = remaining
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	s.clearSession(ctx, input.PlayerID)

	return &LeaveGameOutput{Game: updated}, nil
}

// StartGame deals roles and moves the game into the night phase.
// The deal uses the current roster size, shuffles the full role multiset and
// leaves the undealt remainder as center cards.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			if g.HostID != input.HostID {
				return ErrNotHost
			}

			if err := requirePhase(opStartGame, g); err != nil {
				return err
			}

			cards, err := deck.Build(len(g.Players))
			if err != nil {
				return ErrUnsupportedPlayerCount
			}

			// A fresh shuffle on every start, including after a reset
			s.dealer.Shuffle(cards)

			for i, p := range g.Players {
				if i < len(cards) {
					p.Role = cards[i]
				} else {
					// Should not happen: the deck always covers the roster
					p.Role = models.RoleVillager
				}
				p.RoleClaim = ""
				p.HasUsedAbility = false
				p.IsAlive = true
				p.NightAction = models.NightActionPending
			}

			g.CenterCards = append([]models.Role{}, cards[len(g.Players):]...)
			g.Votes = map[string]string{}
			g.Result = nil
			g.Timer = 0
			g.IsTimerRunning = false
			g.Status = models.GameStatusNight
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	// Reveals from a previous round must not carry over
	if err := s.revealRepo.DeleteRevealsForGame(ctx, &revealRepo.DeleteRevealsForGameInput{GameID: input.GameID}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &StartGameOutput{Game: updated}, nil
}

// DeclareRole records a player's one-shot public role claim
func (s *service) DeclareRole(ctx context.Context, input *DeclareRoleInput) (*DeclareRoleOutput, error) {
	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			if err := requirePhase(opDeclareRole, g); err != nil {
				return err
			}

			p := g.FindPlayer(input.PlayerID)
			if p == nil {
				return ErrUnknownPlayer
			}

			if p.HasDeclared() {
				return ErrRoleClaimAlreadyDeclared
			}

			if !input.RoleClaim.IsValid() {
				return ErrInvalidRoleClaim
			}

			if p.Role.MustDeclareHonestly() && input.RoleClaim != p.Role {
				return ErrDishonestRoleClaim
			}

			p.RoleClaim = input.RoleClaim
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	return &DeclareRoleOutput{Game: updated}, nil
}

// AcknowledgeRole confirms the caller has seen their dealt role. Werewolves
// learn their fellow werewolves here; players without a night ability are
// immediately marked resolved.
func (s *service) AcknowledgeRole(ctx context.Context, input *AcknowledgeRoleInput) (*AcknowledgeRoleOutput, error) {
	var role models.Role
	var fellows []string

	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			if err := requirePhase(opAcknowledge, g); err != nil {
				return err
			}

			p := g.FindPlayer(input.PlayerID)
			if p == nil {
				return ErrUnknownPlayer
			}

			role = p.Role

			if p.Role == models.RoleWerewolf {
				fellows = make([]string, 0, 1)
				for _, id := range g.WerewolfIDs() {
					if id != p.ID {
						fellows = append(fellows, id)
					}
				}
			}

			if p.NightAction == models.NightActionPending {
				if p.Role.HasNightAbility() {
					p.NightAction = models.NightActionRevealed
				} else {
					p.NightAction = models.NightActionResolved
				}
				g.UpdatedAt = s.clock.Now()
			}
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	return &AcknowledgeRoleOutput{
		Role:              role,
		FellowWerewolfIDs: fellows,
		Game:              updated,
	}, nil
}

// UseAbility resolves a night ability. The reveal payload is returned to the
// caller and stored in the private reveal ledger; it never enters the shared
// game record. The ability is consumed before special conditions are
// evaluated, so a game-ending reveal still burns the ability.
func (s *service) UseAbility(ctx context.Context, input *UseAbilityInput) (*UseAbilityOutput, error) {
	var revealed *models.Reveal
	var special *models.Result

	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			// Recompute from the fresh copy on every optimistic-lock attempt
			revealed = nil
			special = nil

			if err := requirePhase(opUseAbility, g); err != nil {
				return err
			}

			p := g.FindPlayer(input.PlayerID)
			if p == nil {
				return ErrUnknownPlayer
			}

			if p.HasUsedAbility {
				return ErrAbilityAlreadyUsed
			}

			now := s.clock.Now()

			switch p.Role {
			case models.RoleSeer:
				target := g.FindPlayer(input.TargetPlayerID)
				if target == nil || target.ID == p.ID || target.HasDeclared() {
					return ErrInvalidSeerTarget
				}
				revealed = &models.Reveal{
					ID:         s.uuider.NewUUID(),
					GameID:     g.ID,
					PlayerID:   p.ID,
					Kind:       models.RevealKindPlayer,
					TargetID:   target.ID,
					TargetName: target.Name,
					Role:       target.Role,
					Timestamp:  now,
				}
				special = inspectionSpecial(p.ID, target)

			case models.RoleGuard:
				target := g.FindPlayer(input.TargetPlayerID)
				if target == nil || target.ID == p.ID || !target.HasDeclared() {
					return ErrInvalidGuardTarget
				}
				revealed = &models.Reveal{
					ID:         s.uuider.NewUUID(),
					GameID:     g.ID,
					PlayerID:   p.ID,
					Kind:       models.RevealKindPlayer,
					TargetID:   target.ID,
					TargetName: target.Name,
					Role:       target.Role,
					Timestamp:  now,
				}
				special = inspectionSpecial(p.ID, target)

			case models.RoleMedium:
				if input.CenterCardIndex == nil || *input.CenterCardIndex < 0 || *input.CenterCardIndex >= len(g.CenterCards) {
					return ErrInvalidCenterCardIndex
				}
				card := g.CenterCards[*input.CenterCardIndex]
				revealed = &models.Reveal{
					ID:        s.uuider.NewUUID(),
					GameID:    g.ID,
					PlayerID:  p.ID,
					Kind:      models.RevealKindCenter,
					CardIndex: *input.CenterCardIndex,
					Role:      card,
					Timestamp: now,
				}
				if card == models.RoleUnknown {
					special = &models.Result{
						Type:    models.ResultUnknownLoss,
						Message: msgUnknownLoss,
					}
				}

			default:
				return ErrNoAbilityForRole
			}

			// Consume the ability before evaluating the special condition
			p.HasUsedAbility = true
			p.NightAction = models.NightActionResolved

			if special != nil {
				g.Result = special
				g.Status = models.GameStatusResult
			}

			g.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	if err := s.revealRepo.AddReveal(ctx, &revealRepo.AddRevealInput{Reveal: revealed}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &UseAbilityOutput{
		Reveal:  revealed,
		Special: special,
		Game:    updated,
	}, nil
}

// inspectionSpecial evaluates the instant conditions triggered by a seer or
// guard inspection. Fox: instant loss for the fox. Exposer: the exposer and
// the inspector win together.
func inspectionSpecial(inspectorID string, target *models.Player) *models.Result {
	switch target.Role {
	case models.RoleFox:
		return &models.Result{
			Type:    models.ResultFoxLoss,
			Message: msgFoxLoss,
		}
	case models.RoleExposer:
		return &models.Result{
			Type:      models.ResultExposerWin,
			Message:   msgExposerWin,
			WinnerIDs: []string{inspectorID, target.ID},
		}
	default:
		return nil
	}
}

// StartDayPhase opens the discussion and voting phase
func (s *service) StartDayPhase(ctx context.Context, input *StartDayPhaseInput) (*StartDayPhaseOutput, error) {
	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			if g.HostID != input.HostID {
				return ErrNotHost
			}

			if err := requirePhase(opStartDayPhase, g); err != nil {
				return err
			}

			g.Status = models.GameStatusDay
			g.Votes = map[string]string{}
			g.Timer = s.discussionSeconds
			g.IsTimerRunning = true
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	return &StartDayPhaseOutput{Game: updated}, nil
}

// SkipDiscussion stops the advisory discussion countdown
func (s *service) SkipDiscussion(ctx context.Context, input *SkipDiscussionInput) (*SkipDiscussionOutput, error) {
	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			if g.HostID != input.HostID {
				return ErrNotHost
			}

			if err := requirePhase(opSkipDiscussion, g); err != nil {
				return err
			}

			g.Timer = 0
			g.IsTimerRunning = false
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	return &SkipDiscussionOutput{Game: updated}, nil
}

// CastVote records a vote, overwriting any earlier vote by the same voter.
// Eliminated players cannot vote; eliminated players may still be voted for.
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			if err := requirePhase(opCastVote, g); err != nil {
				return err
			}

			voter := g.FindPlayer(input.VoterID)
			if voter == nil {
				return ErrUnknownVoter
			}

			if !voter.IsAlive {
				return ErrDeadVoter
			}

			if g.FindPlayer(input.TargetID) == nil {
				return ErrUnknownTarget
			}

			if g.Votes == nil {
				g.Votes = map[string]string{}
			}
			g.Votes[input.VoterID] = input.TargetID
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	return &CastVoteOutput{Game: updated}, nil
}

// TallyVotes resolves the elimination vote. Ties are broken uniformly at
// random among the tied targets. Win conditions are evaluated over the
// post-elimination roster and take precedence over a plain elimination.
func (s *service) TallyVotes(ctx context.Context, input *TallyVotesInput) (*TallyVotesOutput, error) {
	var result *models.Result

	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			result = nil

			if g.HostID != input.HostID {
				return ErrNotHost
			}

			if err := requirePhase(opTallyVotes, g); err != nil {
				return err
			}

			g.Timer = 0
			g.IsTimerRunning = false
			now := s.clock.Now()

			if len(g.Votes) == 0 {
				result = &models.Result{
					Type:    models.ResultNoVotes,
					Message: msgNoVotes,
				}
				g.Result = result
				g.Status = models.GameStatusResult
				g.UpdatedAt = now
				return nil
			}

			counts := map[string]int{}
			maxCount := 0
			for _, targetID := range g.Votes {
				counts[targetID]++
				if counts[targetID] > maxCount {
					maxCount = counts[targetID]
				}
			}

			// Collect the tied leaders in roster order so the random pick
			// below is the only source of non-determinism
			tied := make([]*models.Player, 0, len(counts))
			for _, p := range g.Players {
				if counts[p.ID] == maxCount {
					tied = append(tied, p)
				}
			}

			eliminated := tied[s.dealer.PickIndex(len(tied))]
			eliminated.IsAlive = false

			snapshot := &models.PlayerSnapshot{
				ID:   eliminated.ID,
				Name: eliminated.Name,
				Role: eliminated.Role,
			}

			aliveWolves := g.AliveWerewolfCount()
			aliveOthers := g.AliveCount() - aliveWolves

			switch {
			case aliveWolves == 0:
				result = &models.Result{
					Type:             models.ResultVillagerWin,
					Message:          msgVillagerWin,
					EliminatedPlayer: snapshot,
				}
			case aliveWolves >= aliveOthers:
				result = &models.Result{
					Type:             models.ResultWerewolfWin,
					Message:          msgWerewolfWin,
					EliminatedPlayer: snapshot,
				}
			default:
				result = &models.Result{
					Type:             models.ResultElimination,
					Message:          eliminationMessage(eliminated),
					EliminatedPlayer: snapshot,
				}
			}

			g.Result = result
			if result.Type.IsTerminal() {
				g.Status = models.GameStatusResult
			} else {
				// The round continues: back to discussion with a clean ballot
				g.Status = models.GameStatusDay
				g.Votes = map[string]string{}
			}
			g.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	return &TallyVotesOutput{
		Game:   updated,
		Result: result,
	}, nil
}

// ResetGame returns a finished game to the lobby with the roster preserved
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(g *models.Game) error {
			if g.HostID != input.HostID {
				return ErrNotHost
			}

			if err := requirePhase(opResetGame, g); err != nil {
				return err
			}

			for _, p := range g.Players {
				p.Role = ""
				p.RoleClaim = ""
				p.HasUsedAbility = false
				p.IsAlive = true
				p.NightAction = ""
			}

			g.CenterCards = nil
			g.Votes = map[string]string{}
			g.Result = nil
			g.Timer = 0
			g.IsTimerRunning = false
			g.Status = models.GameStatusWaiting
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	if err := s.revealRepo.DeleteRevealsForGame(ctx, &revealRepo.DeleteRevealsForGameInput{GameID: input.GameID}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &ResetGameOutput{Game: updated}, nil
}

// GetGame fetches a game record
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	return &GetGameOutput{Game: game}, nil
}

// ListOpenGames lists games still waiting for players
func (s *service) ListOpenGames(ctx context.Context, input *ListOpenGamesInput) (*ListOpenGamesOutput, error) {
	listing, err := s.gameRepo.GetWaitingGames(ctx, &gameRepo.GetWaitingGamesInput{})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	return &ListOpenGamesOutput{Games: listing.Games}, nil
}

// GetReveals fetches the caller's private ability reveals
func (s *service) GetReveals(ctx context.Context, input *GetRevealsInput) (*GetRevealsOutput, error) {
	out, err := s.revealRepo.GetRevealsForPlayer(ctx, &revealRepo.GetRevealsForPlayerInput{
		GameID:   input.GameID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &GetRevealsOutput{Reveals: out.Reveals}, nil
}

// GetCurrentGame resolves the game a reconnecting player belongs to
func (s *service) GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetCurrentGameOutput, error) {
	session, err := s.playerRepo.GetSession(ctx, &playerRepo.GetSessionInput{PlayerID: input.PlayerID})
	if err != nil {
		if errors.Is(err, playerRepo.ErrSessionNotFound) {
			return &GetCurrentGameOutput{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if session.CurrentGameID == "" {
		return &GetCurrentGameOutput{}, nil
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: session.CurrentGameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			// The game was torn down while the player was away
			s.clearSession(ctx, input.PlayerID)
			return &GetCurrentGameOutput{}, nil
		}
		return nil, s.mapRepoError(err)
	}

	return &GetCurrentGameOutput{
		GameID: session.CurrentGameID,
		Game:   game,
	}, nil
}

// saveSession records which game a player is in; reattach is best-effort
// and must not fail the command that triggered it
func (s *service) saveSession(ctx context.Context, playerID, name, gameID string) {
	_ = s.playerRepo.SaveSession(ctx, &playerRepo.SaveSessionInput{
		Session: &models.PlayerSession{
			PlayerID:      playerID,
			Name:          name,
			CurrentGameID: gameID,
			UpdatedAt:     s.clock.Now(),
		},
	})
}

// clearSession drops a player's reattach mapping, best-effort
func (s *service) clearSession(ctx context.Context, playerID string) {
	_ = s.playerRepo.DeleteSession(ctx, &playerRepo.DeleteSessionInput{PlayerID: playerID})
}

// mapRepoError translates repository errors into the service taxonomy while
// letting validation errors raised inside an update pass through unchanged
func (s *service) mapRepoError(err error) error {
	var gameErr GameError
	if errors.As(err, &gameErr) {
		return gameErr
	}

	switch {
	case errors.Is(err, gameRepo.ErrGameNotFound):
		return ErrGameNotFound
	case errors.Is(err, gameRepo.ErrConcurrentModification):
		return ErrConcurrentModification
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
