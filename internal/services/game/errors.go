package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Validation and state errors, surfaced to the caller as-is
const (
	ErrGameNotFound             GameError = "game not found"
	ErrGameFull                 GameError = "game is at maximum capacity"
	ErrPlayerAlreadyInGame      GameError = "player already in game"
	ErrPlayerNotInGame          GameError = "player not in game"
	ErrNotHost                  GameError = "only the host may perform this operation"
	ErrInvalidPhaseForOperation GameError = "operation not allowed in the current phase"
	ErrUnsupportedPlayerCount   GameError = "unsupported player count"
	ErrUnknownPlayer            GameError = "unknown player"
	ErrUnknownVoter             GameError = "unknown voter"
	ErrUnknownTarget            GameError = "unknown vote target"
	ErrDeadVoter                GameError = "eliminated players cannot vote"
	ErrInvalidSeerTarget        GameError = "the seer may only inspect a player who has not declared"
	ErrInvalidGuardTarget       GameError = "the guard may only inspect a player who has declared"
	ErrInvalidCenterCardIndex   GameError = "invalid center card index"
	ErrNoAbilityForRole         GameError = "this role has no night ability"
	ErrAbilityAlreadyUsed       GameError = "ability has already been used"
	ErrRoleClaimAlreadyDeclared GameError = "role has already been declared"
	ErrInvalidRoleClaim         GameError = "unknown role claim"
	ErrDishonestRoleClaim       GameError = "villager-team roles must declare their true role"
)

// Infrastructure errors
const (
	ErrConcurrentModification GameError = "game was modified concurrently, please retry"
	ErrStoreUnavailable       GameError = "game store is unavailable"
)

// Constructor errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilGameRepo      GameError = "game repository cannot be nil"
	ErrNilPlayerRepo    GameError = "player repository cannot be nil"
	ErrNilRevealRepo    GameError = "reveal repository cannot be nil"
	ErrNilDealer        GameError = "dealer cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
