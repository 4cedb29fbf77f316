package models

// Role represents a role card in the deck
type Role string

const (
	// RoleWerewolf hides among the villager team and tries to survive the vote
	RoleWerewolf Role = "werewolf"

	// RoleVillager has no ability and must declare honestly
	RoleVillager Role = "villager"

	// RoleSeer may inspect the card of one player who has not yet declared
	RoleSeer Role = "seer"

	// RoleGuard may inspect the card of one player who has already declared
	RoleGuard Role = "guard"

	// RoleMedium may inspect one of the center cards
	RoleMedium Role = "medium"

	// RoleFox loses instantly when inspected by the seer or the guard
	RoleFox Role = "fox"

	// RoleExposer wins together with the inspector when inspected by the seer or the guard
	RoleExposer Role = "exposer"

	// RoleUnknown ends the game in a shared loss when a medium turns it up among the center cards
	RoleUnknown Role = "unknown"
)

// Team represents a role's affiliation for win evaluation
type Team string

const (
	// TeamVillager is the villager team
	TeamVillager Team = "villager"

	// TeamWerewolf is the werewolf team
	TeamWerewolf Team = "werewolf"

	// TeamFox is the fox, alone
	TeamFox Team = "fox"

	// TeamExposer is the exposer, alone
	TeamExposer Team = "exposer"

	// TeamUnaffiliated is for cards that belong to no side
	TeamUnaffiliated Team = "unaffiliated"
)

// Team returns the role's fixed affiliation
func (r Role) Team() Team {
	switch r {
	case RoleWerewolf:
		return TeamWerewolf
	case RoleVillager, RoleSeer, RoleGuard, RoleMedium:
		return TeamVillager
	case RoleFox:
		return TeamFox
	case RoleExposer:
		return TeamExposer
	default:
		return TeamUnaffiliated
	}
}

// HasNightAbility reports whether the role acts during the night phase
func (r Role) HasNightAbility() bool {
	return r == RoleSeer || r == RoleGuard || r == RoleMedium
}

// MustDeclareHonestly reports whether the role is bound to a truthful declaration.
// Villager-team roles may only claim their real role; everyone else is free to lie.
func (r Role) MustDeclareHonestly() bool {
	return r.Team() == TeamVillager
}

// DisplayName returns the player-facing name of the role
func (r Role) DisplayName() string {
	switch r {
	case RoleWerewolf:
		return "Werewolf"
	case RoleVillager:
		return "Villager"
	case RoleSeer:
		return "Seer"
	case RoleGuard:
		return "Guard"
	case RoleMedium:
		return "Medium"
	case RoleFox:
		return "Fox"
	case RoleExposer:
		return "Exposer"
	case RoleUnknown:
		return "The Thing You Must Not See"
	default:
		return string(r)
	}
}

// IsValid reports whether the value is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleWerewolf, RoleVillager, RoleSeer, RoleGuard, RoleMedium, RoleFox, RoleExposer, RoleUnknown:
		return true
	default:
		return false
	}
}
