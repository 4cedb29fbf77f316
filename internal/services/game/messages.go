package game

import (
	"fmt"

	"onemorning/internal/models"
)

// Player-facing outcome messages
const (
	msgFoxLoss     = "The fox's card was inspected! The fox loses."
	msgExposerWin  = "The exposer's card was inspected! The exposer and the inspector win together."
	msgUnknownLoss = "The Thing You Must Not See has been uncovered! Everyone loses."
	msgNoVotes     = "No votes were cast."
	msgVillagerWin = "The villager team wins! Every werewolf has been exiled."
	msgWerewolfWin = "The werewolf team wins! The werewolves now match the rest of the village."
)

// eliminationMessage describes a non-terminal exile
func eliminationMessage(p *models.Player) string {
	return fmt.Sprintf("%s (%s) has been exiled.", p.Name, p.Role.DisplayName())
}
