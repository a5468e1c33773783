package models

import (
	"time"

	"gorm.io/datatypes"
)

// Round outcomes as observed by the gateway.
const (
	RoundOutcomeWin       = "win"
	RoundOutcomeLost      = "lost"
	RoundOutcomeLeft      = "left"
	RoundOutcomeForcedOut = "forced_out"
)

// RoundRecord is one observed round: what was staked, who played and
// how it ended. Written when a round finishes or the player leaves;
// the server remains authoritative for money movement.
type RoundRecord struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	GameID     string         `gorm:"index" json:"game_id"`
	CardNumber int            `json:"card_number"`
	Stake      float64        `json:"stake"`
	Players    int            `json:"players"`
	Prize      int            `json:"prize"`
	Outcome    string         `json:"outcome"`
	CalledJSON datatypes.JSON `json:"called"`
	CreatedAt  time.Time      `json:"created_at"`
}
