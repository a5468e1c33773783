package models

import "time"

// Preference is one persisted UI preference (audio on/off and the
// like). Cosmetic only; carries no consistency requirement.
type Preference struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
