package services

import (
	"encoding/json"

	"github.com/mekbib/bingo-gateway/game"
	"github.com/mekbib/bingo-gateway/models"
	"github.com/mekbib/bingo-gateway/utils/logger"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// History records observed rounds. A nil *History disables recording,
// so the gateway runs without a database.
type History struct {
	db *gorm.DB
}

func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

// Record writes one round outcome. Failures are logged and swallowed;
// history is observational and must never block play.
func (h *History) Record(snap game.Snapshot, outcome string) {
	if h == nil || snap.GameID == "" {
		return
	}
	called, err := json.Marshal(snap.Called)
	if err != nil {
		called = []byte("[]")
	}
	rec := models.RoundRecord{
		GameID:     snap.GameID,
		CardNumber: snap.CardNumber,
		Stake:      snap.Stake,
		Players:    snap.Players,
		Prize:      snap.Prize,
		Outcome:    outcome,
		CalledJSON: datatypes.JSON(called),
	}
	if err := h.db.Create(&rec).Error; err != nil {
		logger.Errorf("[history] record round %s: %v", snap.GameID, err)
	}
}

// Recent returns the newest n round records.
func (h *History) Recent(n int) ([]models.RoundRecord, error) {
	if h == nil {
		return nil, nil
	}
	var recs []models.RoundRecord
	err := h.db.Order("id DESC").Limit(n).Find(&recs).Error
	return recs, err
}
