package controllers

import (
	"net/http"
	"strconv"

	"github.com/mekbib/bingo-gateway/game"

	"github.com/gin-gonic/gin"
)

// GetGameState returns the current session snapshot.
func GetGameState(c *gin.Context) {
	c.JSON(http.StatusOK, rounds.Snapshot())
}

// MarkNumber toggles a mark on the player's card. Ignored marks
// (watch-only, off-card numbers) still return the current state.
func MarkNumber(c *gin.Context) {
	var req struct {
		Number int `json:"number" binding:"required,min=1,max=75"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rounds.ToggleMark(req.Number)
	c.JSON(http.StatusOK, rounds.Snapshot())
}

// SubmitClaim runs the local bingo gate and reports the outcome.
func SubmitClaim(c *gin.Context) {
	result := rounds.SubmitClaim()
	var outcome string
	switch result {
	case game.ClaimWin:
		outcome = "win"
	case game.ClaimRejected:
		outcome = "removed"
	default:
		outcome = "ignored"
	}
	c.JSON(http.StatusOK, gin.H{"result": outcome, "state": rounds.Snapshot()})
}

// LeaveRound exits the current round.
func LeaveRound(c *gin.Context) {
	rounds.Leave()
	c.JSON(http.StatusOK, rounds.Snapshot())
}

// ToggleAudio flips the persisted audio preference.
func ToggleAudio(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"audio": rounds.ToggleAudio()})
}

// GetRoundHistory returns recently observed rounds when history is
// enabled.
func GetRoundHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	recs, err := history.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rounds": recs})
}
