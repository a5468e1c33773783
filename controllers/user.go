package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the player profile with its wallet summary.
func GetProfile(c *gin.Context) {
	profile, err := upstream.Profile(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetWallet returns the main/play/coins balances.
func GetWallet(c *gin.Context) {
	wallet, err := upstream.Wallet(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// GetTransactions returns the player's transaction history.
func GetTransactions(c *gin.Context) {
	txs, err := upstream.Transactions(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// ConvertCoins converts coins into play balance.
func ConvertCoins(c *gin.Context) {
	var req struct {
		Coins float64 `json:"coins" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wallet, err := upstream.ConvertCoins(c.Request.Context(), req.Coins)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

// TransferFunds moves funds between the main and play wallets.
func TransferFunds(c *gin.Context) {
	var req struct {
		Amount    float64 `json:"amount" binding:"required,gt=0"`
		Direction string  `json:"direction" binding:"required,oneof=to_play to_main"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wallet, err := upstream.TransferFunds(c.Request.Context(), req.Amount, req.Direction)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

// GetLeaderboard returns ranked players for a period.
func GetLeaderboard(c *gin.Context) {
	period := c.DefaultQuery("period", "alltime")
	entries, err := upstream.Leaderboard(c.Request.Context(), period)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
