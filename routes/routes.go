package routes

import (
	"github.com/mekbib/bingo-gateway/controllers"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ----------------------
	// User routes
	// ----------------------
	api.GET("/user/profile", controllers.GetProfile)
	api.GET("/user/transactions", controllers.GetTransactions)
	api.GET("/wallet", controllers.GetWallet)
	api.POST("/wallet/convert", controllers.ConvertCoins)
	api.POST("/wallet/transfer", controllers.TransferFunds)
	api.GET("/leaderboard", controllers.GetLeaderboard)

	// ----------------------
	// Game routes
	// ----------------------
	api.GET("/game/state", controllers.GetGameState)
	api.POST("/game/mark", controllers.MarkNumber)
	api.POST("/game/claim", controllers.SubmitClaim)
	api.POST("/game/leave", controllers.LeaveRound)
	api.POST("/game/audio", controllers.ToggleAudio)
	api.GET("/game/history", controllers.GetRoundHistory)

	// ----------------------
	// Admin routes
	// ----------------------
	api.GET("/admin/posts", controllers.ListPosts)
	api.POST("/admin/posts", controllers.CreatePost)
	api.GET("/admin/balances/deposits", controllers.ListDeposits)
	api.GET("/admin/balances/withdrawals", controllers.ListPendingWithdrawals)
	api.GET("/admin/stats/today", controllers.GetStatsToday)
	api.GET("/admin/stats/revenue/by-day", controllers.GetRevenueByDay)
}
