package main

import (
	"context"
	"net/http"
	"time"

	"github.com/mekbib/bingo-gateway/config"
	"github.com/mekbib/bingo-gateway/controllers"
	"github.com/mekbib/bingo-gateway/game"
	"github.com/mekbib/bingo-gateway/routes"
	"github.com/mekbib/bingo-gateway/services"
	"github.com/mekbib/bingo-gateway/utils/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// setupRouter initializes Gin routes and middleware.
func setupRouter(cfg *config.Config, hub *services.Hub) *gin.Engine {
	r := gin.Default()

	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket endpoint pushing session snapshots to the browser.
	r.GET("/ws/game", hub.HandleWS)

	return r
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, reading environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	// Local persistence is optional; without it preferences live in
	// memory and round history is disabled.
	var settings game.SettingsStore = services.NewMemorySettings()
	var history *services.History
	if cfg.DatabaseURL != "" {
		db, err := config.SetupDatabase(cfg.DatabaseURL)
		if err != nil {
			logger.Log.Fatalf("database: %v", err)
		}
		settings = services.NewDBSettings(db)
		history = services.NewHistory(db)
		logger.Info("database connected, round history enabled")
	}

	session := game.NewSession(settings, cfg.ReadyDelay)
	defer session.Close()

	hub := services.NewHub()
	rounds := services.NewRoundService(session, hub, history)
	hub.SetRounds(rounds)

	upstream := services.NewUpstream(cfg.UpstreamAPIURL, cfg.SessionToken)
	controllers.Init(upstream, rounds, history)

	stream := services.NewStream(cfg.UpstreamWSURL, cfg.SessionToken, rounds)
	rounds.SetSender(stream)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go stream.Run(ctx)

	router := setupRouter(cfg, hub)

	logger.Infof("bingo gateway listening on port %s (catalog: %d cards)", cfg.Port, game.CatalogSize())
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatalf("server: %v", err)
	}
}
