package controllers

import (
	"net/http"

	"github.com/mekbib/bingo-gateway/services"

	"github.com/gin-gonic/gin"
)

// Package-level collaborators, wired once at startup.
var (
	upstream *services.Upstream
	rounds   *services.RoundService
	history  *services.History
)

// Init wires the controllers to their services. history may be nil.
func Init(u *services.Upstream, r *services.RoundService, h *services.History) {
	upstream = u
	rounds = r
	history = h
}

// upstreamError reports an upstream API failure as a displayable,
// retryable error. It never touches round state.
func upstreamError(c *gin.Context, err error) {
	c.JSON(http.StatusBadGateway, gin.H{
		"error":     err.Error(),
		"retryable": true,
	})
}
