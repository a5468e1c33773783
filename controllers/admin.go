package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListPosts returns announcement posts.
func ListPosts(c *gin.Context) {
	posts, err := upstream.Posts(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost forwards an announcement upload (kind, caption, active,
// media file) to the server.
func CreatePost(c *gin.Context) {
	kind := c.PostForm("kind")
	if kind != "image" && kind != "video" && kind != "text" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be image, video or text"})
		return
	}
	caption := c.PostForm("caption")
	active, _ := strconv.ParseBool(c.DefaultPostForm("active", "true"))

	var filename string
	var file io.Reader
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
			return
		}
		defer f.Close()
		filename = fh.Filename
		file = f
	} else if kind != "text" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if err := upstream.CreatePost(c.Request.Context(), kind, caption, active, filename, file); err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// ListDeposits returns recorded deposits.
func ListDeposits(c *gin.Context) {
	deposits, err := upstream.Deposits(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deposits": deposits})
}

// ListPendingWithdrawals returns withdrawal requests awaiting approval.
func ListPendingWithdrawals(c *gin.Context) {
	withdrawals, err := upstream.PendingWithdrawals(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": withdrawals})
}

// GetStatsToday returns today's player count and system cut.
func GetStatsToday(c *gin.Context) {
	stats, err := upstream.StatsToday(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetRevenueByDay returns per-day revenue for the last n days.
func GetRevenueByDay(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "14"))
	if err != nil || days < 1 || days > 365 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
		return
	}
	revenue, err := upstream.RevenueByDay(c.Request.Context(), days)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenueByDay": revenue})
}
