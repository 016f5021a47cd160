package handlers

import (
	"context"
	"net/http"
	"time"

	intconfig "tourism/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "tourism backend running"})
}

// DBCheck pings the shared pool.
func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database is not connected")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := intconfig.DB.PingContext(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database ping failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
