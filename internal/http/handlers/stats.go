package handlers

import (
	"net/http"

	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/stats
func GetStats(c *gin.Context) {
	s, err := services.StatsService{}.Summary(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "stats", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// GET /api/dashboard
func GetDashboard(c *gin.Context) {
	d, err := services.StatsService{}.Dashboard(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, d)
}
