package api

import (
	stdhttp "net/http"

	intconfig "tourism/internal/config"
	h "tourism/internal/http/handlers"
	"tourism/internal/http/middleware"
	"tourism/internal/utils"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/", h.Index)
	if env.StaticDir != "" {
		r.Static("/static", env.StaticDir)
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/stats", h.GetStats)
		api.GET("/dashboard", h.GetDashboard)

		tourists := api.Group("/tourists")
		tourists.GET("", h.GetTourists)
		tourists.POST("", h.CreateTourist)

		destinations := api.Group("/destinations")
		destinations.GET("", h.GetDestinations)
		destinations.POST("", h.CreateDestination)

		visits := api.Group("/visits")
		visits.GET("", h.GetVisits)
		visits.POST("", h.CreateVisit)
	}

	return r
}
