package handlers

import (
	"net/http"

	"tourism/internal/domain/models"
	"tourism/internal/http/middleware"
	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/tourists
func GetTourists(c *gin.Context) {
	list, err := services.TouristService{}.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "tourist", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/tourists
func CreateTourist(c *gin.Context) {
	var payload models.TouristPayload
	if !bindJSON(c, &payload) {
		return
	}

	svc := services.TouristService{RequestID: middleware.GetRequestID(c)}
	t, err := svc.Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "tourist", err)
		return
	}
	c.JSON(http.StatusCreated, t)
}
