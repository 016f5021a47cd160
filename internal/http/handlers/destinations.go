package handlers

import (
	"net/http"

	"tourism/internal/domain/models"
	"tourism/internal/http/middleware"
	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/destinations
func GetDestinations(c *gin.Context) {
	list, err := services.DestinationService{}.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "destination", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/destinations
func CreateDestination(c *gin.Context) {
	var payload models.DestinationPayload
	if !bindJSON(c, &payload) {
		return
	}

	svc := services.DestinationService{RequestID: middleware.GetRequestID(c)}
	d, err := svc.Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "destination", err)
		return
	}
	c.JSON(http.StatusCreated, d)
}
