package handlers

import (
	"net/http"

	"tourism/internal/domain/models"
	"tourism/internal/http/middleware"
	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/visits
func GetVisits(c *gin.Context) {
	list, err := services.VisitService{}.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "visit", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/visits
func CreateVisit(c *gin.Context) {
	var payload models.VisitPayload
	if !bindJSON(c, &payload) {
		return
	}

	svc := services.VisitService{RequestID: middleware.GetRequestID(c)}
	v, err := svc.Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "visit", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}
