package handlers

import (
	"net/http"

	"tourism/web"

	"github.com/gin-gonic/gin"
)

// Index serves the single page that hosts the wasm client.
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}
