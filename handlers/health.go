package handlers

import (
	"net/http"

	"fixora/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the latest datastore health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"services": utils.GetHealthStatus(),
	})
}
