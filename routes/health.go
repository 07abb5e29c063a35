package routes

import (
	"net/http"

	"notelist-app/notelist/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterHealthRoutes(group *gin.RouterGroup, db *database.Database) {
	group.GET("/health", func(c *gin.Context) { Health(c, db) })
}

func Health(c *gin.Context, db *database.Database) {
	if err := db.Ping(); err != nil {
		zap.L().Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
