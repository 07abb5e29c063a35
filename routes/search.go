package routes

import (
	"net/http"

	"notelist-app/notelist/database"
	"notelist-app/notelist/services"

	"github.com/gin-gonic/gin"
)

func RegisterSearchRoutes(group *gin.RouterGroup, db *database.Database, searchService services.SearchServiceInterface) {
	group.GET("/search/:text", func(c *gin.Context) { Search(c, db, searchService) })
}

func Search(c *gin.Context, db *database.Database, searchService services.SearchServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := searchService.Search(db, userID, c.Param("text"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
