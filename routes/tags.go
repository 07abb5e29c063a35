package routes

import (
	"net/http"

	"notelist-app/notelist/database"
	"notelist-app/notelist/services"

	"github.com/gin-gonic/gin"
)

func RegisterTagRoutes(group *gin.RouterGroup, db *database.Database, tagService services.TagServiceInterface) {
	group.GET("/tags/:notebook_id", func(c *gin.Context) { GetTags(c, db, tagService) })
	group.POST("/tag", func(c *gin.Context) { CreateTag(c, db, tagService) })

	group.GET("/tag/:id", func(c *gin.Context) { GetTagById(c, db, tagService) })
	group.PUT("/tag/:id", func(c *gin.Context) { UpdateTag(c, db, tagService) })
	group.DELETE("/tag/:id", func(c *gin.Context) { DeleteTag(c, db, tagService) })
}

func GetTags(c *gin.Context, db *database.Database, tagService services.TagServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tags, err := tagService.ListTags(db, userID, c.Param("notebook_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func CreateTag(c *gin.Context, db *database.Database, tagService services.TagServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tagData, ok := bindObject(c, false)
	if !ok {
		return
	}

	tag, err := tagService.CreateTag(db, userID, tagData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func GetTagById(c *gin.Context, db *database.Database, tagService services.TagServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tag, err := tagService.GetTagById(db, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func UpdateTag(c *gin.Context, db *database.Database, tagService services.TagServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tagData, ok := bindObject(c, false)
	if !ok {
		return
	}

	tag, err := tagService.UpdateTag(db, userID, c.Param("id"), tagData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func DeleteTag(c *gin.Context, db *database.Database, tagService services.TagServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := tagService.DeleteTag(db, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
