package routes

import (
	"net/http"

	"notelist-app/notelist/database"
	"notelist-app/notelist/services"

	"github.com/gin-gonic/gin"
)

func RegisterNotebookRoutes(group *gin.RouterGroup, db *database.Database, notebookService services.NotebookServiceInterface) {
	group.GET("/notebooks", func(c *gin.Context) { GetNotebooks(c, db, notebookService) })
	group.POST("/notebook", func(c *gin.Context) { CreateNotebook(c, db, notebookService) })

	group.GET("/notebook/:id", func(c *gin.Context) { GetNotebookById(c, db, notebookService) })
	group.PUT("/notebook/:id", func(c *gin.Context) { UpdateNotebook(c, db, notebookService) })
	group.DELETE("/notebook/:id", func(c *gin.Context) { DeleteNotebook(c, db, notebookService) })
}

func GetNotebooks(c *gin.Context, db *database.Database, notebookService services.NotebookServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notebooks, err := notebookService.ListNotebooksByUser(db, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notebooks)
}

func CreateNotebook(c *gin.Context, db *database.Database, notebookService services.NotebookServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	notebookData, ok := bindObject(c, false)
	if !ok {
		return
	}

	notebook, err := notebookService.CreateNotebook(db, userID, notebookData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notebook)
}

func GetNotebookById(c *gin.Context, db *database.Database, notebookService services.NotebookServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notebook, err := notebookService.GetNotebookById(db, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notebook)
}

func UpdateNotebook(c *gin.Context, db *database.Database, notebookService services.NotebookServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	notebookData, ok := bindObject(c, false)
	if !ok {
		return
	}

	notebook, err := notebookService.UpdateNotebook(db, userID, c.Param("id"), notebookData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notebook)
}

func DeleteNotebook(c *gin.Context, db *database.Database, notebookService services.NotebookServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := notebookService.DeleteNotebook(db, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
