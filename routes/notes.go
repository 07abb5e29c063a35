package routes

import (
	"net/http"

	"notelist-app/notelist/database"
	"notelist-app/notelist/services"

	"github.com/gin-gonic/gin"
)

func RegisterNoteRoutes(group *gin.RouterGroup, db *database.Database, noteService services.NoteServiceInterface) {
	// Listing takes a filter object, hence POST.
	group.POST("/notes/:notebook_id", func(c *gin.Context) { ListNotes(c, db, noteService) })

	group.POST("/note", func(c *gin.Context) { CreateNote(c, db, noteService) })
	group.PUT("/note", func(c *gin.Context) { CreateNote(c, db, noteService) })

	group.GET("/note/:id", func(c *gin.Context) { GetNoteById(c, db, noteService) })
	group.PUT("/note/:id", func(c *gin.Context) { UpdateNote(c, db, noteService) })
	group.DELETE("/note/:id", func(c *gin.Context) { DeleteNote(c, db, noteService) })
}

func ListNotes(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	filter, ok := bindObject(c, true)
	if !ok {
		return
	}

	notes, err := noteService.ListNotes(db, userID, c.Param("notebook_id"), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func CreateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	noteData, ok := bindObject(c, false)
	if !ok {
		return
	}

	note, err := noteService.CreateNote(db, userID, noteData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": note.ID})
}

func GetNoteById(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	note, err := noteService.GetNoteById(db, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func UpdateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	noteData, ok := bindObject(c, false)
	if !ok {
		return
	}

	note, err := noteService.UpdateNote(db, userID, c.Param("id"), noteData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": note.ID})
}

func DeleteNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := noteService.DeleteNote(db, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
