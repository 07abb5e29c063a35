package routes

import (
	"notelist-app/notelist/database"
	"notelist-app/notelist/middleware"
	"notelist-app/notelist/services"

	"github.com/gin-gonic/gin"
)

// Services groups the services the HTTP API is built on.
type Services struct {
	Auth     services.AuthServiceInterface
	User     services.UserServiceInterface
	Notebook services.NotebookServiceInterface
	Tag      services.TagServiceInterface
	Note     services.NoteServiceInterface
	Search   services.SearchServiceInterface
}

// NewRouter builds the engine serving /api/v1. Everything except health,
// registration and login requires a bearer token.
func NewRouter(db *database.Database, allowedOrigins string, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	api := router.Group("/api/v1")
	RegisterHealthRoutes(api, db)
	RegisterAuthRoutes(api, db, svc.Auth, svc.User)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(svc.Auth))
	{
		RegisterUserRoutes(protected, db, svc.User)
		RegisterNotebookRoutes(protected, db, svc.Notebook)
		RegisterTagRoutes(protected, db, svc.Tag)
		RegisterNoteRoutes(protected, db, svc.Note)
		RegisterSearchRoutes(protected, db, svc.Search)
	}

	return router
}
