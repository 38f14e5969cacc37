package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/calebwray/ideawell-backend/internal/handlers"
	"github.com/calebwray/ideawell-backend/internal/middleware"
)

type RouterConfig struct {
	CORSOrigins []string

	AuthMiddleware *middleware.AuthMiddleware

	AuthHandler      *handlers.AuthHandler
	UserHandler      *handlers.UserHandler
	BootstrapHandler *handlers.BootstrapHandler
	IdeaHandler      *handlers.IdeaHandler
	TaxonomyHandler  *handlers.TaxonomyHandler
	TagHandler       *handlers.TagHandler
	QuickLinkHandler *handlers.QuickLinkHandler
	NoteHandler      *handlers.NoteHandler
	TemplateHandler  *handlers.TemplateHandler
	NoteColorHandler *handlers.NoteColorHandler
	FileHandler      *handlers.FileHandler
	SparkHandler     *handlers.SparkHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)
	router.POST("/password-reset/request", cfg.AuthHandler.RequestPasswordReset)
	router.POST("/password-reset/redeem", cfg.AuthHandler.RedeemPasswordReset)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)

	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.PUT("/user/password", cfg.UserHandler.UpdatePassword)

	// Bootstrap
	protected.GET("/bootstrap", cfg.BootstrapHandler.Load)

	// Ideas
	protected.GET("/ideas", cfg.IdeaHandler.List)
	protected.POST("/ideas", cfg.IdeaHandler.Create)
	protected.GET("/ideas/:id", cfg.IdeaHandler.Get)
	protected.PATCH("/ideas/:id", cfg.IdeaHandler.Update)
	protected.DELETE("/ideas/:id", cfg.IdeaHandler.Delete)
	protected.POST("/ideas/:id/archive", cfg.IdeaHandler.Archive)
	protected.POST("/ideas/:id/restore", cfg.IdeaHandler.Restore)
	protected.POST("/ideas/:id/recycle", cfg.IdeaHandler.Recycle)
	protected.POST("/ideas/:id/duplicate", cfg.IdeaHandler.Duplicate)
	protected.GET("/ideas/:id/tags", cfg.IdeaHandler.GetTags)
	protected.PUT("/ideas/:id/tags", cfg.IdeaHandler.ReplaceTags)

	// Idea files
	protected.GET("/ideas/:id/files", cfg.FileHandler.ListByIdea)
	protected.POST("/ideas/:id/files", cfg.FileHandler.Upload)
	protected.DELETE("/files/:id", cfg.FileHandler.Delete)

	// Taxonomy
	protected.GET("/content-types", cfg.TaxonomyHandler.ListContentTypes)
	protected.POST("/content-types", cfg.TaxonomyHandler.CreateContentType)
	protected.PATCH("/content-types/:id", cfg.TaxonomyHandler.UpdateContentType)
	protected.DELETE("/content-types/:id", cfg.TaxonomyHandler.DeleteContentType)
	protected.GET("/platforms", cfg.TaxonomyHandler.ListPlatforms)
	protected.POST("/platforms", cfg.TaxonomyHandler.CreatePlatform)
	protected.PATCH("/platforms/:id", cfg.TaxonomyHandler.UpdatePlatform)
	protected.DELETE("/platforms/:id", cfg.TaxonomyHandler.DeletePlatform)

	// Tags
	protected.GET("/tags", cfg.TagHandler.List)
	protected.POST("/tags", cfg.TagHandler.Create)
	protected.PATCH("/tags/:id", cfg.TagHandler.Update)
	protected.DELETE("/tags/:id", cfg.TagHandler.Delete)

	// Quicklinks
	protected.GET("/quicklinks", cfg.QuickLinkHandler.List)
	protected.POST("/quicklinks", cfg.QuickLinkHandler.Create)
	protected.PATCH("/quicklinks/:id", cfg.QuickLinkHandler.Update)
	protected.DELETE("/quicklinks/:id", cfg.QuickLinkHandler.Delete)

	// Notes
	protected.GET("/notes", cfg.NoteHandler.List)
	protected.POST("/notes", cfg.NoteHandler.Create)
	protected.PATCH("/notes/:id", cfg.NoteHandler.Update)
	protected.DELETE("/notes/:id", cfg.NoteHandler.Delete)

	// Templates
	protected.GET("/templates", cfg.TemplateHandler.List)
	protected.POST("/templates", cfg.TemplateHandler.Create)
	protected.PATCH("/templates/:id", cfg.TemplateHandler.Update)
	protected.DELETE("/templates/:id", cfg.TemplateHandler.Delete)

	// Note colors
	protected.GET("/note-colors", cfg.NoteColorHandler.List)
	protected.POST("/note-colors", cfg.NoteColorHandler.Create)
	protected.PATCH("/note-colors/:id", cfg.NoteColorHandler.Update)
	protected.DELETE("/note-colors/:id", cfg.NoteColorHandler.Delete)

	// Spark
	protected.POST("/spark", cfg.SparkHandler.Generate)

	return router
}
