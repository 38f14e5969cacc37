package main

import (
	"fmt"
	"os"
	"time"

	"github.com/calebwray/ideawell-backend/internal/config"
	"github.com/calebwray/ideawell-backend/internal/db"
	"github.com/calebwray/ideawell-backend/internal/handlers"
	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/middleware"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/server"
	"github.com/calebwray/ideawell-backend/internal/services"
	"github.com/calebwray/ideawell-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	port := utils.GetEnv("PORT", "8080", log)

	// Config
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"), log)
	if err != nil {
		log.Error("Could not load config", "error", err)
		os.Exit(1)
	}

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(theDB, log)
	userTokenRepo := repos.NewUserTokenRepo(theDB, log)
	resetTokenRepo := repos.NewPasswordResetTokenRepo(theDB, log)
	ideaRepo := repos.NewIdeaRepo(theDB, log)
	ideaTagRepo := repos.NewIdeaTagRepo(theDB, log)
	contentTypeRepo := repos.NewContentTypeRepo(theDB, log)
	platformRepo := repos.NewPlatformRepo(theDB, log)
	tagRepo := repos.NewTagRepo(theDB, log)
	quickLinkRepo := repos.NewQuickLinkRepo(theDB, log)
	noteRepo := repos.NewSystemNoteRepo(theDB, log)
	fileRepo := repos.NewIdeaFileRepo(theDB, log)
	templateRepo := repos.NewContentTemplateRepo(theDB, log)
	noteColorRepo := repos.NewNoteColorRepo(theDB, log)
	sparkLogRepo := repos.NewSparkCallLogRepo(theDB, log)
	deliveryRepo := repos.NewWebhookDeliveryRepo(theDB, log)

	// Services
	log.Info("Setting up services from main...")
	bucketService, err := services.NewBucketService(log)
	if err != nil {
		log.Error("Could not init BucketService", "error", err)
		os.Exit(1)
	}
	avatarService, err := services.NewAvatarService(log, bucketService)
	if err != nil {
		log.Error("Could not init AvatarService", "error", err)
		os.Exit(1)
	}
	chatClient, err := services.NewChatClient(log)
	if err != nil {
		log.Error("Could not init ChatClient", "error", err)
		os.Exit(1)
	}
	sparkLimiter := services.NewSparkLimiter(log)
	webhookSink := services.NewWebhookSink(cfg.Webhook, log, deliveryRepo)

	taxonomyService := services.NewTaxonomyService(theDB, log, contentTypeRepo, platformRepo)
	authService := services.NewAuthService(
		theDB,
		log,
		userRepo,
		userTokenRepo,
		resetTokenRepo,
		avatarService,
		taxonomyService,
		jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second,
		time.Duration(refreshTokenTTL)*time.Second,
	)
	userService := services.NewUserService(theDB, log, userRepo, resetTokenRepo)
	ideaService := services.NewIdeaService(theDB, log, ideaRepo, ideaTagRepo, webhookSink)
	tagService := services.NewTagService(theDB, log, tagRepo)
	quickLinkService := services.NewQuickLinkService(theDB, log, quickLinkRepo)
	noteService := services.NewNoteService(theDB, log, noteRepo, webhookSink)
	templateService := services.NewTemplateService(theDB, log, templateRepo)
	noteColorService := services.NewNoteColorService(theDB, log, noteColorRepo)
	fileService := services.NewFileService(theDB, log, ideaRepo, fileRepo, bucketService)
	sparkService := services.NewSparkService(theDB, log, chatClient, sparkLimiter, sparkLogRepo)
	bootstrapService := services.NewBootstrapService(
		theDB,
		log,
		ideaRepo,
		ideaTagRepo,
		contentTypeRepo,
		platformRepo,
		tagRepo,
		quickLinkRepo,
		noteRepo,
		templateRepo,
		noteColorRepo,
	)

	// Handlers
	log.Info("Setting up handlers from main...")
	routerCfg := server.RouterConfig{
		CORSOrigins:      cfg.CORSOrigins,
		AuthMiddleware:   middleware.NewAuthMiddleware(log, authService),
		AuthHandler:      handlers.NewAuthHandler(authService),
		UserHandler:      handlers.NewUserHandler(userService),
		BootstrapHandler: handlers.NewBootstrapHandler(bootstrapService),
		IdeaHandler:      handlers.NewIdeaHandler(ideaService),
		TaxonomyHandler:  handlers.NewTaxonomyHandler(taxonomyService),
		TagHandler:       handlers.NewTagHandler(tagService),
		QuickLinkHandler: handlers.NewQuickLinkHandler(quickLinkService),
		NoteHandler:      handlers.NewNoteHandler(noteService),
		TemplateHandler:  handlers.NewTemplateHandler(templateService),
		NoteColorHandler: handlers.NewNoteColorHandler(noteColorService),
		FileHandler:      handlers.NewFileHandler(fileService),
		SparkHandler:     handlers.NewSparkHandler(sparkService),
	}

	router := server.NewRouter(routerCfg)
	log.Info("Starting server...", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
