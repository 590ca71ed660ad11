package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mkn-console/internal/client/ai"
	"mkn-console/internal/client/images"
	"mkn-console/internal/client/mail"
	"mkn-console/internal/config"
	"mkn-console/internal/handler"
	"mkn-console/internal/infrastructure/database"
	"mkn-console/internal/logger"
	"mkn-console/internal/metrics"
	"mkn-console/internal/middleware"
	"mkn-console/internal/permission"
	"mkn-console/internal/repository"
	"mkn-console/internal/service"
	"mkn-console/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	postRepo := repository.NewPostgresPostRepository(pool)
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	companyRepo := repository.NewPostgresCompanyRepository(pool)
	socialRepo := repository.NewPostgresSocialPostRepository(pool)
	sessionRepo := repository.NewPostgresSessionRepository(pool)

	// Initialize outbound clients
	mailClient := mail.NewClient(cfg.MailGatewayURL, cfg.MailGatewayKey, cfg.ClientTimeout)
	aiClient := ai.NewClient(cfg.AIProviderURL, cfg.AIProviderKey, cfg.ClientTimeout)
	imageClient := images.NewClient(cfg.ImageSearchURL, cfg.ImageSearchKey, cfg.ClientTimeout)

	// Initialize services
	v := validator.NewValidator()
	contentService := service.NewContentService(postRepo, categoryRepo, v)
	companyService := service.NewCompanyService(companyRepo, v)
	composerService := service.NewComposerService(socialRepo, aiClient, v)
	overviewService := service.NewOverviewService(postRepo, categoryRepo, companyRepo)

	// Initialize handlers
	postHandler := handler.NewPostHandler(contentService)
	categoryHandler := handler.NewCategoryHandler(contentService)
	companyHandler := handler.NewCompanyHandler(companyService)
	composerHandler := handler.NewComposerHandler(composerService)
	mailboxHandler := handler.NewMailboxHandler(mailClient)
	mediaHandler := handler.NewMediaHandler(imageClient)
	overviewHandler := handler.NewOverviewHandler(overviewService)
	healthHandler := handler.NewHealthHandler(pool, version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes: every route requires a resolved session, each route
	// additionally requires its permission key
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Session(sessionRepo))
	{
		v1.GET("/overview", overviewHandler.Overview)

		posts := v1.Group("/posts")
		{
			posts.GET("", middleware.RequirePermission(permission.KeyBlogRead), postHandler.ListPosts)
			posts.GET("/stats", middleware.RequirePermission(permission.KeyBlogRead), postHandler.PostStats)
			posts.GET("/slug/:slug", middleware.RequirePermission(permission.KeyBlogRead), postHandler.GetPostBySlug)
			posts.GET("/:id", middleware.RequirePermission(permission.KeyBlogRead), postHandler.GetPost)
			posts.GET("/:id/related", middleware.RequirePermission(permission.KeyBlogRead), postHandler.RelatedPosts)
			posts.POST("", middleware.RequirePermission(permission.KeyBlogWrite), postHandler.CreatePost)
			posts.PUT("/:id", middleware.RequirePermission(permission.KeyBlogWrite), postHandler.UpdatePost)
			posts.DELETE("/:id", middleware.RequirePermission(permission.KeyBlogDelete), postHandler.DeletePost)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", middleware.RequirePermission(permission.KeyBlogRead), categoryHandler.ListCategories)
			categories.POST("", middleware.RequirePermission(permission.KeyBlogWrite), categoryHandler.CreateCategory)
			categories.PUT("/:id", middleware.RequirePermission(permission.KeyBlogWrite), categoryHandler.UpdateCategory)
			categories.DELETE("/:id", middleware.RequirePermission(permission.KeyBlogDelete), categoryHandler.DeleteCategory)
		}

		companies := v1.Group("/companies")
		{
			companies.GET("", middleware.RequirePermission(permission.KeyCompaniesRead), companyHandler.ListCompanies)
			companies.GET("/stats", middleware.RequirePermission(permission.KeyCompaniesRead), companyHandler.CompanyStats)
			companies.GET("/:id", middleware.RequirePermission(permission.KeyCompaniesRead), companyHandler.GetCompany)
			companies.POST("", middleware.RequirePermission(permission.KeyCompaniesWrite), companyHandler.CreateCompany)
			companies.PUT("/:id", middleware.RequirePermission(permission.KeyCompaniesWrite), companyHandler.UpdateCompany)
			companies.DELETE("/:id", middleware.RequirePermission(permission.KeyCompaniesDel), companyHandler.DeleteCompany)
		}

		social := v1.Group("/social-posts")
		{
			social.GET("", middleware.RequirePermission(permission.KeySocialRead), composerHandler.ListSocialPosts)
			social.GET("/:id", middleware.RequirePermission(permission.KeySocialRead), composerHandler.GetSocialPost)
			social.GET("/:id/budgets", middleware.RequirePermission(permission.KeySocialRead), composerHandler.Budgets)
			social.POST("", middleware.RequirePermission(permission.KeySocialWrite), composerHandler.CreateSocialPost)
			social.PUT("/:id", middleware.RequirePermission(permission.KeySocialWrite), composerHandler.UpdateSocialPost)
			social.POST("/:id/generate", middleware.RequirePermission(permission.KeySocialWrite), composerHandler.GeneratePlatform)
			social.POST("/:id/generate-all", middleware.RequirePermission(permission.KeySocialWrite), composerHandler.GenerateAll)
			social.DELETE("/:id", middleware.RequirePermission(permission.KeySocialDelete), composerHandler.DeleteSocialPost)
		}
		v1.GET("/platforms", middleware.RequirePermission(permission.KeySocialRead), composerHandler.ListPlatforms)

		mailbox := v1.Group("/mailbox/:account")
		{
			mailbox.GET("/folders", middleware.RequirePermission(permission.KeyOutlookRead), mailboxHandler.ListFolders)
			mailbox.GET("/folders/:folderId/messages", middleware.RequirePermission(permission.KeyOutlookRead), mailboxHandler.ListMessages)
			mailbox.GET("/messages/:messageId", middleware.RequirePermission(permission.KeyOutlookRead), mailboxHandler.GetMessage)
			mailbox.GET("/messages/:messageId/attachments/:attachmentId", middleware.RequirePermission(permission.KeyOutlookRead), mailboxHandler.DownloadAttachment)
			mailbox.POST("/messages", middleware.RequirePermission(permission.KeyOutlookSend), mailboxHandler.SendMessage)
			mailbox.POST("/messages/:messageId/reply", middleware.RequirePermission(permission.KeyOutlookSend), mailboxHandler.ReplyMessage)
			mailbox.POST("/messages/:messageId/move", middleware.RequirePermission(permission.KeyOutlookWrite), mailboxHandler.MoveMessage)
			mailbox.POST("/messages/:messageId/read", middleware.RequirePermission(permission.KeyOutlookWrite), mailboxHandler.MarkRead)
			mailbox.DELETE("/messages/:messageId", middleware.RequirePermission(permission.KeyOutlookDelete), mailboxHandler.DeleteMessage)
		}

		v1.GET("/images/search", middleware.RequirePermission(permission.KeyMediaRead), mediaHandler.SearchImages)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
