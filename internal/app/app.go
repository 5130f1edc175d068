package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "reviewdb/internal/controller/http"
	"reviewdb/internal/entity"
	"reviewdb/internal/repo/persistent"
	"reviewdb/internal/usecase"
	"reviewdb/pkg/cache"
	"reviewdb/pkg/config"
	"reviewdb/pkg/database"
	"reviewdb/pkg/jwt"
	"reviewdb/pkg/logger"
	"reviewdb/pkg/middleware"
	"reviewdb/pkg/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "reviewdb/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without email queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	categoryRepo := persistent.NewCategoryRepository(a.db)
	genreRepo := persistent.NewGenreRepository(a.db)
	titleRepo := persistent.NewTitleRepository(a.db)
	reviewRepo := persistent.NewReviewRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)

	ratings := usecase.NewRatingCache(a.redisClient)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.queueClient, a.cfg.EmailSender, a.log)
	userUseCase := usecase.NewUserUseCase(userRepo, a.log)
	taxonomyUseCase := usecase.NewTaxonomyUseCase(categoryRepo, genreRepo, a.log)
	titleUseCase := usecase.NewTitleUseCase(titleRepo, categoryRepo, genreRepo, ratings, a.log)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, titleRepo, ratings, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, reviewRepo, a.log)

	// HTTP handlers
	authHandler := httpapi.NewAuthHandler(authUseCase)
	userHandler := httpapi.NewUserHandler(userUseCase)
	taxonomyHandler := httpapi.NewTaxonomyHandler(taxonomyUseCase)
	titleHandler := httpapi.NewTitleHandler(titleUseCase)
	reviewHandler := httpapi.NewReviewHandler(reviewUseCase)
	commentHandler := httpapi.NewCommentHandler(commentUseCase)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.AuthMiddleware(a.jwtService)
	adminOnly := httpapi.RequireRole(entity.RoleAdmin)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", middleware.RateLimitMiddleware(a.redisClient, 10, time.Minute), authHandler.Signup)
			auth.POST("/token", authHandler.Token)
		}

		users := api.Group("/users", authRequired)
		{
			users.GET("/me", userHandler.Me)
			users.PATCH("/me", userHandler.PatchMe)

			admin := users.Group("", adminOnly)
			{
				admin.GET("", userHandler.List)
				admin.POST("", userHandler.Create)
				admin.GET("/:username", userHandler.Get)
				admin.PATCH("/:username", userHandler.Patch)
				admin.DELETE("/:username", userHandler.Delete)
			}
		}

		categories := api.Group("/categories")
		{
			categories.GET("", taxonomyHandler.ListCategories)
			categories.GET("/:slug", taxonomyHandler.GetCategory)
			categories.POST("", authRequired, adminOnly, taxonomyHandler.CreateCategory)
			categories.DELETE("/:slug", authRequired, adminOnly, taxonomyHandler.DeleteCategory)
		}

		genres := api.Group("/genres")
		{
			genres.GET("", taxonomyHandler.ListGenres)
			genres.GET("/:slug", taxonomyHandler.GetGenre)
			genres.POST("", authRequired, adminOnly, taxonomyHandler.CreateGenre)
			genres.DELETE("/:slug", authRequired, adminOnly, taxonomyHandler.DeleteGenre)
		}

		titles := api.Group("/titles")
		{
			titles.GET("", titleHandler.List)
			titles.GET("/:title_id", titleHandler.Get)
			titles.POST("", authRequired, adminOnly, titleHandler.Create)
			titles.PATCH("/:title_id", authRequired, adminOnly, titleHandler.Patch)
			titles.DELETE("/:title_id", authRequired, adminOnly, titleHandler.Delete)

			reviews := titles.Group("/:title_id/reviews")
			{
				reviews.GET("", reviewHandler.List)
				reviews.GET("/:review_id", reviewHandler.Get)
				reviews.POST("", authRequired, reviewHandler.Create)
				reviews.PATCH("/:review_id", authRequired, reviewHandler.Patch)
				reviews.DELETE("/:review_id", authRequired, reviewHandler.Delete)

				comments := reviews.Group("/:review_id/comments")
				{
					comments.GET("", commentHandler.List)
					comments.GET("/:comment_id", commentHandler.Get)
					comments.POST("", authRequired, commentHandler.Create)
					comments.PATCH("/:comment_id", authRequired, commentHandler.Patch)
					comments.DELETE("/:comment_id", authRequired, commentHandler.Delete)
				}
			}
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("reviewdb API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down reviewdb API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("reviewdb API exited")
	return nil
}
