package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/domain/valueobjects"
	httphandlers "github.com/placasafe/placasafe-backend/internal/handlers/http"
	"github.com/placasafe/placasafe-backend/internal/handlers/middleware"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/config"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/i18n"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/logging"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/notification"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/persistence/gormstore"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/ratelimit"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/token"
	"github.com/placasafe/placasafe-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting placasafe backend", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Banco de dados
	db, err := gormstore.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// i18n com os locales embutidos
	i18nService, err := i18n.NewService("pt-BR")
	if err != nil {
		log.Fatalf("Failed to initialize i18n: %v", err)
	}

	// Repositórios
	userRepo := gormstore.NewUserRepository(db)
	plateRepo := gormstore.NewPlateRepository(db)
	configRepo := gormstore.NewConfigRepository(db)
	windowRepo := gormstore.NewWindowRepository(db)
	uow := gormstore.NewUnitOfWork(db)

	// Hub de notificações em tempo real
	hub := notification.NewHub(logger)
	go hub.Run(ctx)

	// Com Redis configurado os eventos passam pelo pub/sub, mantendo
	// múltiplas instâncias sincronizadas
	var notifier ports.Notifier = hub
	if cfg.Redis.URL != "" {
		bridge, err := notification.NewRedisBridge(cfg.Redis.URL, cfg.Redis.Channel, hub, logger)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer bridge.Close()
		go bridge.Run(ctx)
		notifier = bridge
	}

	// Autenticação
	issuer := token.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Serviços
	authService := services.NewAuthService(userRepo, issuer, logger)
	userService := services.NewUserService(userRepo, plateRepo, uow, notifier, logger)
	plateService := services.NewPlateService(plateRepo, userRepo, configRepo, windowRepo, notifier, logger)
	configService := services.NewConfigService(configRepo, logger)
	windowService := services.NewWindowService(windowRepo, logger)

	if cfg.Seed.DefaultUsers {
		if err := services.SeedDefaultUsers(ctx, userRepo, uow, logger); err != nil {
			log.Fatalf("Failed to seed default users: %v", err)
		}
	}

	// Rate limit do login, por IP
	loginLimiter := ratelimit.NewStore(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst)
	go loginLimiter.Run(ctx)

	router := setupRouter(cfg, logger, i18nService, issuer, loginLimiter, hub,
		authService, userService, plateService, configService, windowService)

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func setupRouter(
	cfg *config.Config,
	logger ports.Logger,
	i18nService *i18n.Service,
	issuer ports.TokenIssuer,
	loginLimiter *ratelimit.Store,
	hub *notification.Hub,
	authService *services.AuthService,
	userService *services.UserService,
	plateService *services.PlateService,
	configService *services.ConfigService,
	windowService *services.WindowService,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registerPlateValidator()

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	authMiddleware := middleware.NewAuthMiddleware(issuer)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(loginLimiter)

	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)
	plateHandler := httphandlers.NewPlateHandler(plateService)
	configHandler := httphandlers.NewConfigHandler(configService)
	windowHandler := httphandlers.NewWindowHandler(windowService)
	wsHandler := httphandlers.NewWSHandler(hub, issuer, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ws", wsHandler.Serve)

	api := router.Group("/api")
	{
		api.POST("/login", rateLimitMiddleware.Limit(), authHandler.Login)

		authenticated := api.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.GET("/plates", plateHandler.ListPlates)
			authenticated.GET("/stats", plateHandler.Stats)
			authenticated.GET("/config", configHandler.GetConfig)
			authenticated.GET("/windows", windowHandler.ListWindows)

			authenticated.POST("/mark-plate",
				authMiddleware.RequireRoles(entities.RoleTransportadora),
				plateHandler.MarkPlate)

			authenticated.DELETE("/plates/:plateId",
				authMiddleware.RequireRoles(entities.RoleAdmin, entities.RoleTransportadora),
				plateHandler.DeletePlate)

			portaria := authenticated.Group("")
			portaria.Use(authMiddleware.RequireRoles(entities.RolePortaria, entities.RoleAdmin))
			{
				portaria.POST("/confirm-arrival/:plateId", plateHandler.ConfirmArrival)
				portaria.POST("/confirm-departure/:plateId", plateHandler.ConfirmDeparture)
			}

			admin := authenticated.Group("")
			admin.Use(authMiddleware.RequireRoles(entities.RoleAdmin))
			{
				admin.POST("/users", userHandler.CreateUser)
				admin.GET("/users", userHandler.ListUsers)
				admin.GET("/users/:id", userHandler.GetUser)
				admin.PUT("/users/:id", userHandler.UpdateUser)
				admin.PUT("/users/:id/password", userHandler.UpdatePassword)
				admin.DELETE("/users/:id", userHandler.DeleteUser)

				admin.PUT("/config", configHandler.UpdateConfig)

				admin.POST("/windows", windowHandler.CreateWindow)
				admin.PUT("/windows/:windowId", windowHandler.UpdateWindow)
				admin.DELETE("/windows/:windowId", windowHandler.DeleteWindow)
			}
		}
	}

	return router
}

// registerPlateValidator registra a tag de binding "placa" no
// validator do Gin
func registerPlateValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("placa", func(fl validator.FieldLevel) bool {
			return valueobjects.IsValidPlateFormat(fl.Field().String())
		})
	}
}
