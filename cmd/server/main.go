package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/AJCrest412/proxima-be/internal/application/identity"
	salesapp "github.com/AJCrest412/proxima-be/internal/application/sales"
	"github.com/AJCrest412/proxima-be/internal/infrastructure/auth"
	"github.com/AJCrest412/proxima-be/internal/infrastructure/config"
	"github.com/AJCrest412/proxima-be/internal/infrastructure/logger"
	"github.com/AJCrest412/proxima-be/internal/infrastructure/persistence"
	"github.com/AJCrest412/proxima-be/internal/interfaces/http/handler"
	"github.com/AJCrest412/proxima-be/internal/interfaces/http/middleware"
	"github.com/AJCrest412/proxima-be/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	clientService := salesapp.NewClientService(clientRepo)
	saleService := salesapp.NewSaleService(saleRepo, clientRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	saleHandler := handler.NewSaleHandler(saleService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))

	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuth(jwtService))

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.GET("/me", authHandler.Me)
	r.Register(authRoutes)

	clientRoutes := router.NewDomainGroup("clients", "/clients")
	clientRoutes.POST("", clientHandler.Create)
	clientRoutes.GET("", clientHandler.List)
	clientRoutes.GET("/:id", clientHandler.Get)
	clientRoutes.PUT("/:id", clientHandler.Update)
	clientRoutes.PATCH("/:id", clientHandler.Update)
	clientRoutes.DELETE("/:id", clientHandler.Delete)
	r.Register(clientRoutes)

	saleRoutes := router.NewDomainGroup("sales", "/sales")
	saleRoutes.POST("", saleHandler.Create)
	saleRoutes.GET("", saleHandler.List)
	saleRoutes.GET("/:id", saleHandler.Get)
	saleRoutes.PUT("/:id", saleHandler.Update)
	saleRoutes.DELETE("/:id", saleHandler.Delete)
	saleRoutes.PUT("/:id/update-with-client", saleHandler.Update)
	saleRoutes.PATCH("/:id/update-with-client", saleHandler.Update)
	saleRoutes.POST("/:id/confirm", saleHandler.Confirm)
	saleRoutes.POST("/:id/cancel", saleHandler.Cancel)
	saleRoutes.POST("/:id/add-items", saleHandler.AddItems)
	saleRoutes.POST("/:id/remove-items", saleHandler.RemoveItems)
	r.Register(saleRoutes)

	saleItemRoutes := router.NewDomainGroup("sale-items", "/sale-items")
	saleItemRoutes.GET("", saleHandler.ListItems)
	r.Register(saleItemRoutes)

	choicesRoutes := router.NewDomainGroup("choices", "/choices")
	choicesRoutes.GET("", saleHandler.Choices)
	r.Register(choicesRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.FromGin(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
