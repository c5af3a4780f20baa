package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"handsup-market/internal/api/handlers"
	"handsup-market/internal/config"
	"handsup-market/internal/infrastructure/fcm"
	"handsup-market/internal/infrastructure/mysql"
	"handsup-market/internal/infrastructure/redis"
	"handsup-market/internal/services"
	"handsup-market/pkg/logger"
	"handsup-market/pkg/utils"

	redisClient "github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	log := logger.New()
	log.Info("Starting HandsUp marketplace API")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize Redis
	rdb := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	log.Info("Connected to Redis", "address", cfg.Redis.Address)

	// Initialize MySQL
	db := utils.InitializeMysql(ctx, cfg, log)
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.Error("Failed to close MySQL connection", "error", err)
		}
	}(db)
	log.Info("Connected to MySQL")

	// Initialize FCM
	messenger, err := fcm.NewMessenger(context.Background(), cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Error("Failed to initialize FCM messenger", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	auctionRepo := mysql.NewMySQLAuctionRepository(db)
	auctionQueryRepo := mysql.NewMySQLAuctionQueryRepository(db)
	notificationRepo := mysql.NewMySQLNotificationRepository(db)

	// Initialize Redis based components
	tokenStore := redis.NewRedisFCMTokenStore(rdb)
	pageCache := redis.NewRedisAuctionPageCache(rdb, cfg.Cache.AuctionPageTTL, log)

	// Initialize services
	searchService := services.NewSearchService(auctionQueryRepo, pageCache, log)
	notificationService := services.NewNotificationService(tokenStore, messenger, notificationRepo, log)
	statusUpdater := services.NewStatusUpdater(auctionQueryRepo, cfg.Jobs.StatusUpdateSchedule, log)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: `{"time":"${time_rfc3339}","id":"${id}","remote_ip":"${remote_ip}","host":"${host}","method":"${method}","uri":"${uri}","user_agent":"${user_agent}","status":${status},"error":"${error}","latency":${latency},"latency_human":"${latency_human}","bytes_in":${bytes_in},"bytes_out":${bytes_out}}` + "\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			echo.GET, echo.HEAD, echo.PUT, echo.PATCH,
			echo.POST, echo.DELETE, echo.OPTIONS,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
		MaxAge: 86400,
	}))

	// Initialize handlers
	auctionHandler := handlers.NewAuctionHandler(searchService, auctionRepo, log)
	notificationHandler := handlers.NewNotificationHandler(notificationService, auctionRepo, log)

	// API routes
	api := e.Group("/api/v1")
	auctionHandler.Register(api)
	notificationHandler.Register(api)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   "handsup-market",
			"timestamp": time.Now().Format(time.RFC3339),
			"port":      cfg.Server.Port,
		})
	})

	// Start the end-date status sweep
	if err := statusUpdater.Start(context.Background()); err != nil {
		log.Error("Failed to start status updater", "error", err)
		os.Exit(1)
	}

	// Start server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting HTTP server", "address", serverAddr)

	go func() {
		if err := e.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down HandsUp marketplace API...")

	// Graceful shutdown
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := statusUpdater.Stop(); err != nil {
		log.Error("Failed to stop status updater", "error", err)
	}

	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("HandsUp marketplace API stopped")
}
