package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"contabilito/internal/api"        // Custom package for API handlers
	"contabilito/internal/config"     // Custom package for configuration
	"contabilito/internal/middleware" // Custom package for middleware
	"contabilito/internal/service"    // Registration and auth services
	"contabilito/internal/store"      // Credential store

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the store and provision the schema
	st, err := store.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	defer st.Close() // Release the connection pool on shutdown
	if err := st.EnsureSchema(); err != nil {
		logrus.Fatalf("failed to provision schema: %v", err) // Fatal error if provisioning fails
	}

	// Setup Redis client, optional when no address is configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Services over the shared store
	registration := service.NewRegistration(st, cfg.RequireTerms) // Registration coordinator
	auth := service.NewAuth(st)                                   // Authenticator

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/register", api.RegisterHandler(registration))  // Registration endpoint
	r.POST("/login", api.LoginHandler(auth, cfg.JWTSecret)) // Login endpoint

	// Company routes (protected by JWT, scoped by membership)
	companies := r.Group("/companies/:companyID")
	companies.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.CompanyMemberMiddleware(st))
	companies.GET("/dashboard", api.DashboardHandler(st, redisClient))          // Dashboard summary endpoint
	companies.POST("/accounts", api.CreateAccountHandler(st, redisClient))      // Create account endpoint
	companies.POST("/transactions", api.RecordTransactionHandler(st, redisClient)) // Record transaction endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
