package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnsphere/config"
	"learnsphere/delivery"
	"learnsphere/middleware"
	"learnsphere/repository"
	"learnsphere/service"
	"learnsphere/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	// ✅ Register custom validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	// Boot storage (memory, redis or postgres per STORAGE_DRIVER)
	store, redisClient, err := config.BootStorage()
	if err != nil {
		log.Fatal("❌ Failed to boot storage: ", err)
	}

	// JWT secret validation
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET not found in .env")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("❌ JWT_SECRET must be at least 32 characters for security. Generate one with: openssl rand -base64 32")
	}

	// Seed the demo catalog. "force" overwrites whatever is stored.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.SeedDemoData(ctx, store, os.Getenv("SEED_DEMO_DATA") == "force"); err != nil {
		cancel()
		log.Fatal("❌ Failed to seed demo data: ", err)
	}
	cancel()

	// Init repositories
	userRepo := repository.NewUserRepository(store)
	courseRepo := repository.NewCourseRepository(store)
	bundleRepo := repository.NewBundleRepository(store)
	reviewRepo := repository.NewReviewRepository(store)
	entitlementRepo := repository.NewEntitlementRepository(store)

	// Init services
	authService := service.NewAuthService(userRepo, jwtSecret)
	courseService := service.NewCourseService(courseRepo)
	bundleService := service.NewBundleService(bundleRepo)
	reviewService := service.NewReviewService(reviewRepo, courseRepo)
	entitlementService := service.NewEntitlementService(entitlementRepo, courseRepo, bundleRepo)

	// Rate limiter piggybacks on the redis client; without redis it is a
	// pass-through.
	limiter := middleware.NewRateLimiter(redisClient)

	// Init Gin
	app := gin.Default()
	config.InitMiddleware(app)

	// ========================================================================
	// INIT HANDLERS
	// ========================================================================
	jwtManager := authService.GetAccessTokenManager()
	delivery.NewAuthHandler(app, authService, limiter)
	delivery.NewCourseHandler(app, courseService, jwtManager)
	delivery.NewBundleHandler(app, bundleService, jwtManager)
	delivery.NewReviewHandler(app, reviewService, jwtManager)
	delivery.NewStudentHandler(app, entitlementService, jwtManager)

	// ========================================================================
	// GRACEFUL SHUTDOWN SETUP
	// ========================================================================
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	srvAddr := ":" + port

	srv := &http.Server{
		Addr:           srvAddr,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	// Start server in a goroutine
	go func() {
		log.Printf("🚀 Server running at http://localhost%s", srvAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
