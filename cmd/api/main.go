package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/reconlens/reconlens-api/internal/config"
	"github.com/reconlens/reconlens-api/internal/database"
	"github.com/reconlens/reconlens-api/internal/handlers"
	"github.com/reconlens/reconlens-api/internal/middleware"
	"github.com/reconlens/reconlens-api/internal/services"
	"github.com/reconlens/reconlens-api/internal/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	pool, err := database.Connect(cfg.DatabaseURL, cfg.DBMaxConnections, cfg.DBConnectionTimeout)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	log.Println("✓ Connected to database successfully")

	store := database.NewStore(pool)
	if err := store.Init(context.Background()); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	// Initialize services
	// Storage service for S3 operations
	storageService, err := services.NewStorageService(cfg.S3Bucket, cfg.S3Region, cfg.AWSEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize storage service: %v", err)
	}
	log.Println("✓ Storage service initialized successfully")

	// Parser service for CSV/XLSX decoding
	parser := services.NewParser()
	log.Println("✓ Parser service initialized successfully")

	// File validator service
	validator := services.NewFileValidator(int64(cfg.MaxUploadSizeMB) * 1024 * 1024)
	log.Println("✓ File validator service initialized successfully")

	// In-memory dataset store, warmed from the persisted collections
	dataStore := services.NewDataStore()
	persisted, err := store.LoadAll(context.Background())
	if err != nil {
		log.Fatalf("Failed to load persisted datasets: %v", err)
	}
	dataStore.SeedFromMap(persisted)
	log.Printf("✓ Data store warmed with %d persisted collections", len(persisted))

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(storageService, parser, validator, dataStore, store)
	datasetsHandler := handlers.NewDatasetsHandler(dataStore, store)
	reconHandler := handlers.NewReconciliationHandler(dataStore)
	dashboardHandler := handlers.NewDashboardHandler(dataStore)

	app := fiber.New(fiber.Config{
		AppName:      "reconlens API v1.0",
		ErrorHandler: utils.ErrorHandler,
	})

	// Apply global middleware
	app.Use(middleware.CORS())

	// Health check endpoint (public)
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "reconlens-api",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Public routes
	v1.Get("/ping", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	// Protected routes (require authentication)
	protected := v1.Group("", middleware.ClerkAuth(cfg.ClerkSecretKey))

	// Upload routes
	protected.Get("/upload/presigned-url", uploadHandler.GetPresignedURL)
	protected.Post("/upload/process", uploadHandler.ProcessUpload)

	// Dataset routes
	protected.Get("/datasets/months", datasetsHandler.GetMonths)
	protected.Post("/datasets/clear", datasetsHandler.ClearDatasets)
	protected.Get("/datasets/:type", datasetsHandler.GetDataset)

	// Reconciliation views
	protected.Get("/reconciliation/enriched-sales", reconHandler.GetEnrichedSales)
	protected.Get("/reconciliation/sale-purchase", reconHandler.GetSalePurchaseChecks)
	protected.Get("/reconciliation/sale-payment", reconHandler.GetSalePaymentChecks)
	protected.Get("/reconciliation/sale-return", reconHandler.GetSaleReturnChecks)

	// Dashboard metrics
	protected.Get("/dashboard/metrics", dashboardHandler.GetMetrics)

	log.Println("✓ All routes configured successfully")
	log.Println("")
	log.Printf("🚀 reconlens API is running on :%d", cfg.Port)
	log.Printf("   Health check: http://localhost:%d/health", cfg.Port)
	log.Printf("   API base: http://localhost:%d/v1", cfg.Port)

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
