package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"franchise-service/controllers"
	"franchise-service/database"
	"franchise-service/kafka"
	"franchise-service/logger"
	aws_pkg "franchise-service/pkg/aws"
	"franchise-service/repository"
	"franchise-service/routes"
	"franchise-service/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	// Database
	if err := database.Connect(cfg.DSN(), logger.Log); err != nil {
		logger.Log.Fatal("Database connection failed", zap.Error(err))
	}
	defer database.Close()

	redisClient := database.NewRedisClient(cfg.RedisURL)

	// Repositories
	orderRepo := repository.NewGormOrderRepository(database.DB)
	catalogRepo := repository.NewGormCatalogRepository(database.DB)
	inventoryRepo := repository.NewGormInventoryRepository(database.DB)
	invoiceRepo := repository.NewGormInvoiceRepository(database.DB)
	shipmentRepo := repository.NewGormShipmentRepository(database.DB)
	notificationRepo := repository.NewGormNotificationRepository(database.DB)

	// Messaging (both transports are optional in local dev)
	var snsClient aws_pkg.SNSPublisher
	var metricsClient *aws_pkg.MetricsClient
	awsCfg, awsErr := aws_pkg.LoadAWSConfig(context.Background())
	if awsErr != nil {
		logger.Log.Warn("AWS config unavailable, SNS/metrics disabled", zap.Error(awsErr))
	} else {
		snsClient = aws_pkg.NewSNSClient(awsCfg)
		if mc, err := aws_pkg.NewMetricsClient(context.Background()); err == nil {
			metricsClient = mc
		}
	}

	var producer kafka.ProducerAPI
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer p.Close()
		producer = p
	}

	// Services
	validation := services.NewValidationService(catalogRepo, inventoryRepo)
	invoices := services.NewInvoiceService(invoiceRepo, logger.Log)
	notifier := services.NewNotifier(snsClient, cfg.OrderSNSTopicARN, producer, logger.Log)
	idempotency := services.NewRedisIdempotencyStore(redisClient, 24*time.Hour)
	orderService := services.NewOrderService(
		orderRepo, catalogRepo, inventoryRepo, shipmentRepo,
		validation, invoices, notifier, idempotency, logger.Log,
	)
	recommendations := services.NewRecommendationService(inventoryRepo, redisClient, logger.Log)

	// Background consumer turning order events into in-app notifications
	if cfg.OrderEventsQueue != "" && awsErr == nil {
		consumer := services.NewSQSOrderEventsConsumer(
			aws_pkg.NewSQSConsumer(awsCfg, cfg.OrderEventsQueue),
			notificationRepo,
		)
		go consumer.Start(context.Background())
	}

	// Controllers
	orderController := controllers.NewOrderController(orderService, invoices)
	inventoryController := controllers.NewInventoryController(inventoryRepo, recommendations)
	catalogController := controllers.NewCatalogController(catalogRepo)
	notificationController := controllers.NewNotificationController(notificationRepo)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.Register(r, []byte(cfg.JWTSecret), metricsClient,
		orderController, inventoryController, catalogController, notificationController)

	logger.Log.Info("Starting franchise service", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed", zap.Error(err))
	}
}
