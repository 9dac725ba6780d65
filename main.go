package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"petshop/internal/config"
	"petshop/internal/handlers"
	"petshop/internal/logger"
	"petshop/internal/models"
	"petshop/internal/repositories"
	"petshop/internal/seed"
	"petshop/internal/services"
	"petshop/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := openDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	if err := db.AutoMigrate(&models.Pet{}, &models.Order{}, &models.OrderItem{}); err != nil {
		zapLogger.Fatal("migrating database", zap.Error(err))
	}
	zapLogger.Info("database connected", zap.String("driver", cfg.Database.Driver))

	// Repositories
	petRepo := repositories.NewGORMPetRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	// Idempotent sample-data seed: only an empty inventory is populated.
	seeded, err := seed.Pets(petRepo)
	if err != nil {
		zapLogger.Fatal("seeding inventory", zap.Error(err))
	}
	if seeded > 0 {
		zapLogger.Info("seeded sample inventory", zap.Int("pets", seeded))
	}

	// RabbitMQ is optional; without a broker URL order events are skipped.
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			zapLogger.Fatal("connecting to RabbitMQ", zap.Error(err))
		}
		defer mqClient.Close()
		zapLogger.Info("RabbitMQ connected")

		if err := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
			zapLogger.Info("order event received", zap.ByteString("body", msg.Body))
			return nil
		}); err != nil {
			zapLogger.Warn("starting order event consumer", zap.Error(err))
		}
	}

	// Services
	inventoryService := services.NewInventoryService(petRepo)
	orderService := services.NewOrderService(orderRepo, petRepo, mqClient, cfg.ReleaseOnCancel, zapLogger)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	petHandler := handlers.NewPetHandler(inventoryService, zapLogger)
	orderHandler := handlers.NewOrderHandler(orderService, zapLogger)

	app := fiber.New()
	app.Use(fiberlogger.New())

	healthHandler.RegisterRoutes(app)
	petHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zapLogger.Info("starting server", zap.String("port", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zapLogger.Error("error during shutdown", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{})
	}
}
