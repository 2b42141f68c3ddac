package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todolist/internal/handlers"
	"todolist/internal/middleware"
	"todolist/internal/models"
	"todolist/internal/repositories"
	"todolist/internal/services"
	"todolist/pkg/rabbitmq"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// An unset signing secret would make every issued token forgeable.
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set and non-empty")
	}

	// --- Initialize Repositories ---
	// With DATABASE_URL set the stores run on PostgreSQL; without it the
	// process falls back to in-memory repositories for local runs.
	var (
		userRepo repositories.UserRepository
		taskRepo repositories.TaskRepository
		listRepo repositories.ListRepository
	)
	if databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(
			&models.User{},
			&models.Task{},
			&models.List{},
			&models.ListMembership{},
		); err != nil {
			log.Fatalf("Failed to migrate database schema: %v", err)
		}
		userRepo = repositories.NewGORMUserRepository(db)
		taskRepo = repositories.NewGORMTaskRepository(db)
		listRepo = repositories.NewGORMListRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory repositories")
		userRepo = repositories.NewMockUserRepository()
		taskRepo = repositories.NewMockTaskRepository()
		listRepo = repositories.NewMockListRepository()
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
	}

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	var publisher services.TaskEventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	taskService := services.NewTaskService(taskRepo, publisher)
	listService := services.NewListService(listRepo)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	listHandler := handlers.NewListHandler(listService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New())   // CORS enabled for all origins

	// --- Health Check Endpoint ---
	// Registered before the protected group so it stays public.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- API Routes ---
	// Public routes
	authHandler.RegisterRoutes(app)

	// Protected routes (require JWT authentication)
	protected := app.Group("", middleware.AuthRequired(authService))
	taskHandler.RegisterRoutes(protected)
	listHandler.RegisterRoutes(protected)

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// The consumer logs task lifecycle events published by the task service.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for task events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received task event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeTaskEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	// RabbitMQ connection close is handled by defer in main
	log.Println("Server gracefully stopped")
}
