package main

import (
	"log"
	"os"

	"timo-intelligence-be/internal/controller"
	"timo-intelligence-be/internal/entity"
	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/internal/pkg/serverutils"
	"timo-intelligence-be/internal/repository/implementation"
	"timo-intelligence-be/internal/service"
	"timo-intelligence-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

// The content API is the durable side of the persistence pair: a small
// Postgres-backed service holding the live document plus its history.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	dsn := os.Getenv("CONTENT_DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("CONTENT_DB_CONNECTION_STRING is required")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(&entity.ContentRecord{}, &entity.ContentHistory{}); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	sysLogger := logger.NewZapLogger(getEnv("LOG_FILE_PATH", "contentapi.log"), os.Getenv("GO_ENV") == "production")

	repo := implementation.NewContentRepository(gormDB)
	storeService := service.NewContentStoreService(repo, sysLogger)
	storeController := controller.NewContentStoreController(storeService)

	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024,
	})
	app.Use(cors.New())
	app.Use(serverutils.ErrorHandlerMiddleware())

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	storeController.RegisterRoutes(api)

	port := getEnv("CONTENT_API_PORT", "3100")
	log.Printf("✅ Content API is running on http://localhost:%s", port)
	log.Fatal(app.Listen(":" + port))
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
