package main

import (
	"log"

	"clubhub/config"
	"clubhub/database"
	adminRoutes "clubhub/routers/adminRoutes"
	authRoutes "clubhub/routers/authRoutes"
	contentRoutes "clubhub/routers/contentRoutes"
	courseRoutes "clubhub/routers/courseRoutes"
	progressRoutes "clubhub/routers/progressRoutes"
	setupRoutes "clubhub/routers/setupRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CORSOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	setupRoutes.SetupSetupRoutes(app, db)
	authRoutes.SetupAuthRoutes(app, db)
	adminRoutes.SetupAdminRoutes(app, db)
	courseRoutes.SetupCourseRoutes(app, db)
	courseRoutes.SetupAdminCourseRoutes(app, db)
	contentRoutes.SetupContentRoutes(app, db)
	contentRoutes.SetupAdminContentRoutes(app, db)
	progressRoutes.SetupProgressRoutes(app, db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
