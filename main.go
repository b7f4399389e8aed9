package main

import (
	"log"

	"triviabank/config"
	"triviabank/handlers"
	"triviabank/middleware"
	"triviabank/models"
	"triviabank/repository"
	"triviabank/routes"
	"triviabank/seed"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Category{},
		&models.Question{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the starter fixture on first run
	if err := seed.Load(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Initialize repository and handlers
	repo := repository.NewGormRepository(db)
	categoryHandler := handlers.NewCategoryHandler(repo)
	questionHandler := handlers.NewQuestionHandler(repo)
	quizHandler := handlers.NewQuizHandler(repo)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, categoryHandler, questionHandler, quizHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
