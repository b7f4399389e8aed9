package routes

import (
	"net/http"

	"triviabank/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	categoryHandler *handlers.CategoryHandler,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
) {
	// Versioned API routes; the path prefix is part of the frontend contract
	api := router.Group("/api/v1.0")
	{
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id/questions", categoryHandler.GetQuestionsByCategory)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.GetQuestions)
			questions.POST("", questionHandler.CreateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
			questions.POST("/search", questionHandler.SearchQuestions)
		}

		api.POST("/quizzes", quizHandler.PlayQuiz)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
