package handlers

import (
	"net/http"

	"triviabank/repository"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	repo repository.Repository
}

func NewQuizHandler(repo repository.Repository) *QuizHandler {
	return &QuizHandler{repo: repo}
}

type QuizCategory struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// PlayQuizRequest uses pointers so "key present but empty" (a fresh game
// with no previous questions, or category id 0 meaning all categories)
// still passes the required check.
type PlayQuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
	PreviousQuestions *[]uint       `json:"previous_questions" binding:"required"`
}

// PlayQuiz picks one random question from the chosen category that the
// player has not seen yet. When every candidate has been played the
// response is still a success, with a null question.
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	question, err := h.repo.PickRandomQuestion(req.QuizCategory.ID, *req.PreviousQuestions)
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}
