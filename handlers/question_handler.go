package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"triviabank/models"
	"triviabank/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// QuestionsPerPage is the fixed page size for GET /questions.
const QuestionsPerPage = 10

type QuestionHandler struct {
	repo repository.Repository
}

func NewQuestionHandler(repo repository.Repository) *QuestionHandler {
	return &QuestionHandler{repo: repo}
}

type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	Category   uint   `json:"category" binding:"required"`
	Difficulty int    `json:"difficulty" binding:"required,min=1,max=5"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"search_term"`
}

// GetQuestions returns one fixed-size page of questions plus the category
// map and the total row count. A page past the end of the data is a 404.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(c, http.StatusBadRequest)
			return
		}
		page = parsed
	}

	questions, err := h.repo.ListQuestions((page-1)*QuestionsPerPage, QuestionsPerPage)
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}
	if len(questions) == 0 {
		respondError(c, http.StatusNotFound)
		return
	}

	total, err := h.repo.CountQuestions()
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	categories, err := h.repo.ListCategories()
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}
	categoriesMap := make(map[uint]string, len(categories))
	for _, cat := range categories {
		categoriesMap[cat.ID] = cat.Type
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       questions,
		"total_questions": total,
		"categories":      categoriesMap,
	})
}

// CreateQuestion inserts a new question. Binding failures are 400; an
// insert the store rejects (e.g. unknown category) is 422.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	if _, err := h.repo.FindCategoryByID(req.Category); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusUnprocessableEntity)
		} else {
			respondError(c, http.StatusInternalServerError)
		}
		return
	}

	question := models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := h.repo.InsertQuestion(&question); err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteQuestion removes a question by id.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	question, err := h.repo.FindQuestionByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound)
		} else {
			respondError(c, http.StatusInternalServerError)
		}
		return
	}

	if err := h.repo.DeleteQuestion(question.ID); err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      question.ID,
	})
}

// SearchQuestions returns every question whose text contains search_term,
// case-insensitively. An empty term matches everything.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	questions, err := h.repo.SearchQuestions(req.SearchTerm)
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       questions,
		"total_questions": len(questions),
	})
}
