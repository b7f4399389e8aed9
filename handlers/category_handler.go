package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"triviabank/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	repo repository.Repository
}

func NewCategoryHandler(repo repository.Repository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// GetCategories returns every category as an {id: type} map.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
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
		"success":          true,
		"categories":       categoriesMap,
		"total_categories": len(categories),
	})
}

// GetQuestionsByCategory returns all questions belonging to one category.
func (h *CategoryHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	category, err := h.repo.FindCategoryByID(uint(categoryID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound)
		} else {
			respondError(c, http.StatusInternalServerError)
		}
		return
	}

	questions, err := h.repo.ListQuestionsByCategory(category.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": category.Type,
	})
}
