package repository

import "triviabank/models"

// Repository abstracts the question-bank store so handlers never touch
// the ORM directly.
type Repository interface {
	ListQuestions(offset, limit int) ([]models.Question, error)
	CountQuestions() (int64, error)
	FindQuestionByID(id uint) (*models.Question, error)
	InsertQuestion(q *models.Question) error
	DeleteQuestion(id uint) error
	SearchQuestions(term string) ([]models.Question, error)
	ListCategories() ([]models.Category, error)
	FindCategoryByID(id uint) (*models.Category, error)
	ListQuestionsByCategory(categoryID uint) ([]models.Question, error)
	// PickRandomQuestion returns one question chosen uniformly at random
	// from the category (all categories when categoryID is 0), skipping
	// excludeIDs. Returns (nil, nil) when no candidate remains.
	PickRandomQuestion(categoryID uint, excludeIDs []uint) (*models.Question, error)
}
