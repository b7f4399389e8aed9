package repository

import (
	"math/rand"
	"strings"

	"triviabank/models"

	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListQuestions(offset, limit int) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *GormRepository) CountQuestions() (int64, error) {
	var count int64
	err := r.db.Model(&models.Question{}).Count(&count).Error
	return count, err
}

func (r *GormRepository) FindQuestionByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *GormRepository) InsertQuestion(q *models.Question) error {
	return r.db.Create(q).Error
}

func (r *GormRepository) DeleteQuestion(id uint) error {
	return r.db.Delete(&models.Question{}, id).Error
}

func (r *GormRepository) SearchQuestions(term string) ([]models.Question, error) {
	questions := []models.Question{}
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.Where("LOWER(question) LIKE ?", pattern).Order("id").Find(&questions).Error
	return questions, err
}

func (r *GormRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("id").Find(&categories).Error
	return categories, err
}

func (r *GormRepository) FindCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListQuestionsByCategory always returns a non-nil slice so handlers
// serialize an empty category as [] rather than null.
func (r *GormRepository) ListQuestionsByCategory(categoryID uint) ([]models.Question, error) {
	questions := []models.Question{}
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	return questions, err
}

func (r *GormRepository) PickRandomQuestion(categoryID uint, excludeIDs []uint) (*models.Question, error) {
	query := r.db.Model(&models.Question{})
	if categoryID > 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var candidates []models.Question
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return &candidates[rand.Intn(len(candidates))], nil
}
