package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"triviabank/models"
	"triviabank/repository"
	"triviabank/seed"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (*repository.GormRepository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := seed.Load(db); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return repository.NewGormRepository(db), db
}

func TestListQuestionsPagination(t *testing.T) {
	repo, _ := setupRepo(t)

	total, err := repo.CountQuestions()
	if err != nil {
		t.Fatalf("CountQuestions: %v", err)
	}

	var seen []uint
	for offset := 0; offset < int(total); offset += 10 {
		page, err := repo.ListQuestions(offset, 10)
		if err != nil {
			t.Fatalf("ListQuestions(%d, 10): %v", offset, err)
		}
		if len(page) > 10 {
			t.Errorf("page at offset %d has %d questions", offset, len(page))
		}
		for _, q := range page {
			seen = append(seen, q.ID)
		}
	}
	if int64(len(seen)) != total {
		t.Errorf("walked %d questions, count says %d", len(seen), total)
	}

	// Stable id ordering means pages never overlap.
	for i := 1; i < len(seen); i++ {
		if seen[i] <= seen[i-1] {
			t.Errorf("ids out of order at %d: %d then %d", i, seen[i-1], seen[i])
		}
	}

	empty, err := repo.ListQuestions(int(total), 10)
	if err != nil {
		t.Fatalf("ListQuestions past end: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty slice past the end, got %d", len(empty))
	}
}

func TestInsertAndDeleteQuestion(t *testing.T) {
	repo, _ := setupRepo(t)

	before, _ := repo.CountQuestions()
	q := models.Question{Question: "What planet is known as the Red Planet?", Answer: "Mars", Category: 1, Difficulty: 1}
	if err := repo.InsertQuestion(&q); err != nil {
		t.Fatalf("InsertQuestion: %v", err)
	}
	if q.ID == 0 {
		t.Fatal("expected a fresh id after insert")
	}

	after, _ := repo.CountQuestions()
	if after != before+1 {
		t.Errorf("expected count %d after insert, got %d", before+1, after)
	}

	found, err := repo.FindQuestionByID(q.ID)
	if err != nil {
		t.Fatalf("FindQuestionByID: %v", err)
	}
	if found.Answer != "Mars" {
		t.Errorf("expected answer Mars, got %q", found.Answer)
	}

	if err := repo.DeleteQuestion(q.ID); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}
	if _, err := repo.FindQuestionByID(q.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound after delete, got %v", err)
	}
}

func TestFindCategoryByIDNotFound(t *testing.T) {
	repo, _ := setupRepo(t)

	if _, err := repo.FindCategoryByID(100); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSearchQuestionsCaseInsensitive(t *testing.T) {
	repo, _ := setupRepo(t)

	for _, term := range []string{"Taj Mahal", "taj mahal", "TAJ MAHAL"} {
		results, err := repo.SearchQuestions(term)
		if err != nil {
			t.Fatalf("SearchQuestions(%q): %v", term, err)
		}
		if len(results) != 1 {
			t.Errorf("SearchQuestions(%q): expected 1 result, got %d", term, len(results))
		}
	}

	none, err := repo.SearchQuestions("xyzzy")
	if err != nil {
		t.Fatalf("SearchQuestions: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected a non-nil empty slice, got %#v", none)
	}
}

func TestListQuestionsByCategory(t *testing.T) {
	repo, _ := setupRepo(t)

	questions, err := repo.ListQuestionsByCategory(6)
	if err != nil {
		t.Fatalf("ListQuestionsByCategory: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("expected seeded sports questions")
	}
	for _, q := range questions {
		if q.Category != 6 {
			t.Errorf("question %d has category %d, want 6", q.ID, q.Category)
		}
	}
}

func TestPickRandomQuestionRespectsFilters(t *testing.T) {
	repo, db := setupRepo(t)

	var art []models.Question
	if err := db.Where("category = ?", 2).Find(&art).Error; err != nil {
		t.Fatalf("failed to list art questions: %v", err)
	}
	exclude := []uint{art[0].ID, art[1].ID}

	// Random pick, so exercise it repeatedly.
	for i := 0; i < 50; i++ {
		q, err := repo.PickRandomQuestion(2, exclude)
		if err != nil {
			t.Fatalf("PickRandomQuestion: %v", err)
		}
		if q == nil {
			t.Fatal("expected a candidate while some remain")
		}
		if q.Category != 2 {
			t.Errorf("picked question %d from category %d, want 2", q.ID, q.Category)
		}
		for _, ex := range exclude {
			if q.ID == ex {
				t.Errorf("picked excluded question %d", q.ID)
			}
		}
	}
}

func TestPickRandomQuestionExhausted(t *testing.T) {
	repo, db := setupRepo(t)

	var science []models.Question
	if err := db.Where("category = ?", 1).Find(&science).Error; err != nil {
		t.Fatalf("failed to list science questions: %v", err)
	}
	exclude := make([]uint, 0, len(science))
	for _, q := range science {
		exclude = append(exclude, q.ID)
	}

	q, err := repo.PickRandomQuestion(1, exclude)
	if err != nil {
		t.Fatalf("PickRandomQuestion: %v", err)
	}
	if q != nil {
		t.Errorf("expected nil when all candidates are excluded, got %+v", q)
	}
}

func TestPickRandomQuestionAllCategories(t *testing.T) {
	repo, _ := setupRepo(t)

	picked := make(map[uint]bool)
	for i := 0; i < 100; i++ {
		q, err := repo.PickRandomQuestion(0, nil)
		if err != nil {
			t.Fatalf("PickRandomQuestion: %v", err)
		}
		if q == nil {
			t.Fatal("expected a question from the full bank")
		}
		picked[q.Category] = true
	}
	// With 100 draws over 19 questions the picks should span categories.
	if len(picked) < 2 {
		t.Errorf("expected picks from more than one category, got %d", len(picked))
	}
}
