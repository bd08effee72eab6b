package services

import (
	"errors"

	"github.com/arjungibson/trivia-api/internal/models"

	"gorm.io/gorm"
)

const QuestionsPerPage = 10

var ErrPageOutOfRange = errors.New("page out of range")

type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

func (s *TriviaService) ListCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := s.db.Order("id ASC").Find(&categories).Error
	return categories, err
}

func (s *TriviaService) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListQuestions returns one fixed-size page of questions in id order plus
// the total count. Pages past the last one fail with ErrPageOutOfRange,
// except page 1, which always succeeds even on an empty store.
func (s *TriviaService) ListQuestions(page int) ([]models.Question, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	pages := (total + QuestionsPerPage - 1) / QuestionsPerPage
	if int64(page) > pages && page > 1 {
		return nil, 0, ErrPageOutOfRange
	}

	questions := make([]models.Question, 0)
	err := s.db.Order("id ASC").
		Limit(QuestionsPerPage).
		Offset((page - 1) * QuestionsPerPage).
		Find(&questions).Error
	return questions, total, err
}

func (s *TriviaService) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := s.db.Where("category_id = ?", categoryID).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (s *TriviaService) GetQuestion(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// CreateQuestion inserts whatever fields the caller supplied. Nil fields
// become NULL and any constraint violation comes back as the store's error.
func (s *TriviaService) CreateQuestion(question *models.Question) error {
	return s.db.Create(question).Error
}

func (s *TriviaService) DeleteQuestion(question *models.Question) error {
	return s.db.Delete(question).Error
}

// SearchQuestions does a case-insensitive substring match against the
// question text. The term is used as-is, wildcards included.
func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := s.db.Where("LOWER(question) LIKE LOWER(?)", "%"+term+"%").
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}
