package services

import (
	"math/rand"
	"time"

	"github.com/arjungibson/trivia-api/internal/models"

	"gorm.io/gorm"
)

// CategoryAll is the scope marker the game client sends for an unfiltered
// quiz across every category.
const CategoryAll = "click"

const maxQuestionsPerPlay = 5

type PlayService struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewPlayService builds the quiz selector. rng may be nil, in which case a
// time-seeded generator is used; tests pass a fixed seed.
func NewPlayService(db *gorm.DB, rng *rand.Rand) *PlayService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PlayService{db: db, rng: rng}
}

// NextQuestion picks a uniformly random question from the scope that is not
// in previous. A nil categoryID means the full pool. The returned count is
// min(5, pool size) taken before filtering out seen ids, so it stays constant
// for a scope across a whole play-through. A nil question with a nil error
// means the pool is exhausted.
func (s *PlayService) NextQuestion(categoryID *uint, previous []uint) (*models.Question, int, error) {
	query := s.db.Model(&models.Question{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var ids []uint
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, 0, err
	}

	perPlay := len(ids)
	if perPlay > maxQuestionsPerPlay {
		perPlay = maxQuestionsPerPlay
	}

	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	remaining := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			remaining = append(remaining, id)
		}
	}

	if len(remaining) == 0 {
		return nil, perPlay, nil
	}

	var question models.Question
	pick := remaining[s.rng.Intn(len(remaining))]
	if err := s.db.First(&question, pick).Error; err != nil {
		return nil, 0, err
	}
	return &question, perPlay, nil
}
