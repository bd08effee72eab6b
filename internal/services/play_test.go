package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuestionNeverRepeatsSeen(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayService(db, rand.New(rand.NewSource(1)))

	cat := addCategory(t, db, "Science")
	ids := make([]uint, 0, 4)
	for i := 0; i < 4; i++ {
		ids = append(ids, addQuestion(t, db, "question", "answer", cat.ID).ID)
	}

	// Play through like a client: feed every returned id back as seen.
	seen := make([]uint, 0, len(ids))
	for i := 0; i < len(ids); i++ {
		q, _, err := svc.NextQuestion(&cat.ID, seen)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.NotContains(t, seen, q.ID)
		seen = append(seen, q.ID)
	}

	q, _, err := svc.NextQuestion(&cat.ID, seen)
	require.NoError(t, err)
	assert.Nil(t, q)
	assert.ElementsMatch(t, ids, seen)
}

func TestQuestionsPerPlayFromUnfilteredPool(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayService(db, rand.New(rand.NewSource(1)))

	cat := addCategory(t, db, "History")
	seen := make([]uint, 0, 6)
	for i := 0; i < 7; i++ {
		q := addQuestion(t, db, "question", "answer", cat.ID)
		if i < 6 {
			seen = append(seen, q.ID)
		}
	}

	// Capped at 5 and derived from the pool size, not the remaining count.
	_, perPlay, err := svc.NextQuestion(&cat.ID, seen)
	require.NoError(t, err)
	assert.Equal(t, 5, perPlay)
}

func TestQuestionsPerPlaySmallPool(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayService(db, rand.New(rand.NewSource(1)))

	cat := addCategory(t, db, "Art")
	q1 := addQuestion(t, db, "question", "answer", cat.ID)
	q2 := addQuestion(t, db, "question", "answer", cat.ID)

	question, perPlay, err := svc.NextQuestion(&cat.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, 2, perPlay)

	question, perPlay, err = svc.NextQuestion(&cat.ID, []uint{q1.ID, q2.ID})
	require.NoError(t, err)
	assert.Nil(t, question)
	assert.Equal(t, 2, perPlay)
}

func TestNextQuestionScopedToCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayService(db, rand.New(rand.NewSource(1)))

	science := addCategory(t, db, "Science")
	art := addCategory(t, db, "Art")
	inScope := addQuestion(t, db, "scoped", "answer", science.ID)
	addQuestion(t, db, "other", "answer", art.ID)

	for i := 0; i < 10; i++ {
		q, perPlay, err := svc.NextQuestion(&science.ID, nil)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, inScope.ID, q.ID)
		assert.Equal(t, 1, perPlay)
	}
}

func TestNextQuestionAllCategoriesScope(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayService(db, rand.New(rand.NewSource(3)))

	science := addCategory(t, db, "Science")
	art := addCategory(t, db, "Art")
	q1 := addQuestion(t, db, "one", "answer", science.ID)
	q2 := addQuestion(t, db, "two", "answer", art.ID)

	q, perPlay, err := svc.NextQuestion(nil, []uint{q1.ID})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, q2.ID, q.ID)
	assert.Equal(t, 2, perPlay)
}
