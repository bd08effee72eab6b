package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/arjungibson/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlayHandler struct {
	triviaService *services.TriviaService
	playService   *services.PlayService
}

func NewPlayHandler(triviaService *services.TriviaService, playService *services.PlayService) *PlayHandler {
	return &PlayHandler{triviaService: triviaService, playService: playService}
}

// QuizRequest carries the seen-id list and the category scope. The scope's
// type field is either the literal "click" string (all categories) or an
// object holding an integer category id, so it stays raw until validated.
type QuizRequest struct {
	PreviousQuestions *[]uint       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type QuizCategory struct {
	Type json.RawMessage `json:"type"`
}

var jsonNull = []byte("null")

// PlayQuiz godoc
// @Summary      Pick the next quiz question
// @Description  Returns a random question from the scope that is not in previous_questions, or null once the pool is exhausted.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Seen ids and category scope"
// @Success      200 {object} map[string]interface{}
// @Failure      422 {object} ErrorEnvelope
// @Router       /api/v1/quizzes [post]
func (h *PlayHandler) PlayQuiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.unprocessable(c)
		return
	}

	if req.PreviousQuestions == nil {
		h.unprocessable(c)
		return
	}
	if req.QuizCategory == nil || req.QuizCategory.Type == nil || bytes.Equal(req.QuizCategory.Type, jsonNull) {
		h.unprocessable(c)
		return
	}

	categoryID, ok := h.resolveScope(req.QuizCategory.Type)
	if !ok {
		h.unprocessable(c)
		return
	}

	if categoryID != nil {
		if _, err := h.triviaService.GetCategory(*categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.unprocessable(c)
			} else {
				c.JSON(http.StatusInternalServerError, ErrorEnvelope{Status: http.StatusInternalServerError, Message: err.Error()})
			}
			return
		}
	}

	question, perPlay, err := h.playService.NextQuestion(categoryID, *req.PreviousQuestions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{Status: http.StatusInternalServerError, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question":           question,
		"questions_per_play": perPlay,
		"success":            true,
		"status":             http.StatusOK,
	})
}

// resolveScope turns the raw type value into an optional category id: nil
// for the all-categories sentinel, the id for an object carrying an integer
// id, and not-ok for everything else.
func (h *PlayHandler) resolveScope(raw json.RawMessage) (*uint, bool) {
	var sentinel string
	if err := json.Unmarshal(raw, &sentinel); err == nil {
		if sentinel != services.CategoryAll {
			return nil, false
		}
		return nil, true
	}

	var scope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &scope); err != nil {
		return nil, false
	}

	rawID, present := scope["id"]
	if !present {
		return nil, false
	}

	var num json.Number
	if err := json.Unmarshal(rawID, &num); err != nil {
		return nil, false
	}
	id, err := strconv.ParseUint(num.String(), 10, 64)
	if err != nil {
		return nil, false
	}

	categoryID := uint(id)
	return &categoryID, true
}

func (h *PlayHandler) unprocessable(c *gin.Context) {
	c.JSON(http.StatusUnprocessableEntity, ErrorEnvelope{
		Status:  http.StatusUnprocessableEntity,
		Message: unprocessableMessage,
	})
}
