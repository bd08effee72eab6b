package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arjungibson/trivia-api/internal/models"
	"github.com/arjungibson/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionHandler struct {
	triviaService *services.TriviaService
}

func NewQuestionHandler(triviaService *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{triviaService: triviaService}
}

// CreateQuestionRequest mirrors the insert columns. Every field is optional;
// omitted ones insert NULL and the store decides whether that flies.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	CategoryID *uint   `json:"category_id"`
	Difficulty *int    `json:"difficulty"`
}

type SearchRequest struct {
	SearchTerm *string `json:"search_term"`
}

// ListQuestions godoc
// @Summary      List questions, ten per page
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorEnvelope
// @Router       /api/v1/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}

	questions, total, err := h.triviaService.ListQuestions(page)
	if errors.Is(err, services.ErrPageOutOfRange) {
		c.JSON(http.StatusNotFound, ErrorEnvelope{
			Status:  http.StatusNotFound,
			Message: "The page requested is beyond the number of available pages.",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{Status: http.StatusInternalServerError, Message: err.Error()})
		return
	}

	categories, err := h.triviaService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{Status: http.StatusInternalServerError, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":        questions,
		"categories":       categories,
		"current_category": nil,
		"success":          true,
		"total_questions":  total,
	})
}

// CreateQuestion godoc
// @Summary      Add a question
// @Description  Inserts whatever fields are present; the request body is echoed back either way.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} ErrorEnvelope
// @Failure      422 {object} map[string]interface{}
// @Router       /api/v1/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}

	question := models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: req.CategoryID,
		Difficulty: req.Difficulty,
	}

	if err := h.triviaService.CreateQuestion(&question); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"question_input": req,
			"success":        false,
			"status":         http.StatusUnprocessableEntity,
			"message":        err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"question_input": req,
		"success":        true,
		"status":         http.StatusCreated,
		"message":        "The question was added to the database",
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Param        id path int true "Question ID"
// @Success      204 "deleted"
// @Failure      404 {object} ErrorEnvelope
// @Failure      422 {object} ErrorEnvelope
// @Router       /api/v1/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorEnvelope{
			Status:  http.StatusNotFound,
			Message: "The question specified in the URL doesn't exist. Please resubmit with a correct question id",
		})
		return
	}

	question, err := h.triviaService.GetQuestion(uint(questionID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"question_id": questionID,
			"success":     false,
			"status":      http.StatusNotFound,
			"message":     "The question specified in the URL doesn't exist. Please resubmit with a correct question id",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{Status: http.StatusInternalServerError, Message: err.Error()})
		return
	}

	if err := h.triviaService.DeleteQuestion(question); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"question_id": questionID,
			"success":     false,
			"status":      http.StatusUnprocessableEntity,
			"message":     err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchQuestions godoc
// @Summary      Search question text
// @Description  Case-insensitive substring match across all questions.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search term"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorEnvelope
// @Router       /api/v1/questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SearchTerm == nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{
			Status:  http.StatusBadRequest,
			Message: "The search_term field is required.",
		})
		return
	}

	questions, err := h.triviaService.SearchQuestions(*req.SearchTerm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{Status: http.StatusInternalServerError, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": nil,
		"status":           http.StatusOK,
	})
}
