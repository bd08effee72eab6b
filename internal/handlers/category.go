package handlers

import (
	"net/http"
	"strconv"

	"github.com/arjungibson/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	triviaService *services.TriviaService
}

func NewCategoryHandler(triviaService *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{triviaService: triviaService}
}

// ListCategories godoc
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.triviaService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{Status: http.StatusInternalServerError, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"success":    true,
	})
}

// QuestionsByCategory godoc
// @Summary      List all questions in one category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorEnvelope
// @Router       /api/v1/categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorEnvelope{
			Status:  http.StatusNotFound,
			Message: "The category specified in the URL doesn't exist. Please resubmit with a correct category id.",
		})
		return
	}

	if _, err := h.triviaService.GetCategory(uint(categoryID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"category_id": categoryID,
			"success":     false,
			"status":      http.StatusNotFound,
			"message":     "The category specified in the URL doesn't exist. Please resubmit with a correct category id.",
		})
		return
	}

	questions, err := h.triviaService.QuestionsByCategory(uint(categoryID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{Status: http.StatusInternalServerError, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": categoryID,
		"success":          true,
	})
}
