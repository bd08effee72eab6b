package handlers

import (
	"math/rand"
	"net/http"

	"github.com/arjungibson/trivia-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter assembles the engine: CORS, recovery and no-route envelopes,
// swagger UI and the API routes. rng seeds the quiz selector and may be nil
// outside tests.
func NewRouter(db *gorm.DB, rng *rand.Rand) *gin.Engine {
	triviaService := services.NewTriviaService(db)
	playService := services.NewPlayService(db, rng)

	categoryHandler := NewCategoryHandler(triviaService)
	questionHandler := NewQuestionHandler(triviaService)
	playHandler := NewPlayHandler(triviaService, playService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorEnvelope{
			Status:  http.StatusInternalServerError,
			Message: "internal server error",
		})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorEnvelope{
			Status:  http.StatusNotFound,
			Message: "The requested URL was not found on the server.",
		})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/:id/questions", categoryHandler.QuestionsByCategory)

		api.GET("/questions", questionHandler.ListQuestions)
		api.POST("/questions", questionHandler.CreateQuestion)
		api.DELETE("/questions/:id", questionHandler.DeleteQuestion)
		api.POST("/questions/search", questionHandler.SearchQuestions)

		api.POST("/quizzes", playHandler.PlayQuiz)
	}

	return r
}
