package main

import (
	"log"

	"github.com/arjungibson/trivia-api/internal/config"
	"github.com/arjungibson/trivia-api/internal/database"
	"github.com/arjungibson/trivia-api/internal/handlers"

	_ "github.com/arjungibson/trivia-api/docs"

	"github.com/joho/godotenv"
)

// @title           Trivia API
// @version         1.0
// @description     CRUD API backing the trivia game: categories, paginated questions, search and quiz play.
// @host            localhost:8080
// @BasePath        /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db)

	r := handlers.NewRouter(db, nil)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
