package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"study-service/internal/config"
	"study-service/internal/event"
	"study-service/internal/generation"
	"study-service/internal/handlers"
	"study-service/internal/service"
	"study-service/internal/storage"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Blob store: Mongo when configured, local JSON files otherwise.
	var store storage.BlobStore
	if cfg.MongoURI != "" {
		mongoStore, err := storage.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		store = mongoStore
		log.Println("Using MongoDB blob store")
	} else {
		fileStore, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open data dir: %v", err)
		}
		store = fileStore
		log.Printf("Using file blob store in %s", cfg.DataDir)
	}

	// RabbitMQ event publisher, optional.
	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, lifecycle events will not be published")
	}

	quizService, err := service.NewQuizService(ctx, store)
	if err != nil {
		log.Fatalf("Failed to load quiz store: %v", err)
	}
	flashcardService, err := service.NewFlashcardService(ctx, store)
	if err != nil {
		log.Fatalf("Failed to load flashcard store: %v", err)
	}
	bookmarkService, err := service.NewBookmarkService(ctx, store)
	if err != nil {
		log.Fatalf("Failed to load bookmark store: %v", err)
	}
	timerService, err := service.NewTimerService(ctx, store)
	if err != nil {
		log.Fatalf("Failed to load timer store: %v", err)
	}
	dashboardService, err := service.NewDashboardService(ctx, store)
	if err != nil {
		log.Fatalf("Failed to load dashboard store: %v", err)
	}

	generator := generation.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	quizHandler := handlers.NewQuizHandler(quizService, dashboardService, generator)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService, dashboardService, generator)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)
	explainHandler := handlers.NewExplainHandler(dashboardService, generator)
	timerHandler := handlers.NewTimerHandler(timerService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	quiz := r.Group("/api/quiz")
	{
		quiz.POST("/generate", func(c *gin.Context) {
			quizHandler.Generate(c)
			if publisher != nil {
				publisher.Publish("quiz.created", gin.H{"status": c.Writer.Status()})
			}
		})
		quiz.GET("/current", quizHandler.Current)
		quiz.POST("/answer", quizHandler.Answer)
		quiz.POST("/complete", func(c *gin.Context) {
			quizHandler.Complete(c)
			if publisher != nil {
				publisher.Publish("quiz.completed", gin.H{"status": c.Writer.Status()})
			}
		})
		quiz.POST("/reset", quizHandler.Reset)
		quiz.GET("/history", quizHandler.History)
		quiz.GET("/history/:id", quizHandler.HistoryByID)
	}

	flashcards := r.Group("/api/flashcards")
	{
		flashcards.POST("/generate", func(c *gin.Context) {
			flashcardHandler.Generate(c)
			if publisher != nil {
				publisher.Publish("flashcards.created", gin.H{"status": c.Writer.Status()})
			}
		})
		flashcards.GET("/current", flashcardHandler.Current)
		flashcards.PUT("/card/:id/status", flashcardHandler.UpdateCardStatus)
		flashcards.POST("/advance", flashcardHandler.Advance)
		flashcards.POST("/goto", flashcardHandler.GoTo)
		flashcards.POST("/shuffle", flashcardHandler.Shuffle)
		flashcards.POST("/reset", flashcardHandler.Reset)
		flashcards.POST("/complete", func(c *gin.Context) {
			flashcardHandler.Complete(c)
			if publisher != nil {
				publisher.Publish("flashcards.completed", gin.H{"status": c.Writer.Status()})
			}
		})
		flashcards.GET("/history", flashcardHandler.History)
	}

	r.POST("/api/explain", explainHandler.Explain)

	bookmarks := r.Group("/api/bookmarks")
	{
		bookmarks.POST("/", func(c *gin.Context) {
			bookmarkHandler.Add(c)
			if publisher != nil {
				publisher.Publish("bookmark.added", gin.H{"status": c.Writer.Status()})
			}
		})
		bookmarks.DELETE("/:id", bookmarkHandler.Remove)
		bookmarks.GET("/", bookmarkHandler.List)
		bookmarks.POST("/check", bookmarkHandler.Check)
	}

	timer := r.Group("/api/timer")
	{
		timer.POST("/session", timerHandler.RecordSession)
		timer.GET("/stats", timerHandler.Stats)
		timer.GET("/sessions", timerHandler.Sessions)
	}

	dashboard := r.Group("/api/dashboard")
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
		dashboard.GET("/recent", dashboardHandler.Recent)
	}

	log.Printf("Starting study service on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
