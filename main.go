package main

import (
	"log"
	"net/http"
	"time"

	"quizhub/internal/ai"
	"quizhub/internal/config"
	"quizhub/internal/db"
	"quizhub/internal/event"
	"quizhub/internal/handlers"
	"quizhub/internal/quiz"
	"quizhub/internal/repository"
	"quizhub/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	gin.SetMode(cfg.GinMode)
	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	generator := ai.NewGenerator(ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel))
	aiHandler := handlers.NewAIHandler(generator)

	sessionManager := quiz.NewManager()
	sessionHandler := handlers.NewSessionHandler(sessionManager, questionService)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running")
	})

	api := r.Group("/api")

	questions := api.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.GET("/categories", questionHandler.ListCategories)
		questions.GET("/:id", questionHandler.GetQuestion)
		questions.POST("", func(c *gin.Context) {
			questionHandler.CreateQuestion(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish("question.created", nil)
			}
		})
		questions.PUT("/:id", func(c *gin.Context) {
			questionHandler.UpdateQuestion(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish("question.updated", gin.H{"id": c.Param("id")})
			}
		})
		questions.DELETE("/:id", func(c *gin.Context) {
			questionHandler.DeleteQuestion(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish("question.deleted", gin.H{"id": c.Param("id")})
			}
		})
		questions.POST("/bulk", func(c *gin.Context) {
			questionHandler.BulkCreateQuestions(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish("question.bulk_saved", gin.H{"timestamp": time.Now()})
			}
		})
	}

	api.POST("/ai/generate", func(c *gin.Context) {
		aiHandler.Generate(c)
		publisher.Publish("ai.generation_requested", gin.H{"timestamp": time.Now()})
	})

	sessions := api.Group("/sessions")
	{
		sessions.POST("", func(c *gin.Context) {
			sessionHandler.StartSession(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish("quiz.session.started", gin.H{"timestamp": time.Now()})
			}
		})
		sessions.GET("/:id", sessionHandler.GetSession)
		sessions.POST("/:id/answer", sessionHandler.SubmitAnswer)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
