package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elearning-service/internal/config"
	"elearning-service/internal/db"
	"elearning-service/internal/event"
	"elearning-service/internal/handlers"
	"elearning-service/internal/repository"
	"elearning-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.Mongo.URI == "" {
		log.Fatal("MONGO_URI is required")
	}

	client, err := db.Connect(cfg.Mongo.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Disconnect(client)
	database := client.Database(cfg.Mongo.Database)

	var publisher *event.Publisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		publisher, err = event.NewPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	verificationRepo := repository.NewVerificationRepository(database)
	emailService := service.NewEmailService(cfg.SMTP)
	verificationService := service.NewVerificationService(verificationRepo, emailService)
	authHandler := handlers.NewAuthHandler(verificationService)

	courseRepo := repository.NewCourseRepository(database)
	courseService := service.NewCourseService(courseRepo)
	courseHandler := handlers.NewCourseHandler(courseService)

	chapterRepo := repository.NewChapterRepository(database)
	chapterService := service.NewChapterService(chapterRepo)
	chapterHandler := handlers.NewChapterHandler(chapterService)

	quizRepo := repository.NewQuizRepository(database)
	quizService := service.NewQuizService(quizRepo)
	quizHandler := handlers.NewQuizHandler(quizService)

	statusRepo := repository.NewStatusRepository(database)
	statusService := service.NewStatusService(statusRepo)
	statusHandler := handlers.NewStatusHandler(statusService)

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
		})

		api.POST("/auth/register/request", func(c *gin.Context) {
			authHandler.RequestVerification(c)
			publisher.Publish("verification.requested", gin.H{"timestamp": time.Now()})
		})
		api.POST("/auth/register/verify", func(c *gin.Context) {
			authHandler.VerifyCode(c)
			publisher.Publish("verification.completed", gin.H{"timestamp": time.Now()})
		})

		api.GET("/courses", courseHandler.ListCourses)
		api.POST("/courses", func(c *gin.Context) {
			courseHandler.CreateCourse(c)
			publisher.Publish("course.created", gin.H{"timestamp": time.Now()})
		})

		api.GET("/chapters/:id", chapterHandler.GetChapter)
		api.POST("/chapters", func(c *gin.Context) {
			chapterHandler.CreateChapter(c)
			publisher.Publish("chapter.created", gin.H{"timestamp": time.Now()})
		})

		api.GET("/quizzes/:id", quizHandler.GetQuiz)
		api.POST("/quizzes", func(c *gin.Context) {
			quizHandler.CreateQuiz(c)
			publisher.Publish("quiz.created", gin.H{"timestamp": time.Now()})
		})
		api.POST("/quizzes/:id/attempts", func(c *gin.Context) {
			quizHandler.AttemptQuiz(c)
			publisher.Publish("quiz.attempted", gin.H{"quiz_id": c.Param("id"), "timestamp": time.Now()})
		})

		api.POST("/status", statusHandler.CreateStatusCheck)
		api.GET("/status", statusHandler.ListStatusChecks)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()
	log.Printf("Listening on :%s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
