package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"feedbackboard/internal/database"
	"feedbackboard/internal/handlers"
	"feedbackboard/internal/notify"
	"feedbackboard/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	mongoURI := getEnv("MONGODB_URI", "")
	dbName := getEnv("DB_NAME", "feedbackboard")
	port := getEnv("PORT", "8080")

	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}

	// Connect to MongoDB
	if err := database.Connect(mongoURI, dbName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	feedbackRepo := repository.NewFeedbackRepo()
	commentRepo := repository.NewCommentRepo()
	upvoteRepo := repository.NewUpvoteRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := feedbackRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}
	if err := commentRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create comment indexes: %v", err)
	}
	if err := upvoteRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create upvote indexes: %v", err)
	}

	// Board-owner notification channel: Resend email when configured,
	// otherwise log lines
	var notifier notify.Notifier = notify.NewLogNotifier()
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		from := getEnv("FROM_EMAIL", "board@example.com")
		to := os.Getenv("NOTIFY_EMAIL")
		if to != "" {
			notifier = notify.NewEmailNotifier(apiKey, from, to)
		} else {
			log.Println("⚠️  NOTIFY_EMAIL not set, falling back to log notifier")
		}
	}

	// Initialize handlers
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo, commentRepo, notifier)
	commentHandler := handlers.NewCommentHandler(commentRepo)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Mount("/", handlers.Routes(feedbackHandler, commentHandler))

	// Start server
	log.Printf("🚀 Feedback board starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
