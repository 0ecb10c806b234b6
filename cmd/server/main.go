package main

import (
	"context"
	"log"
	"os"

	"unzone-backend/handlers"
	"unzone-backend/repository"
	"unzone-backend/service"
	"unzone-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	// Pick the store: Postgres when configured, in-memory otherwise
	store, cleanup, err := initStore()
	if err != nil {
		log.Fatal("Failed to initialize store:", err)
	}
	defer cleanup()

	// Initialize avatar blob storage
	blobs, err := storage.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Storage initialized")

	// Initialize Gemini client
	geminiClient, err := initGemini()
	if err != nil {
		log.Fatal("Failed to initialize Gemini:", err)
	}

	// Initialize services
	challengeService := service.NewChallengeService(
		service.WithStore(store),
	)
	coachService := service.NewCoachService(
		service.CoachWithGeminiClient(geminiClient),
		service.CoachWithAPIKey(os.Getenv("GEMINI_API_KEY")),
	)

	// Setup Gin router
	r := gin.Default()
	handlers.RegisterRoutes(r, handlers.Deps{
		Store:            store,
		ChallengeService: challengeService,
		CoachService:     coachService,
		Blobs:            blobs,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initStore() (repository.Store, func(), error) {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Println("DATABASE_URL not set, using in-memory store")
		return repository.NewMemStore(), func() {}, nil
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, nil, err
	}

	log.Println("Postgres connection established")
	return repository.NewPgStore(pool), pool.Close, nil
}

func initGemini() (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	log.Println("Gemini client initialized")
	return client, nil
}
