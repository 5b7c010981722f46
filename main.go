package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mottasimsadi/food-share-server/internal/auth"
	"github.com/mottasimsadi/food-share-server/internal/config"
	"github.com/mottasimsadi/food-share-server/internal/handler"
	"github.com/mottasimsadi/food-share-server/internal/middleware"
	"github.com/mottasimsadi/food-share-server/internal/mongo"
	"github.com/mottasimsadi/food-share-server/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	client, err := mongo.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo error: %v", err)
	}
	log.Println("Connected to MongoDB")

	verifier, err := auth.NewFirebaseVerifier(context.Background(), cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase error: %v", err)
	}

	repo := repository.NewListingRepository(client.Database(cfg.DBName).Collection(cfg.Collection))
	h := handler.NewListingHandler(repo)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	h.RegisterRoutes(r, middleware.RequireAuth(verifier))

	log.Printf("Food Share server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
