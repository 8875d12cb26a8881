package main

import (
	"context"
	"log"
	"os"

	"artisty/internal/config"
	"artisty/internal/db"
	"artisty/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatalf("connect to mongo: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := migrate.Apply(ctx, client, cfg.MongoDatabase); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
