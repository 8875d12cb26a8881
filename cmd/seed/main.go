package main

import (
	"context"
	"log"
	"os"

	"artisty/internal/config"
	"artisty/internal/db"
	"artisty/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatalf("connect to mongo: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := seed.Apply(ctx, client.Database(cfg.MongoDatabase)); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
