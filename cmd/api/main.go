package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"artisty/internal/catalog"
	"artisty/internal/config"
	"artisty/internal/db"
	"artisty/internal/httpserver"
	cartrepo "artisty/internal/repository/cart"
	orderrepo "artisty/internal/repository/order"
	sessionrepo "artisty/internal/repository/session"
	userrepo "artisty/internal/repository/user"
	authsvc "artisty/internal/service/auth"
	cartsvc "artisty/internal/service/cart"
	checkoutsvc "artisty/internal/service/checkout"
	ordersvc "artisty/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	mongoClient, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatalf("connect to mongo: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())
	database := mongoClient.Database(cfg.MongoDatabase)

	redisClient, err := db.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer redisClient.Close()

	orderRepo := orderrepo.NewMongo(database)
	userRepo := userrepo.NewMongo(database)
	sessionRepo := sessionrepo.NewMongo(database)
	cartRepo := cartrepo.NewRedis(redisClient)

	catalogClient := catalog.New(cfg.CatalogURL)
	cartService := cartsvc.New(cartRepo)
	checkoutService := checkoutsvc.New(orderRepo)
	orderService := ordersvc.New(orderRepo)
	authService := authsvc.New(userRepo, sessionRepo, authsvc.Config{
		BaseURL:            cfg.AuthBaseURL,
		GoogleClientID:     cfg.GoogleClientID,
		GoogleClientSecret: cfg.GoogleSecret,
		GithubClientID:     cfg.GithubClientID,
		GithubClientSecret: cfg.GithubSecret,
		SessionTTL:         cfg.SessionTTL,
	})

	srv := httpserver.New(cfg.HTTPAddr, logger, mongoClient, redisClient, httpserver.Deps{
		Catalog:     catalogClient,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
		OrderSvc:    orderService,
		AuthSvc:     authService,
	}, cfg.FrontendOrigin)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
