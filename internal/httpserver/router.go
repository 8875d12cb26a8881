package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, mongoClient *mongo.Client, redisClient *redis.Client, deps Deps, frontendOrigin string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if frontendOrigin != "" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{frontendOrigin},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(mongoClient, redisClient))

	api := router.Group("/api")
	api.Use(identityMiddleware(deps.AuthSvc, logger))

	api.GET("/artworks", listArtworksHandler(deps.Catalog, logger))
	api.GET("/artworks/:id", getArtworkHandler(deps.Catalog, logger))

	api.GET("/cart", getCartHandler(deps.CartSvc, logger))
	api.POST("/cart/items", addCartItemHandler(deps.CartSvc, logger))
	api.DELETE("/cart/items/:artworkId", removeCartItemHandler(deps.CartSvc, logger))

	api.POST("/checkout", checkoutHandler(deps.CheckoutSvc, deps.CartSvc, logger))
	api.GET("/orders", listOrdersHandler(deps.OrderSvc, logger))
	api.GET("/orders/stats", orderStatsHandler(deps.OrderSvc, logger))
	api.GET("/orders/:id", getOrderHandler(deps.OrderSvc, logger))

	authRoutes := api.Group("/auth")
	authRoutes.GET("/sign-in/:provider", signInHandler(deps.AuthSvc))
	authRoutes.GET("/callback/:provider", callbackHandler(deps.AuthSvc, frontendOrigin, logger))
	authRoutes.POST("/sign-out", signOutHandler(deps.AuthSvc, logger))
	authRoutes.GET("/get-session", getSessionHandler())

	return router
}
