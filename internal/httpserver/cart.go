package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"artisty/internal/domain"
	cartsvc "artisty/internal/service/cart"
	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	Items               []domain.CartLine `json:"items"`
	TotalQuantity       int               `json:"totalQuantity"`
	TotalUniqueArtworks int               `json:"totalUniqueArtworks"`
	TotalPrice          float64           `json:"totalPrice"`
}

func toCartResponse(ledger *cartsvc.Ledger) cartResponse {
	return cartResponse{
		Items:               ledger.Lines(),
		TotalQuantity:       ledger.TotalQuantity(),
		TotalUniqueArtworks: ledger.TotalUniqueLines(),
		TotalPrice:          ledger.TotalPrice(),
	}
}

func getCartHandler(cartSvc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := cartIDFrom(c)
		ledger, err := cartSvc.Get(c.Request.Context(), cartID)
		if err != nil {
			logger.Printf("get cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(ledger))
	}
}

func addCartItemHandler(cartSvc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var art domain.Artwork
		if err := c.ShouldBindJSON(&art); err != nil || art.ID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid artwork"})
			return
		}

		cartID := cartIDFrom(c)
		ledger, err := cartSvc.Add(c.Request.Context(), cartID, art)
		if err != nil {
			logger.Printf("add cart item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(ledger))
	}
}

func removeCartItemHandler(cartSvc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		artworkID, err := strconv.Atoi(c.Param("artworkId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid artwork id"})
			return
		}

		cartID := cartIDFrom(c)
		ledger, found, err := cartSvc.Remove(c.Request.Context(), cartID, artworkID)
		if err != nil {
			logger.Printf("remove cart item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"message": "artwork not in cart"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(ledger))
	}
}
