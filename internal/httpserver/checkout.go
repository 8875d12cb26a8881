package httpserver

import (
	"errors"
	"log"
	"net/http"

	"artisty/internal/domain"
	"github.com/gin-gonic/gin"
)

// checkoutItem is a cart line as the storefront sends it: the artwork fields
// flattened together with the quantity.
type checkoutItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ImageID     *string `json:"image_id"`
	ArtistTitle *string `json:"artist_title"`
	DateDisplay *string `json:"date_display"`
	Quantity    int     `json:"quantity"`
}

type checkoutRequest struct {
	CartItems []checkoutItem `json:"cartItems"`
}

func checkoutHandler(checkoutSvc CheckoutService, cartSvc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}

		// A broken session store means we cannot tell who is asking; that is
		// an outage, not a logged-out caller.
		if sessionErrorFrom(c) != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order"})
			return
		}

		items := make([]domain.CartLine, 0, len(req.CartItems))
		for _, item := range req.CartItems {
			items = append(items, domain.CartLine{
				Artwork: domain.Artwork{
					ID:          item.ID,
					Title:       item.Title,
					ImageID:     item.ImageID,
					ArtistTitle: item.ArtistTitle,
					DateDisplay: item.DateDisplay,
				},
				Quantity: item.Quantity,
			})
		}

		result, err := checkoutSvc.Checkout(c.Request.Context(), identityFrom(c), items)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUnauthenticated):
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Please log in to checkout"})
			case errors.Is(err, domain.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
			default:
				logger.Printf("checkout: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order"})
			}
			return
		}

		// The device cart is emptied only after the order is safely stored.
		if cookie, cookieErr := c.Cookie(cartCookieName); cookieErr == nil && cookie != "" {
			if clearErr := cartSvc.Clear(c.Request.Context(), cookie); clearErr != nil {
				logger.Printf("clear cart after checkout: %v", clearErr)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"orderId": result.OrderID,
			"message": result.Message,
		})
	}
}
