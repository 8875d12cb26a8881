package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Catalog failures are reported inline rather than as error statuses: the
// storefront renders the message next to an empty gallery instead of
// breaking the page.
func listArtworksHandler(catalog CatalogClient, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := intQuery(c, "page", 1)
		limit := intQuery(c, "limit", 20)

		artworks, pagination, err := catalog.List(c.Request.Context(), page, limit)
		if err != nil {
			logger.Printf("list artworks: %v", err)
			c.JSON(http.StatusOK, gin.H{
				"data":       []interface{}{},
				"pagination": nil,
				"error":      "Failed to fetch artworks",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":       artworks,
			"pagination": pagination,
		})
	}
}

func getArtworkHandler(catalog CatalogClient, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid artwork id"})
			return
		}

		artwork, err := catalog.Get(c.Request.Context(), id)
		if err != nil {
			logger.Printf("get artwork %d: %v", id, err)
			c.JSON(http.StatusOK, gin.H{
				"data":  nil,
				"error": "Failed to fetch artwork",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": artwork})
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
