package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"artisty/internal/domain"
	ordersvc "artisty/internal/service/order"
	"github.com/gin-gonic/gin"
)

func listOrdersHandler(orderSvc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, ok := fetchOrders(c, orderSvc, logger)
		if !ok {
			return
		}

		if v := c.Query("status"); v != "" {
			orders = ordersvc.ByStatus(orders, domain.OrderStatus(v))
		}
		if q := c.Query("q"); q != "" {
			orders = ordersvc.Search(orders, q)
		}
		if v := c.Query("limit"); v != "" {
			if limit, err := strconv.Atoi(v); err == nil {
				orders = ordersvc.Recent(orders, limit)
			}
		}
		if orders == nil {
			orders = []domain.Order{}
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func getOrderHandler(orderSvc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, ok := fetchOrders(c, orderSvc, logger)
		if !ok {
			return
		}

		order := ordersvc.GetByID(orders, c.Param("id"))
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order":    order,
			"isRecent": ordersvc.IsRecent(*order, time.Now()),
		})
	}
}

func orderStatsHandler(orderSvc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, ok := fetchOrders(c, orderSvc, logger)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"stats":   ordersvc.Stats(orders),
			"byMonth": ordersvc.ByMonth(orders),
		})
	}
}

func fetchOrders(c *gin.Context, orderSvc OrderService, logger *log.Logger) ([]domain.Order, bool) {
	// A broken session store means we cannot tell who is asking; that is an
	// outage, not a logged-out caller.
	if sessionErrorFrom(c) != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return nil, false
	}

	orders, err := orderSvc.List(c.Request.Context(), identityFrom(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		} else {
			logger.Printf("fetch orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		}
		return nil, false
	}
	return orders, true
}
