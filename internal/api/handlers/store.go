package handlers

import (
	"net/http"
	"strconv"

	"wooflow/internal/logger"
	"wooflow/internal/woo"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	client *woo.Client
	logger *logger.Logger
}

func NewStoreHandler(client *woo.Client, logger *logger.Logger) *StoreHandler {
	return &StoreHandler{client: client, logger: logger}
}

func (h *StoreHandler) Info(c *gin.Context) {
	info, err := h.client.GetStoreInfo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach store: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *StoreHandler) Orders(c *gin.Context) {
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	orders, err := h.client.ListOrders(c.Request.Context(), woo.OrderListOptions{
		PerPage: perPage,
		Page:    page,
		Status:  c.Query("status"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}
