package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"wooflow/internal/events"
	"wooflow/internal/logger"
	"wooflow/internal/woo"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	client    *woo.Client
	logger    *logger.Logger
	publisher *events.Publisher
}

func NewProductHandler(client *woo.Client, logger *logger.Logger, publisher *events.Publisher) *ProductHandler {
	return &ProductHandler{
		client:    client,
		logger:    logger,
		publisher: publisher,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	category, _ := strconv.Atoi(c.Query("category"))

	products, err := h.client.ListProducts(c.Request.Context(), woo.ProductListOptions{
		PerPage:  perPage,
		Page:     page,
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Category: category,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get products: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.client.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product with ID %d not found: %v", id, err)})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var product woo.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.client.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create product: " + err.Error()})
		return
	}

	h.publisher.Publish(c.Request.Context(), events.Event{
		Type:      events.TypeProductCreated,
		ProductID: strconv.Itoa(created.ID),
		Data:      map[string]interface{}{"name": created.Name, "type": created.Type, "sku": created.SKU},
	})

	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product woo.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.client.UpdateProduct(c.Request.Context(), id, &product)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update product: " + err.Error()})
		return
	}

	h.publisher.Publish(c.Request.Context(), events.Event{
		Type:      events.TypeProductUpdated,
		ProductID: strconv.Itoa(updated.ID),
		Data:      map[string]interface{}{"name": updated.Name},
	})

	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	force := c.Query("force") == "true"

	deleted, err := h.client.DeleteProduct(c.Request.Context(), id, force)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete product: " + err.Error()})
		return
	}

	h.publisher.Publish(c.Request.Context(), events.Event{
		Type:      events.TypeProductDeleted,
		ProductID: strconv.Itoa(id),
	})

	c.JSON(http.StatusOK, deleted)
}

func (h *ProductHandler) ListVariations(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	variations, err := h.client.ListVariations(c.Request.Context(), id, perPage, page)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Variations not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, variations)
}

func (h *ProductHandler) GetVariation(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	variationID, err := pathID(c, "variation_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	variation, err := h.client.GetVariation(c.Request.Context(), id, variationID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Variation not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, variation)
}

func (h *ProductHandler) CreateVariation(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var variation woo.Variation
	if err := c.ShouldBindJSON(&variation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.client.CreateVariation(c.Request.Context(), id, &variation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create variation: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) UpdateVariation(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	variationID, err := pathID(c, "variation_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var variation woo.Variation
	if err := c.ShouldBindJSON(&variation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.client.UpdateVariation(c.Request.Context(), id, variationID, &variation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update variation: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) DeleteVariation(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	variationID, err := pathID(c, "variation_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	force := c.Query("force") == "true"

	deleted, err := h.client.DeleteVariation(c.Request.Context(), id, variationID, force)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete variation: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, deleted)
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return id, nil
}
