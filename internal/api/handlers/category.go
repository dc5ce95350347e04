package handlers

import (
	"net/http"
	"strconv"

	"wooflow/internal/logger"
	"wooflow/internal/woo"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	client *woo.Client
	logger *logger.Logger
}

func NewCategoryHandler(client *woo.Client, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{client: client, logger: logger}
}

func (h *CategoryHandler) List(c *gin.Context) {
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "100"))

	categories, err := h.client.ListCategories(c.Request.Context(), perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get categories: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.client.GetCategory(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var category woo.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.client.CreateCategory(c.Request.Context(), &category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create category: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category woo.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.client.UpdateCategory(c.Request.Context(), id, &category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update category: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	force := c.DefaultQuery("force", "true") == "true"

	deleted, err := h.client.DeleteCategory(c.Request.Context(), id, force)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete category: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, deleted)
}

func (h *CategoryHandler) Hierarchy(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chain, err := h.client.GetCategoryHierarchy(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to resolve hierarchy: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, chain)
}

// Tree creates every missing segment of a slash-separated category path
// and returns the leaf category.
func (h *CategoryHandler) Tree(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leaf, err := h.client.GetOrCreateCategoryTree(c.Request.Context(), req.Path)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create category tree: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, leaf)
}
