package handlers

import (
	"net/http"
	"strconv"

	"wooflow/internal/logger"
	"wooflow/internal/woo"

	"github.com/gin-gonic/gin"
)

type AttributeHandler struct {
	client *woo.Client
	logger *logger.Logger
}

func NewAttributeHandler(client *woo.Client, logger *logger.Logger) *AttributeHandler {
	return &AttributeHandler{client: client, logger: logger}
}

func (h *AttributeHandler) List(c *gin.Context) {
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "100"))

	attributes, err := h.client.ListAttributes(c.Request.Context(), perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get attributes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, attributes)
}

func (h *AttributeHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attribute, err := h.client.GetAttribute(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attribute not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, attribute)
}

func (h *AttributeHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Slug string `json:"slug"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.client.CreateAttribute(c.Request.Context(), req.Name, req.Slug)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create attribute: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *AttributeHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.client.DeleteAttribute(c.Request.Context(), id, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete attribute: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, deleted)
}

func (h *AttributeHandler) ListTerms(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "100"))

	terms, err := h.client.ListAttributeTerms(c.Request.Context(), id, perPage)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to get terms: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, terms)
}

func (h *AttributeHandler) CreateTerm(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
		Slug string `json:"slug"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.client.CreateAttributeTerm(c.Request.Context(), id, req.Name, req.Slug)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create term: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}
