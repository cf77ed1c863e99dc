package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/internal/services"
)

type ResourceHandler struct {
	Service *services.ResourceService
}

func NewResourceHandler(service *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{Service: service}
}

func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.Service.List(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list resources"})
		return
	}
	c.JSON(http.StatusOK, resources)
}

type createResourceBody struct {
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
}

func (h *ResourceHandler) Create(c *gin.Context) {
	var body createResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, role := getUserAndRole(c)

	res, err := h.Service.Add(role, body.Category, body.Title, body.URL, body.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
