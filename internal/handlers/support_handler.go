package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/internal/services"
)

type SupportHandler struct {
	Service *services.SupportService
}

func NewSupportHandler(service *services.SupportService) *SupportHandler {
	return &SupportHandler{Service: service}
}

// LatestAnnouncement returns the most recent announcement, or null.
func (h *SupportHandler) LatestAnnouncement(c *gin.Context) {
	a, err := h.Service.LatestAnnouncement()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch announcements"})
		return
	}
	c.JSON(http.StatusOK, a)
}

type postAnnouncementBody struct {
	Body string `json:"body"`
}

func (h *SupportHandler) PostAnnouncement(c *gin.Context) {
	var body postAnnouncementBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, role := getUserAndRole(c)

	a, err := h.Service.PostAnnouncement(userID, role, body.Body)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

type contactBody struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (h *SupportHandler) Contact(c *gin.Context) {
	var body contactBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, _ := getUserAndRole(c)

	req, err := h.Service.Contact(userID, body.Subject, body.Body)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (h *SupportHandler) ListRequests(c *gin.Context) {
	_, role := getUserAndRole(c)

	reqs, err := h.Service.ListRequests(role)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}
