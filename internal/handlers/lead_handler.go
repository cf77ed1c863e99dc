package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staffhub/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

type requestLeadBody struct {
	Industry string `json:"industry"`
	Region   string `json:"region"`
	Quantity int    `json:"quantity"`
}

// @Summary      Request leads
// @Description  Creates a lead request (industry, region, quantity) in "Requested" state
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        request  body      requestLeadBody  true  "Lead request"
// @Success      201      {object}  models.Lead
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Router       /leads/request [post]
func (h *LeadHandler) Request(c *gin.Context) {
	var body requestLeadBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, role := getUserAndRole(c)

	lead, err := h.Service.Request(userID, role, body.Industry, body.Region, body.Quantity)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

type assignLeadsBody struct {
	LeadIDs []int `json:"leadIds"`
	UserID  int   `json:"userId"`
}

// @Summary      Assign leads
// @Description  Admin assigns one or more leads to a rep; sets assigned_to and status "Assigned"
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        request  body      assignLeadsBody  true  "Lead ids and assignee"
// @Success      200      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /leads/assign [post]
func (h *LeadHandler) Assign(c *gin.Context) {
	var body assignLeadsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, role := getUserAndRole(c)

	if err := h.Service.Assign(role, body.LeadIDs, body.UserID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Leads assigned"})
}

type updateLeadBody struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
	Tags   *string `json:"tags"`
}

// @Summary      Update a lead
// @Description  Assigned rep or admin updates status, notes or tags
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Lead id"
// @Param        request  body      updateLeadBody  true  "Fields to update"
// @Success      200      {object}  models.Lead
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /leads/{id}/update [post]
func (h *LeadHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var body updateLeadBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, role := getUserAndRole(c)

	lead, err := h.Service.Update(userID, role, id, body.Status, body.Notes, body.Tags)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// @Summary      List leads
// @Description  Admins see all leads; everyone else sees leads they requested or are assigned to
// @Tags         Leads
// @Produce      json
// @Success      200  {array}  models.Lead
// @Router       /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	userID, role := getUserAndRole(c)

	leads, err := h.Service.List(userID, role, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	userID, role := getUserAndRole(c)

	lead, err := h.Service.Get(userID, role, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}
