package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staffhub/internal/authz"
	"staffhub/internal/services"
)

// AdminHandler covers user management and manual commission adjustments.
// The whole group is mounted behind RequireAction(manage_users).
type AdminHandler struct {
	Users    services.UserService
	Bookings *services.BookingService
}

func NewAdminHandler(users services.UserService, bookings *services.BookingService) *AdminHandler {
	return &AdminHandler{Users: users, Bookings: bookings}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, offset := pagination(c)
	_, role := getUserAndRole(c)

	users, err := h.Users.ListUsers(role, limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// @Summary      Create a staff account
// @Description  Admin creates a user; an unrecognised role defaults to "rep"
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request  body      createUserBody  true  "New user"
// @Success      201      {object}  models.User
// @Failure      409      {object}  map[string]string
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var body createUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, role := getUserAndRole(c)

	user, err := h.Users.CreateUser(role, body.Name, body.Email, body.Password, authz.Role(body.Role))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	_, role := getUserAndRole(c)

	if err := h.Users.DeleteUser(role, id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

type adjustCommissionBody struct {
	CommissionAmount *float64 `json:"commission_amount"`
	IsPaid           *bool    `json:"is_paid"`
}

// @Summary      Adjust a commission
// @Description  Admin manually overrides the commission amount and/or paid flag
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Commission id"
// @Param        request  body      adjustCommissionBody  true  "Fields to update"
// @Success      200      {object}  models.Commission
// @Failure      404      {object}  map[string]string
// @Router       /admin/commissions/{id} [put]
func (h *AdminHandler) AdjustCommission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var body adjustCommissionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, role := getUserAndRole(c)

	cm, err := h.Bookings.AdjustCommission(role, id, body.CommissionAmount, body.IsPaid)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}
