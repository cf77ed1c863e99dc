package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staffhub/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

type createBookingBody struct {
	ClientName  string  `json:"client_name"`
	MeetingDate string  `json:"meeting_date"`
	SaleAmount  float64 `json:"sale_amount"`
	UserID      int     `json:"user_id"` // admin only: credit another rep
}

// @Summary      Create a booking
// @Description  Records a sale and its commission (10% of sale amount, £30 minimum) as one unit
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        request  body      createBookingBody  true  "Booking details"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var body createBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, role := getUserAndRole(c)

	booking, commission, err := h.Service.Create(userID, role, services.CreateBookingInput{
		ClientName:     body.ClientName,
		MeetingDate:    body.MeetingDate,
		SaleAmount:     body.SaleAmount,
		CreditedUserID: body.UserID,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking, "commission": commission})
}

// @Summary      List bookings
// @Description  Admins see all bookings; reps see their own, newest meeting first
// @Tags         Bookings
// @Produce      json
// @Success      200  {array}  models.Booking
// @Router       /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	userID, role := getUserAndRole(c)

	bookings, err := h.Service.ListBookings(userID, role, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// @Summary      List commissions
// @Description  Admins see all commissions; reps see their own
// @Tags         Bookings
// @Produce      json
// @Success      200  {array}  models.Commission
// @Router       /bookings/commissions [get]
func (h *BookingHandler) ListCommissions(c *gin.Context) {
	limit, offset := pagination(c)
	userID, role := getUserAndRole(c)

	commissions, err := h.Service.ListCommissions(userID, role, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list commissions"})
		return
	}
	c.JSON(http.StatusOK, commissions)
}

// @Summary      Mark a commission as paid
// @Description  Admin-only, idempotent: re-marking a paid commission is not an error
// @Tags         Bookings
// @Produce      json
// @Param        id   path      int  true  "Commission id"
// @Success      200  {object}  models.Commission
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bookings/commissions/{id}/pay [put]
func (h *BookingHandler) MarkPaid(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	_, role := getUserAndRole(c)

	cm, err := h.Service.MarkPaid(role, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}
