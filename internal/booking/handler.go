package booking

import (
	"errors"
	"net/http"

	"gymslot/internal/api"
	"gymslot/internal/auth"
	"gymslot/internal/gym"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Book a slot
// @Description  Attempts to claim a seat; falls back to the waitlist with a
// @Description  nearest-slot suggestion when the slot is full.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slotID  path      string              true  "Slot ID"
// @Param        request body      booking.BookSlotRequest true "Booking payload"
// @Success      201     {object}  booking.BookResult
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      503     {object}  api.ErrorResponse
// @Router       /slots/{slotID}/book [post]
func (h *Handler) BookSlot(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.BookSlot(c.Request.Context(), userID, c.Param("slotID"), req.GymID, req.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// @Summary      Cancel booking
// @Description  Cancels a booking of the current user. A confirmed booking
// @Description  frees its seat; a waitlisted one never held a seat.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookingID  path      string                        true "Booking ID"
// @Param        request    body      booking.CancelBookingRequest  true "Cancellation payload"
// @Success      200        {object}  booking.CancelBookingResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      503        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.service.CancelBooking(c.Request.Context(), userID, c.Param("bookingID"), req.SlotID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CancelBookingResponse{Message: "Booking cancelled successfully"})
}

// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} booking.Booking
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// @Summary      List bookings for a slot
// @Description  Admin-only view of every booking record of a slot.
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        slotID path string true "Slot ID"
// @Success      200 {array} booking.Booking
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/slots/{slotID}/bookings [get]
func (h *Handler) ListBookingsBySlot(c *gin.Context) {
	bookings, err := h.service.GetBookingsBySlot(c.Request.Context(), c.Param("slotID"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gym.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
	case errors.Is(err, ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only cancel your own bookings"})
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking input"})
	case errors.Is(err, gym.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "Store temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal error"})
	}
}
