package gym

import (
	"errors"
	"net/http"

	"gymslot/internal/api"
	"gymslot/internal/auth"

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

// @Summary      Register a gym
// @Description  Owner-only: register a new gym center (pending admin approval)
// @Tags         owner,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.CreateGymRequest true "Gym payload"
// @Success      201 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /owner/gyms [post]
func (h *Handler) RegisterGym(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	gym, err := h.service.RegisterGym(c.Request.Context(), ownerID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to register gym"})
		return
	}

	c.JSON(http.StatusCreated, gym)
}

// @Summary      List gyms by city
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Param        city query string true "City name"
// @Success      200 {array} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "city parameter required"})
		return
	}

	gyms, err := h.service.ListGymsByCity(c.Request.Context(), city)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      Create a slot
// @Description  Owner-only: create a bookable time slot for an approved gym
// @Tags         owner,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path string true "Gym ID"
// @Param        request body gym.CreateSlotRequest true "Slot payload"
// @Success      201 {object} gym.Slot
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /owner/gyms/{gymID}/slots [post]
func (h *Handler) CreateSlot(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), ownerID, c.Param("gymID"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		case errors.Is(err, ErrNotGymOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only manage your own gyms"})
		case errors.Is(err, ErrGymNotLive):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Gym is awaiting approval"})
		case errors.Is(err, ErrSlotInvalid):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot definition"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// @Summary      List slots for a gym
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path string true "Gym ID"
// @Success      200 {array} gym.Slot
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms/{gymID}/slots [get]
func (h *Handler) ListSlots(c *gin.Context) {
	slots, err := h.service.ListSlots(c.Request.Context(), c.Param("gymID"))
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// @Summary      List pending gyms
// @Description  Admin-only: gyms awaiting approval
// @Tags         admin,gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} gym.Gym
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/gyms/pending [get]
func (h *Handler) ListPendingGyms(c *gin.Context) {
	gyms, err := h.service.ListPendingGyms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch pending gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      Approve a gym
// @Description  Admin-only: approve a pending gym so slots become bookable
// @Tags         admin,gyms
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path string true "Gym ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/gyms/{gymID}/approve [post]
func (h *Handler) ApproveGym(c *gin.Context) {
	err := h.service.ApproveGym(c.Request.Context(), c.Param("gymID"))
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to approve gym"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Gym approved"})
}
