package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymslot/internal/gym"
)

type MockService struct{ mock.Mock }

func (m *MockService) BookSlot(ctx context.Context, userID, slotID, gymID, date string) (*BookResult, error) {
	args := m.Called(ctx, userID, slotID, gymID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookResult), args.Error(1)
}

func (m *MockService) CancelBooking(ctx context.Context, userID, bookingID, slotID string) error {
	return m.Called(ctx, userID, bookingID, slotID).Error(0)
}

func (m *MockService) GetUserBookings(ctx context.Context, userID string) ([]Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockService) GetBookingsBySlot(ctx context.Context, slotID string) ([]Booking, error) {
	args := m.Called(ctx, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func setupHandlerRouter(svc Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	router.POST("/slots/:slotID/book", handler.BookSlot)
	router.POST("/bookings/:bookingID/cancel", handler.CancelBooking)
	router.GET("/bookings", handler.ListMyBookings)
	router.GET("/admin/slots/:slotID/bookings", handler.ListBookingsBySlot)

	return router
}

func TestBookSlotHandler(t *testing.T) {
	svc := new(MockService)
	router := setupHandlerRouter(svc, "USR1")

	svc.On("BookSlot", mock.Anything, "USR1", "SLT1", "GYM1", "2026-09-01").
		Return(&BookResult{
			Status:  StatusConfirmed,
			Booking: &Booking{ID: "BKG1", UserID: "USR1", SlotID: "SLT1", Date: "2026-09-01", Status: StatusConfirmed},
		}, nil)

	body, _ := json.Marshal(BookSlotRequest{GymID: "GYM1", Date: "2026-09-01"})
	req := httptest.NewRequest("POST", "/slots/SLT1/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var result BookResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, StatusConfirmed, result.Status)
	assert.Equal(t, "BKG1", result.Booking.ID)
}

func TestBookSlotHandler_SlotNotFound(t *testing.T) {
	svc := new(MockService)
	router := setupHandlerRouter(svc, "USR1")

	svc.On("BookSlot", mock.Anything, "USR1", "SLT404", "GYM1", "2026-09-01").
		Return(nil, gym.ErrSlotNotFound)

	body, _ := json.Marshal(BookSlotRequest{GymID: "GYM1", Date: "2026-09-01"})
	req := httptest.NewRequest("POST", "/slots/SLT404/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookSlotHandler_InvalidJSON(t *testing.T) {
	svc := new(MockService)
	router := setupHandlerRouter(svc, "USR1")

	req := httptest.NewRequest("POST", "/slots/SLT1/book", bytes.NewBufferString(`{"gym_id": invalid}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "BookSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookSlotHandler_Unauthenticated(t *testing.T) {
	svc := new(MockService)
	router := setupHandlerRouter(svc, "")

	body, _ := json.Marshal(BookSlotRequest{GymID: "GYM1", Date: "2026-09-01"})
	req := httptest.NewRequest("POST", "/slots/SLT1/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCancelBookingHandler(t *testing.T) {
	svc := new(MockService)
	router := setupHandlerRouter(svc, "USR1")

	svc.On("CancelBooking", mock.Anything, "USR1", "BKG1", "SLT1").Return(nil)

	body, _ := json.Marshal(CancelBookingRequest{SlotID: "SLT1"})
	req := httptest.NewRequest("POST", "/bookings/BKG1/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")
}

func TestCancelBookingHandler_NotOwner(t *testing.T) {
	svc := new(MockService)
	router := setupHandlerRouter(svc, "USR2")

	svc.On("CancelBooking", mock.Anything, "USR2", "BKG1", "SLT1").Return(ErrNotBookingOwner)

	body, _ := json.Marshal(CancelBookingRequest{SlotID: "SLT1"})
	req := httptest.NewRequest("POST", "/bookings/BKG1/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListMyBookingsHandler(t *testing.T) {
	svc := new(MockService)
	router := setupHandlerRouter(svc, "USR1")

	svc.On("GetUserBookings", mock.Anything, "USR1").Return([]Booking{
		{ID: "BKG1", UserID: "USR1", SlotID: "SLT1", Date: "2026-09-01", Status: StatusConfirmed},
		{ID: "BKG2", UserID: "USR1", SlotID: "SLT2", Date: "2026-09-02", Status: StatusWaitlist},
	}, nil)

	req := httptest.NewRequest("GET", "/bookings", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var bookings []Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 2)
}

func TestListBookingsBySlotHandler(t *testing.T) {
	svc := new(MockService)
	router := setupHandlerRouter(svc, "USR1")

	svc.On("GetBookingsBySlot", mock.Anything, "SLT1").Return([]Booking{
		{ID: "BKG1", UserID: "USR1", SlotID: "SLT1", Date: "2026-09-01", Status: StatusConfirmed},
	}, nil)

	req := httptest.NewRequest("GET", "/admin/slots/SLT1/bookings", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
