package booking

import (
	"time"

	"gymslot/internal/gym"
)

// Booking status lifecycle: CONFIRMED -> CANCELLED, WAITLIST -> CANCELLED.
// Nothing ever leaves CANCELLED, and bookings are never deleted.
const (
	StatusConfirmed = "CONFIRMED"
	StatusWaitlist  = "WAITLIST"
	StatusCancelled = "CANCELLED"
)

type Booking struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	SlotID    string    `db:"slot_id" json:"slot_id"`
	Date      string    `db:"date" json:"date"` // calendar date "YYYY-MM-DD"
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// BookResult is the outcome of a booking attempt. A full slot is not an
// error: it degrades to a WAITLIST booking, optionally with the nearest
// later slot at the same gym carried as an advisory suggestion.
type BookResult struct {
	Status     string    `json:"status" example:"CONFIRMED"`
	Booking    *Booking  `json:"booking"`
	Suggestion *gym.Slot `json:"suggestion,omitempty"`
}

type BookSlotRequest struct {
	GymID string `json:"gym_id" binding:"required"`
	Date  string `json:"date" binding:"required"`
}

type CancelBookingRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
}

type CancelBookingResponse struct {
	Message string `json:"message" example:"Booking cancelled successfully"`
}
