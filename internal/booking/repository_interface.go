package booking

import "context"

type Repository interface {
	InsertBooking(ctx context.Context, b *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id string) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) error
	FindConflictingBookingID(ctx context.Context, userID, date, startTime string) (string, error)
	ListUserBookings(ctx context.Context, userID string) ([]Booking, error)
	ListBookingsBySlot(ctx context.Context, slotID string) ([]Booking, error)
}
