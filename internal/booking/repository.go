package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gymslot/internal/gym"

	"github.com/jmoiron/sqlx"
)

var ErrBookingNotFound = errors.New("booking not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertBooking(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (id, user_id, slot_id, date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, slot_id, date, status, created_at
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, b.ID, b.UserID, b.SlotID, b.Date, b.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gym.ErrStoreUnavailable, err)
	}

	return &booking, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT id, user_id, slot_id, date, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: %v", gym.ErrStoreUnavailable, err)
	}

	return &booking, nil
}

// UpdateBookingStatus transitions a booking. CANCELLED is terminal: the
// guard makes a repeat cancellation a no-op reported as not found, which is
// what keeps a double cancel from ever releasing a seat twice.
func (r *repository) UpdateBookingStatus(ctx context.Context, id, status string) error {
	query := `
		UPDATE bookings
		SET status = $2
		WHERE id = $1 AND status <> 'CANCELLED'
	`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("%w: %v", gym.ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", gym.ErrStoreUnavailable, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// FindConflictingBookingID looks for a CONFIRMED booking of the same user,
// same date, whose slot starts at exactly the given wall-clock time. Exact
// start-time match is the conflict policy, not interval overlap.
func (r *repository) FindConflictingBookingID(ctx context.Context, userID, date, startTime string) (string, error) {
	query := `
		SELECT b.id
		FROM bookings b
		JOIN slots s ON b.slot_id = s.id
		WHERE b.user_id = $1 AND b.date = $2 AND b.status = 'CONFIRMED' AND s.start_time = $3
		LIMIT 1
	`

	var bookingID string
	err := r.db.GetContext(ctx, &bookingID, query, userID, date, startTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", gym.ErrStoreUnavailable, err)
	}

	return bookingID, nil
}

func (r *repository) ListUserBookings(ctx context.Context, userID string) ([]Booking, error) {
	query := `
		SELECT id, user_id, slot_id, date, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gym.ErrStoreUnavailable, err)
	}

	return bookings, nil
}

func (r *repository) ListBookingsBySlot(ctx context.Context, slotID string) ([]Booking, error) {
	query := `
		SELECT id, user_id, slot_id, date, status, created_at
		FROM bookings
		WHERE slot_id = $1
		ORDER BY created_at DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, slotID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gym.ErrStoreUnavailable, err)
	}

	return bookings, nil
}
