package gym

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	ErrGymNotFound      = errors.New("gym not found")
	ErrSlotNotFound     = errors.New("slot not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateGym(ctx context.Context, id, name, city, ownerID string) (*Gym, error) {
	query := `
		INSERT INTO gyms (id, name, city, owner_id, approved)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id, name, city, owner_id, approved, created_at
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, id, name, city, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &gym, nil
}

func (r *repository) GetGymByID(ctx context.Context, id string) (*Gym, error) {
	query := `
		SELECT id, name, city, owner_id, approved, created_at
		FROM gyms
		WHERE id = $1
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &gym, nil
}

func (r *repository) ListGymsByCity(ctx context.Context, city string) ([]Gym, error) {
	query := `
		SELECT id, name, city, owner_id, approved, created_at
		FROM gyms
		WHERE city = $1 AND approved = true
		ORDER BY name ASC
	`

	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, query, city)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return gyms, nil
}

func (r *repository) ListPendingGyms(ctx context.Context) ([]Gym, error) {
	query := `
		SELECT id, name, city, owner_id, approved, created_at
		FROM gyms
		WHERE approved = false
		ORDER BY created_at ASC
	`

	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return gyms, nil
}

func (r *repository) ApproveGym(ctx context.Context, id string) error {
	query := `
		UPDATE gyms
		SET approved = true
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if rowsAffected == 0 {
		return ErrGymNotFound
	}

	return nil
}

func (r *repository) CreateSlot(ctx context.Context, id, gymID, startTime, endTime string, totalSeats int) (*Slot, error) {
	query := `
		INSERT INTO slots (id, gym_id, start_time, end_time, total_seats, available_seats)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, gym_id, start_time, end_time, total_seats, available_seats, created_at
	`

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, id, gymID, startTime, endTime, totalSeats)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &slot, nil
}

func (r *repository) GetSlot(ctx context.Context, slotID string) (*Slot, error) {
	query := `
		SELECT id, gym_id, start_time, end_time, total_seats, available_seats, created_at
		FROM slots
		WHERE id = $1
	`

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &slot, nil
}

// ListSlotsForGym returns slots ordered by start time ascending. The
// nearest-slot suggestion search relies on this ordering.
func (r *repository) ListSlotsForGym(ctx context.Context, gymID string) ([]Slot, error) {
	query := `
		SELECT id, gym_id, start_time, end_time, total_seats, available_seats, created_at
		FROM slots
		WHERE gym_id = $1
		ORDER BY start_time ASC
	`

	var slots []Slot
	err := r.db.SelectContext(ctx, &slots, query, gymID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return slots, nil
}

// ClaimSeat decrements the available-seat counter if and only if a seat is
// left. The conditional UPDATE is the only synchronization on the counter:
// two concurrent claims on the last seat resolve to one winner at the database.
func (r *repository) ClaimSeat(ctx context.Context, slotID string) (bool, error) {
	query := `
		UPDATE slots
		SET available_seats = available_seats - 1
		WHERE id = $1 AND available_seats > 0
	`

	result, err := r.db.ExecContext(ctx, query, slotID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return rowsAffected > 0, nil
}

// ReleaseSeat increments the counter, capped at total_seats so a stray
// release can never push availability above capacity.
func (r *repository) ReleaseSeat(ctx context.Context, slotID string) (bool, error) {
	query := `
		UPDATE slots
		SET available_seats = available_seats + 1
		WHERE id = $1 AND available_seats < total_seats
	`

	result, err := r.db.ExecContext(ctx, query, slotID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return rowsAffected > 0, nil
}
