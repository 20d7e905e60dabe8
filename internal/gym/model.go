package gym

import "time"

type Gym struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	City      string    `db:"city" json:"city"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	Approved  bool      `db:"approved" json:"approved"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Slot is a fixed time window at a gym with finite seat capacity.
// AvailableSeats is mutated only through ClaimSeat and ReleaseSeat.
type Slot struct {
	ID             string    `db:"id" json:"id"`
	GymID          string    `db:"gym_id" json:"gym_id"`
	StartTime      string    `db:"start_time" json:"start_time"` // wall clock "HH:MM"
	EndTime        string    `db:"end_time" json:"end_time"`
	TotalSeats     int       `db:"total_seats" json:"total_seats"`
	AvailableSeats int       `db:"available_seats" json:"available_seats"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreateGymRequest struct {
	Name string `json:"name" binding:"required"`
	City string `json:"city" binding:"required"`
}

type CreateSlotRequest struct {
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	TotalSeats int    `json:"total_seats" binding:"required,min=1"`
}
