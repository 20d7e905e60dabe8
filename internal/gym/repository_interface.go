package gym

import "context"

type Repository interface {
	CreateGym(ctx context.Context, id, name, city, ownerID string) (*Gym, error)
	GetGymByID(ctx context.Context, id string) (*Gym, error)
	ListGymsByCity(ctx context.Context, city string) ([]Gym, error)
	ListPendingGyms(ctx context.Context) ([]Gym, error)
	ApproveGym(ctx context.Context, id string) error

	CreateSlot(ctx context.Context, id, gymID, startTime, endTime string, totalSeats int) (*Slot, error)
	GetSlot(ctx context.Context, slotID string) (*Slot, error)
	ListSlotsForGym(ctx context.Context, gymID string) ([]Slot, error)
	ClaimSeat(ctx context.Context, slotID string) (bool, error)
	ReleaseSeat(ctx context.Context, slotID string) (bool, error)
}
