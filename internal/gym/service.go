package gym

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotInvalid = errors.New("invalid slot definition")
	ErrNotGymOwner = errors.New("gym belongs to another owner")
	ErrGymNotLive  = errors.New("gym is not approved yet")
)

type Service interface {
	RegisterGym(ctx context.Context, ownerID string, req CreateGymRequest) (*Gym, error)
	GetGymByID(ctx context.Context, id string) (*Gym, error)
	ListGymsByCity(ctx context.Context, city string) ([]Gym, error)
	ListPendingGyms(ctx context.Context) ([]Gym, error)
	ApproveGym(ctx context.Context, id string) error
	CreateSlot(ctx context.Context, ownerID, gymID string, req CreateSlotRequest) (*Slot, error)
	ListSlots(ctx context.Context, gymID string) ([]Slot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) RegisterGym(ctx context.Context, ownerID string, req CreateGymRequest) (*Gym, error) {
	return s.repo.CreateGym(ctx, newGymID(), req.Name, req.City, ownerID)
}

func (s *service) GetGymByID(ctx context.Context, id string) (*Gym, error) {
	return s.repo.GetGymByID(ctx, id)
}

func (s *service) ListGymsByCity(ctx context.Context, city string) ([]Gym, error) {
	return s.repo.ListGymsByCity(ctx, city)
}

func (s *service) ListPendingGyms(ctx context.Context) ([]Gym, error) {
	return s.repo.ListPendingGyms(ctx)
}

func (s *service) ApproveGym(ctx context.Context, id string) error {
	return s.repo.ApproveGym(ctx, id)
}

func (s *service) CreateSlot(ctx context.Context, ownerID, gymID string, req CreateSlotRequest) (*Slot, error) {
	gym, err := s.repo.GetGymByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	if gym.OwnerID != ownerID {
		return nil, ErrNotGymOwner
	}
	if !gym.Approved {
		return nil, ErrGymNotLive
	}

	start, err := ParseWallClock(req.StartTime)
	if err != nil {
		return nil, ErrSlotInvalid
	}
	end, err := ParseWallClock(req.EndTime)
	if err != nil {
		return nil, ErrSlotInvalid
	}

	if end <= start {
		return nil, ErrSlotInvalid
	}
	if req.TotalSeats <= 0 {
		return nil, ErrSlotInvalid
	}

	return s.repo.CreateSlot(ctx, newSlotID(), gymID, start, end, req.TotalSeats)
}

func (s *service) ListSlots(ctx context.Context, gymID string) ([]Slot, error) {
	_, err := s.repo.GetGymByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListSlotsForGym(ctx, gymID)
}

// ParseWallClock normalizes an "HH:MM" wall-clock string. Zero-padded output
// keeps lexicographic comparison consistent with chronological order.
func ParseWallClock(v string) (string, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(v))
	if err != nil {
		return "", err
	}
	return parsed.Format("15:04"), nil
}

func newGymID() string {
	return "GYM" + strings.ToUpper(uuid.NewString()[:8])
}

func newSlotID() string {
	return "SLT" + strings.ToUpper(uuid.NewString()[:8])
}
