package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"gymslot/internal/email"
	"gymslot/internal/gym"
	"gymslot/internal/logger"
	"gymslot/internal/metrics"
	"gymslot/internal/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid booking input")
	ErrNotBookingOwner = errors.New("can only cancel own bookings")
)

type Service interface {
	BookSlot(ctx context.Context, userID, slotID, gymID, date string) (*BookResult, error)
	CancelBooking(ctx context.Context, userID, bookingID, slotID string) error
	GetUserBookings(ctx context.Context, userID string) ([]Booking, error)
	GetBookingsBySlot(ctx context.Context, slotID string) ([]Booking, error)
}

type service struct {
	repo         Repository
	gymRepo      gym.Repository
	userRepo     user.Repository
	emailService *email.Service
}

func NewService(repo Repository, gymRepo gym.Repository, userRepo user.Repository, emailService *email.Service) Service {
	return &service{
		repo:         repo,
		gymRepo:      gymRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// BookSlot runs the whole allocation: conflict check with auto-cancel of the
// older booking, an atomic seat claim, and the waitlist-plus-suggestion
// fallback when the slot is full. Mutations are ordered so a store failure
// at any point leaves no booking record behind.
func (s *service) BookSlot(ctx context.Context, userID, slotID, gymID, date string) (*BookResult, error) {
	if userID == "" || slotID == "" || gymID == "" {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidInput
	}

	slot, err := s.gymRepo.GetSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot.GymID != gymID {
		return nil, ErrInvalidInput
	}

	// The newer request always wins: an existing CONFIRMED booking at the
	// same date and start time is cancelled without asking. The seat of the
	// cancelled booking is NOT released here, matching the long-standing
	// behavior of the callers this replaces. A cancellation through
	// CancelBooking is the way to get that seat back.
	conflictID, err := s.repo.FindConflictingBookingID(ctx, userID, date, slot.StartTime)
	if err != nil {
		return nil, err
	}
	if conflictID != "" {
		logger.Warn("auto-cancelling conflicting booking",
			"booking_id", conflictID, "user_id", userID, "date", date, "start_time", slot.StartTime)
		if err := s.repo.UpdateBookingStatus(ctx, conflictID, StatusCancelled); err != nil {
			return nil, err
		}
		metrics.RecordConflictAutoCancel()
	}

	claimed, err := s.gymRepo.ClaimSeat(ctx, slotID)
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		ID:     newBookingID(),
		UserID: userID,
		SlotID: slotID,
		Date:   date,
	}

	if claimed {
		booking.Status = StatusConfirmed
		inserted, err := s.repo.InsertBooking(ctx, booking)
		if err != nil {
			return nil, err
		}

		metrics.RecordBooking("confirmed")
		s.notifyConfirmed(ctx, inserted, slot)

		return &BookResult{Status: StatusConfirmed, Booking: inserted}, nil
	}

	// Slot full. Register on the waitlist instead, then look for the nearest
	// later slot at the same gym with a free seat. The suggestion is
	// advisory: nothing is booked and a lookup failure never fails the
	// waitlist registration.
	metrics.RecordSeatClaimRejection()

	booking.Status = StatusWaitlist
	inserted, err := s.repo.InsertBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	suggestion := s.suggestNearestSlot(ctx, slot.GymID, slot.StartTime)
	metrics.RecordBooking("waitlisted")
	metrics.RecordSuggestion(suggestion != nil)
	s.notifyWaitlisted(ctx, inserted, slot, suggestion)

	return &BookResult{Status: StatusWaitlist, Booking: inserted, Suggestion: suggestion}, nil
}

// suggestNearestSlot returns the first slot of the gym starting strictly
// after the given wall-clock time that still has seats, or nil. The slot
// list is ordered by start time, so the first match is the nearest one.
func (s *service) suggestNearestSlot(ctx context.Context, gymID, afterTime string) *gym.Slot {
	slots, err := s.gymRepo.ListSlotsForGym(ctx, gymID)
	if err != nil {
		logger.Error("suggestion lookup failed", "gym_id", gymID, "error", err)
		return nil
	}

	for i := range slots {
		if slots[i].StartTime > afterTime && slots[i].AvailableSeats > 0 {
			return &slots[i]
		}
	}
	return nil
}

// CancelBooking flips the booking to CANCELLED and, only when the booking
// held a seat (it was CONFIRMED), releases that seat. A WAITLIST booking
// never held one, so its cancellation leaves the counter alone. The
// status-guarded update makes a second cancel report not-found instead of
// releasing the seat again. The caller-supplied slot id must match the
// booking's own slot; the release always targets booking.SlotID, so a
// forged slot id can never inflate another slot's counter.
func (s *service) CancelBooking(ctx context.Context, userID, bookingID, slotID string) error {
	if bookingID == "" || slotID == "" {
		return ErrInvalidInput
	}

	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.UserID != userID {
		return ErrNotBookingOwner
	}
	if booking.SlotID != slotID {
		return ErrInvalidInput
	}

	if err := s.repo.UpdateBookingStatus(ctx, bookingID, StatusCancelled); err != nil {
		return err
	}

	if booking.Status == StatusConfirmed {
		released, err := s.gymRepo.ReleaseSeat(ctx, booking.SlotID)
		if err != nil {
			logger.Error("seat release failed after cancellation",
				"booking_id", bookingID, "slot_id", booking.SlotID, "error", err)
		} else if !released {
			logger.Warn("seat release skipped, slot already at capacity",
				"booking_id", bookingID, "slot_id", booking.SlotID)
		}
	}

	metrics.RecordBookingCancellation()
	s.notifyCancelled(ctx, booking)

	return nil
}

func (s *service) GetUserBookings(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.ListUserBookings(ctx, userID)
}

func (s *service) GetBookingsBySlot(ctx context.Context, slotID string) ([]Booking, error) {
	return s.repo.ListBookingsBySlot(ctx, slotID)
}

func (s *service) notifyConfirmed(ctx context.Context, b *Booking, slot *gym.Slot) {
	u, err := s.userRepo.FindByID(ctx, b.UserID)
	if err != nil || u == nil {
		return
	}
	g, err := s.gymRepo.GetGymByID(ctx, slot.GymID)
	gymName := slot.GymID
	if err == nil {
		gymName = g.Name
	}
	s.emailService.SendBookingConfirmation(ctx, u.Email, u.Name, gymName, slotWindow(slot), b.Date)
}

func (s *service) notifyWaitlisted(ctx context.Context, b *Booking, slot *gym.Slot, suggestion *gym.Slot) {
	u, err := s.userRepo.FindByID(ctx, b.UserID)
	if err != nil || u == nil {
		return
	}
	g, err := s.gymRepo.GetGymByID(ctx, slot.GymID)
	gymName := slot.GymID
	if err == nil {
		gymName = g.Name
	}
	suggested := ""
	if suggestion != nil {
		suggested = slotWindow(suggestion)
	}
	s.emailService.SendWaitlistNotice(ctx, u.Email, u.Name, gymName, slotWindow(slot), b.Date, suggested)
}

func (s *service) notifyCancelled(ctx context.Context, b *Booking) {
	u, err := s.userRepo.FindByID(ctx, b.UserID)
	if err != nil || u == nil {
		return
	}
	s.emailService.SendCancellation(ctx, u.Email, u.Name, b.ID)
}

func slotWindow(slot *gym.Slot) string {
	return slot.StartTime + " - " + slot.EndTime
}

func newBookingID() string {
	return "BKG" + strings.ToUpper(uuid.NewString()[:8])
}
