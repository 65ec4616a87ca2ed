package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/clerk/internal/core/lodging"
	"github.com/example/clerk/internal/ports/primary"
	"github.com/example/clerk/internal/store"
)

// HotelServiceImpl implements the HotelService interface over the ledger.
type HotelServiceImpl struct {
	ledger *Ledger
	now    func() time.Time
}

// NewHotelService creates a new HotelService backed by the given ledger.
func NewHotelService(ledger *Ledger) *HotelServiceImpl {
	return &HotelServiceImpl{ledger: ledger, now: time.Now}
}

// AddRoom registers a new room.
func (s *HotelServiceImpl) AddRoom(ctx context.Context, req primary.AddRoomRequest) (*lodging.Room, error) {
	if req.Number == "" {
		return nil, fmt.Errorf("room number is required: %w", store.ErrInvalidInput)
	}
	if req.Beds < 1 {
		return nil, fmt.Errorf("room needs at least one bed: %w", store.ErrInvalidInput)
	}
	if req.NightlyRate < 0 {
		return nil, fmt.Errorf("nightly rate must not be negative: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	room := &lodging.Room{
		Number:      req.Number,
		Beds:        req.Beds,
		NightlyRate: req.NightlyRate,
		Status:      lodging.RoomAvailable,
	}
	if _, err := s.ledger.Rooms.Add(room); err != nil {
		return nil, err
	}
	return room, nil
}

// RegisterGuest registers a new guest.
func (s *HotelServiceImpl) RegisterGuest(ctx context.Context, name, email string) (*lodging.Guest, error) {
	if name == "" {
		return nil, fmt.Errorf("guest name is required: %w", store.ErrInvalidInput)
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("email %q is malformed: %w", email, store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	guest := &lodging.Guest{Name: name, Email: email}
	if _, err := s.ledger.Guests.Add(guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// CreateBooking books an available room for a guest. The total amount is
// computed once from the room's current rate; the room flips to occupied
// in the same operation.
func (s *HotelServiceImpl) CreateBooking(ctx context.Context, req primary.CreateBookingRequest) (*lodging.Booking, error) {
	if req.Nights < 1 {
		return nil, fmt.Errorf("booking needs at least one night: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	room, err := s.ledger.Rooms.Get(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("room %d: %w", req.RoomID, store.ErrReferentialViolation)
	}
	if !s.ledger.Guests.Has(req.GuestID) {
		return nil, fmt.Errorf("guest %d: %w", req.GuestID, store.ErrReferentialViolation)
	}
	if room.Status != lodging.RoomAvailable {
		return nil, fmt.Errorf("room %s is %s: %w", room.Number, room.Status, store.ErrInvalidInput)
	}

	booking := &lodging.Booking{
		RoomID:      req.RoomID,
		GuestID:     req.GuestID,
		Nights:      req.Nights,
		TotalAmount: lodging.StayTotal(req.Nights, room.NightlyRate),
		Status:      lodging.InitialBookingStatus(),
		CreatedAt:   s.now(),
	}
	if _, err := s.ledger.Bookings.Add(booking); err != nil {
		return nil, err
	}

	room.Status = lodging.RoomOccupied
	return booking, nil
}

// CheckIn moves a pending booking to checked_in.
func (s *HotelServiceImpl) CheckIn(ctx context.Context, bookingID int) error {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	_, err := s.transitionBooking(bookingID, lodging.BookingCheckedIn)
	return err
}

// CheckOut completes a checked-in booking and releases the room.
func (s *HotelServiceImpl) CheckOut(ctx context.Context, bookingID int) error {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	booking, err := s.transitionBooking(bookingID, lodging.BookingCompleted)
	if err != nil {
		return err
	}
	s.releaseRoom(booking.RoomID)
	return nil
}

// CancelBooking cancels an open booking and releases the room. The
// booking's total amount is never recomputed.
func (s *HotelServiceImpl) CancelBooking(ctx context.Context, bookingID int) error {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	booking, err := s.transitionBooking(bookingID, lodging.BookingCancelled)
	if err != nil {
		return err
	}
	s.releaseRoom(booking.RoomID)
	return nil
}

// transitionBooking applies the booking status table. Callers hold the lock.
func (s *HotelServiceImpl) transitionBooking(bookingID int, to lodging.BookingStatus) (*lodging.Booking, error) {
	booking, err := s.ledger.Bookings.Get(bookingID)
	if err != nil {
		return nil, err
	}
	if !lodging.CanTransitionBooking(booking.Status, to) {
		return nil, fmt.Errorf("booking %d: %s -> %s: %w", bookingID, booking.Status, to, store.ErrInvalidTransition)
	}
	booking.Status = to
	return booking, nil
}

// releaseRoom returns an occupied room to available. Rooms under
// maintenance stay as they are. Callers hold the lock.
func (s *HotelServiceImpl) releaseRoom(roomID int) {
	room, err := s.ledger.Rooms.Get(roomID)
	if err == nil && room.Status == lodging.RoomOccupied {
		room.Status = lodging.RoomAvailable
	}
}

// SetRoomMaintenance toggles a room in or out of maintenance. Occupied
// rooms cannot be taken out of service.
func (s *HotelServiceImpl) SetRoomMaintenance(ctx context.Context, roomID int, underMaintenance bool) error {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	room, err := s.ledger.Rooms.Get(roomID)
	if err != nil {
		return err
	}

	if underMaintenance {
		if room.Status == lodging.RoomOccupied {
			return fmt.Errorf("room %s is occupied: %w", room.Number, store.ErrInvalidTransition)
		}
		room.Status = lodging.RoomMaintenance
		return nil
	}
	if room.Status == lodging.RoomMaintenance {
		room.Status = lodging.RoomAvailable
	}
	return nil
}

// GetBooking retrieves an active booking by id.
func (s *HotelServiceImpl) GetBooking(ctx context.Context, bookingID int) (*lodging.Booking, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return s.ledger.Bookings.Get(bookingID)
}

// GetRoom retrieves an active room by id.
func (s *HotelServiceImpl) GetRoom(ctx context.Context, roomID int) (*lodging.Room, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return s.ledger.Rooms.Get(roomID)
}

// ListRooms lists active rooms in insertion order.
func (s *HotelServiceImpl) ListRooms(ctx context.Context) ([]*lodging.Room, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	var rooms []*lodging.Room
	s.ledger.Rooms.EachActive(func(r *lodging.Room) bool {
		rooms = append(rooms, r)
		return true
	})
	return rooms, nil
}

// ListBookings lists active bookings in insertion order.
func (s *HotelServiceImpl) ListBookings(ctx context.Context) ([]*lodging.Booking, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	var bookings []*lodging.Booking
	s.ledger.Bookings.EachActive(func(b *lodging.Booking) bool {
		bookings = append(bookings, b)
		return true
	})
	return bookings, nil
}

// Occupancy computes the occupancy report from current state.
func (s *HotelServiceImpl) Occupancy(ctx context.Context) (lodging.OccupancyReport, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return lodging.BuildOccupancyReport(s.ledger.Rooms.Records(), s.ledger.Bookings.Records()), nil
}
