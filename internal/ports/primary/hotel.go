// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	"github.com/example/clerk/internal/core/lodging"
)

// HotelService defines the primary port for the hotel domain.
type HotelService interface {
	// AddRoom registers a new room.
	AddRoom(ctx context.Context, req AddRoomRequest) (*lodging.Room, error)

	// RegisterGuest registers a new guest.
	RegisterGuest(ctx context.Context, name, email string) (*lodging.Guest, error)

	// CreateBooking books an available room for a guest. The total amount
	// is fixed at creation and the room becomes occupied.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*lodging.Booking, error)

	// CheckIn moves a pending booking to checked_in.
	CheckIn(ctx context.Context, bookingID int) error

	// CheckOut completes a checked-in booking and releases the room.
	CheckOut(ctx context.Context, bookingID int) error

	// CancelBooking cancels an open booking and releases the room. The
	// booking's total amount is left untouched.
	CancelBooking(ctx context.Context, bookingID int) error

	// SetRoomMaintenance takes an available room out of service or returns
	// it to service.
	SetRoomMaintenance(ctx context.Context, roomID int, underMaintenance bool) error

	// GetBooking retrieves an active booking by id.
	GetBooking(ctx context.Context, bookingID int) (*lodging.Booking, error)

	// GetRoom retrieves an active room by id.
	GetRoom(ctx context.Context, roomID int) (*lodging.Room, error)

	// ListRooms lists active rooms in insertion order.
	ListRooms(ctx context.Context) ([]*lodging.Room, error)

	// ListBookings lists active bookings in insertion order.
	ListBookings(ctx context.Context) ([]*lodging.Booking, error)

	// Occupancy computes the occupancy report from current state.
	Occupancy(ctx context.Context) (lodging.OccupancyReport, error)
}

// AddRoomRequest contains parameters for registering a room.
type AddRoomRequest struct {
	Number      string
	Beds        int
	NightlyRate float64
}

// CreateBookingRequest contains parameters for creating a booking.
type CreateBookingRequest struct {
	RoomID  int
	GuestID int
	Nights  int
}
