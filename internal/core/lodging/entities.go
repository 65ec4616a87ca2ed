// Package lodging contains the pure business logic for the hotel domain:
// room and booking status machines, stay pricing, and occupancy reporting.
// No I/O.
package lodging

import (
	"time"

	"github.com/example/clerk/internal/store"
)

// Room is a bookable hotel room. Status tracks availability; a room under
// an open booking is occupied.
type Room struct {
	store.Meta
	Number      string     `json:"number"`
	Beds        int        `json:"beds"`
	NightlyRate float64    `json:"nightly_rate"`
	Status      RoomStatus `json:"status"`
}

// Guest is a registered hotel guest.
type Guest struct {
	store.Meta
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Booking ties a guest to a room for a number of nights. TotalAmount is
// fixed at creation time and survives cancellation.
type Booking struct {
	store.Meta
	RoomID      int           `json:"room_id"`
	GuestID     int           `json:"guest_id"`
	Nights      int           `json:"nights"`
	TotalAmount float64       `json:"total_amount"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
