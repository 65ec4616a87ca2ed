package lodging

// RoomStatus represents the possible states of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// BookingStatus represents the possible states of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingCheckedIn BookingStatus = "checked_in"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// bookingTransitions is the allow-list of booking status changes.
// Completed and cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn: {BookingCompleted, BookingCancelled},
}

// InitialBookingStatus returns the status assigned to a new booking.
func InitialBookingStatus() BookingStatus {
	return BookingPending
}

// CanTransitionBooking reports whether a booking status change is allowed.
func CanTransitionBooking(from, to BookingStatus) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// BookingOpen reports whether a booking in this status still holds its
// room. Terminal statuses release the room.
func BookingOpen(s BookingStatus) bool {
	return s == BookingPending || s == BookingCheckedIn
}

// ValidRoomStatus reports whether s is one of the known room statuses.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// StayTotal computes the charge for a stay: nights times the nightly rate.
func StayTotal(nights int, nightlyRate float64) float64 {
	return float64(nights) * nightlyRate
}
