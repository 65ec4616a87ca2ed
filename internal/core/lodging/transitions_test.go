package lodging

import "testing"

func TestCanTransitionBooking(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to checked_in", BookingPending, BookingCheckedIn, true},
		{"pending to cancelled", BookingPending, BookingCancelled, true},
		{"pending to completed", BookingPending, BookingCompleted, false},
		{"checked_in to completed", BookingCheckedIn, BookingCompleted, true},
		{"checked_in to cancelled", BookingCheckedIn, BookingCancelled, true},
		{"completed to cancelled", BookingCompleted, BookingCancelled, false},
		{"cancelled to checked_in", BookingCancelled, BookingCheckedIn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionBooking(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransitionBooking(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestStayTotal(t *testing.T) {
	if got := StayTotal(3, 100); got != 300 {
		t.Errorf("StayTotal(3, 100) = %v, want 300", got)
	}
	if got := StayTotal(1, 79.5); got != 79.5 {
		t.Errorf("StayTotal(1, 79.5) = %v, want 79.5", got)
	}
}

func TestBuildOccupancyReport(t *testing.T) {
	rooms := []*Room{
		{Status: RoomOccupied},
		{Status: RoomAvailable},
		{Status: RoomAvailable},
		{Status: RoomMaintenance},
	}
	for i, r := range rooms {
		r.ID = i + 1
		r.Meta.Active = true
	}

	bookings := []*Booking{
		{Status: BookingCompleted, TotalAmount: 300},
		{Status: BookingCompleted, TotalAmount: 150},
		{Status: BookingCancelled, TotalAmount: 500},
		{Status: BookingPending, TotalAmount: 200},
	}
	for i, b := range bookings {
		b.ID = i + 1
		b.Meta.Active = true
	}

	report := BuildOccupancyReport(rooms, bookings)

	if report.Rooms != 4 {
		t.Errorf("Rooms = %d, want 4", report.Rooms)
	}
	// Maintenance rooms are out of service: 1 occupied of 3 in service.
	want := 100.0 / 3.0
	if diff := report.OccupancyPercent - want; diff > 0.001 || diff < -0.001 {
		t.Errorf("OccupancyPercent = %v, want %v", report.OccupancyPercent, want)
	}
	// Cancelled bookings never count toward revenue.
	if report.RealizedRevenue != 450 {
		t.Errorf("RealizedRevenue = %v, want 450", report.RealizedRevenue)
	}
	if report.OpenBookings != 1 {
		t.Errorf("OpenBookings = %d, want 1", report.OpenBookings)
	}
}

func TestBuildOccupancyReportEmpty(t *testing.T) {
	report := BuildOccupancyReport(nil, nil)
	if report.OccupancyPercent != 0 {
		t.Errorf("OccupancyPercent = %v for empty hotel, want 0", report.OccupancyPercent)
	}
}
