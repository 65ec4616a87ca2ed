package lodging

// OccupancyReport is the room-status distribution plus realized revenue.
// Recomputed from current state on every call.
type OccupancyReport struct {
	Rooms            int
	ByStatus         map[RoomStatus]int
	OccupancyPercent float64 // occupied / (available + occupied), 0 when no rooms in service
	RealizedRevenue  float64 // sum of totals for completed bookings
	OpenBookings     int
}

// BuildOccupancyReport folds rooms and bookings into an OccupancyReport.
func BuildOccupancyReport(rooms []*Room, bookings []*Booking) OccupancyReport {
	report := OccupancyReport{ByStatus: make(map[RoomStatus]int)}

	inService := 0
	for _, room := range rooms {
		if !room.Active {
			continue
		}
		report.Rooms++
		report.ByStatus[room.Status]++
		if room.Status != RoomMaintenance {
			inService++
		}
	}

	for _, booking := range bookings {
		if !booking.Active {
			continue
		}
		switch {
		case booking.Status == BookingCompleted:
			report.RealizedRevenue += booking.TotalAmount
		case BookingOpen(booking.Status):
			report.OpenBookings++
		}
	}

	if inService > 0 {
		report.OccupancyPercent = 100 * float64(report.ByStatus[RoomOccupied]) / float64(inService)
	}
	return report
}
