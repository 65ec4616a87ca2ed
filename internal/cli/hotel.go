package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/clerk/internal/ports/primary"
	"github.com/example/clerk/internal/wire"
)

// HotelCmd returns the hotel command group.
func HotelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotel",
		Short: "Manage rooms, guests, and bookings",
	}

	cmd.AddCommand(hotelRoomAddCmd())
	cmd.AddCommand(hotelRoomListCmd())
	cmd.AddCommand(hotelGuestAddCmd())
	cmd.AddCommand(hotelBookCmd())
	cmd.AddCommand(hotelCheckInCmd())
	cmd.AddCommand(hotelCheckOutCmd())
	cmd.AddCommand(hotelCancelCmd())
	cmd.AddCommand(hotelMaintenanceCmd())
	cmd.AddCommand(hotelBookingListCmd())
	cmd.AddCommand(hotelOccupancyCmd())

	return cmd
}

func hotelRoomAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room-add [number]",
		Short: "Register a new room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			beds, _ := cmd.Flags().GetInt("beds")
			rate, _ := cmd.Flags().GetFloat64("rate")

			room, err := wire.HotelService().AddRoom(context.Background(), primary.AddRoomRequest{
				Number:      args[0],
				Beds:        beds,
				NightlyRate: rate,
			})
			if err != nil {
				return fmt.Errorf("failed to add room: %w", err)
			}

			fmt.Printf("✓ Added room %d: %s (%d beds, %.2f/night)\n", room.ID, room.Number, room.Beds, room.NightlyRate)
			return nil
		},
	}
	cmd.Flags().Int("beds", 1, "Number of beds")
	cmd.Flags().Float64("rate", 0, "Nightly rate")
	return cmd
}

func hotelRoomListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "room-list",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := wire.HotelService().ListRooms(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list rooms: %w", err)
			}
			if len(rooms) == 0 {
				fmt.Println("No rooms found")
				return nil
			}

			fmt.Printf("\n%-5s %-8s %-5s %-10s %s\n", "ID", "NUMBER", "BEDS", "RATE", "STATUS")
			fmt.Println("──────────────────────────────────────────────")
			for _, r := range rooms {
				fmt.Printf("%-5d %-8s %-5d %-10.2f %s\n", r.ID, r.Number, r.Beds, r.NightlyRate, statusLabel(string(r.Status)))
			}
			fmt.Println()
			return nil
		},
	}
}

func hotelGuestAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guest-add [name]",
		Short: "Register a new guest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")

			guest, err := wire.HotelService().RegisterGuest(context.Background(), args[0], email)
			if err != nil {
				return fmt.Errorf("failed to register guest: %w", err)
			}

			fmt.Printf("✓ Registered guest %d: %s\n", guest.ID, guest.Name)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Guest email")
	return cmd
}

func hotelBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book [room-id] [guest-id]",
		Short: "Book a room for a guest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}
			guestID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid guest id %q", args[1])
			}
			nights, _ := cmd.Flags().GetInt("nights")

			booking, err := wire.HotelService().CreateBooking(context.Background(), primary.CreateBookingRequest{
				RoomID:  roomID,
				GuestID: guestID,
				Nights:  nights,
			})
			if err != nil {
				return fmt.Errorf("failed to create booking: %w", err)
			}

			fmt.Printf("✓ Created booking %d: room %d, %d nights, total %.2f\n",
				booking.ID, booking.RoomID, booking.Nights, booking.TotalAmount)
			return nil
		},
	}
	cmd.Flags().Int("nights", 1, "Number of nights")
	return cmd
}

func bookingIDArg(args []string) (int, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid booking id %q", args[0])
	}
	return id, nil
}

func hotelCheckInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-in [booking-id]",
		Short: "Check a booking in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := bookingIDArg(args)
			if err != nil {
				return err
			}
			if err := wire.HotelService().CheckIn(context.Background(), id); err != nil {
				return fmt.Errorf("failed to check in: %w", err)
			}
			fmt.Printf("✓ Checked in booking %d\n", id)
			return nil
		},
	}
}

func hotelCheckOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-out [booking-id]",
		Short: "Check a booking out and release the room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := bookingIDArg(args)
			if err != nil {
				return err
			}
			if err := wire.HotelService().CheckOut(context.Background(), id); err != nil {
				return fmt.Errorf("failed to check out: %w", err)
			}
			fmt.Printf("✓ Checked out booking %d\n", id)
			return nil
		},
	}
}

func hotelCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [booking-id]",
		Short: "Cancel a booking and release the room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := bookingIDArg(args)
			if err != nil {
				return err
			}
			if err := wire.HotelService().CancelBooking(context.Background(), id); err != nil {
				return fmt.Errorf("failed to cancel booking: %w", err)
			}
			fmt.Printf("✓ Cancelled booking %d\n", id)
			return nil
		},
	}
}

func hotelMaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance [room-id]",
		Short: "Take a room out of service or return it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}
			done, _ := cmd.Flags().GetBool("done")

			if err := wire.HotelService().SetRoomMaintenance(context.Background(), roomID, !done); err != nil {
				return fmt.Errorf("failed to update room: %w", err)
			}
			if done {
				fmt.Printf("✓ Room %d returned to service\n", roomID)
			} else {
				fmt.Printf("✓ Room %d under maintenance\n", roomID)
			}
			return nil
		},
	}
	cmd.Flags().Bool("done", false, "Return the room to service")
	return cmd
}

func hotelBookingListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "booking-list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			bookings, err := wire.HotelService().ListBookings(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list bookings: %w", err)
			}
			if len(bookings) == 0 {
				fmt.Println("No bookings found")
				return nil
			}

			fmt.Printf("\n%-5s %-6s %-7s %-7s %-10s %s\n", "ID", "ROOM", "GUEST", "NIGHTS", "TOTAL", "STATUS")
			fmt.Println("────────────────────────────────────────────────────")
			for _, b := range bookings {
				fmt.Printf("%-5d %-6d %-7d %-7d %-10.2f %s\n",
					b.ID, b.RoomID, b.GuestID, b.Nights, b.TotalAmount, statusLabel(string(b.Status)))
			}
			fmt.Println()
			return nil
		},
	}
}

func hotelOccupancyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "occupancy",
		Short: "Show the occupancy report",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := wire.HotelService().Occupancy(context.Background())
			if err != nil {
				return fmt.Errorf("failed to compute occupancy: %w", err)
			}

			fmt.Printf("\nRooms:            %d\n", report.Rooms)
			for status, n := range report.ByStatus {
				fmt.Printf("  %-15s %d\n", statusLabel(string(status)), n)
			}
			fmt.Printf("Occupancy:        %.1f%%\n", report.OccupancyPercent)
			fmt.Printf("Open bookings:    %d\n", report.OpenBookings)
			fmt.Printf("Realized revenue: %.2f\n\n", report.RealizedRevenue)
			return nil
		},
	}
}
