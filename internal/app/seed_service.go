package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/example/clerk/internal/core/lending"
	"github.com/example/clerk/internal/ports/primary"
)

// SeedService populates the ledger with demonstration data through the
// regular services, so seeded state obeys every invariant the services
// enforce. Deterministic for a given seed; demo only, never used by
// correctness tests.
type SeedService struct {
	hotel      primary.HotelService
	bank       primary.BankService
	university primary.UniversityService
	arena      primary.ArenaService
}

// NewSeedService creates a SeedService driving the given services.
func NewSeedService(hotel primary.HotelService, bank primary.BankService, university primary.UniversityService, arenaSvc primary.ArenaService) *SeedService {
	return &SeedService{hotel: hotel, bank: bank, university: university, arena: arenaSvc}
}

var seedNames = []string{"Avery", "Blake", "Casey", "Drew", "Ellis", "Finley", "Gray", "Harper", "Indigo", "Jules"}

// Seed fills all four domains with sample records.
func (s *SeedService) Seed(ctx context.Context, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	if err := s.seedHotel(ctx, rng); err != nil {
		return fmt.Errorf("failed to seed hotel: %w", err)
	}
	if err := s.seedBank(ctx, rng); err != nil {
		return fmt.Errorf("failed to seed bank: %w", err)
	}
	if err := s.seedUniversity(ctx, rng); err != nil {
		return fmt.Errorf("failed to seed university: %w", err)
	}
	if err := s.seedArena(ctx, rng); err != nil {
		return fmt.Errorf("failed to seed arena: %w", err)
	}
	return nil
}

func (s *SeedService) seedHotel(ctx context.Context, rng *rand.Rand) error {
	var roomIDs, guestIDs []int
	for i := 0; i < 8; i++ {
		room, err := s.hotel.AddRoom(ctx, primary.AddRoomRequest{
			Number:      fmt.Sprintf("%d0%d", 1+i/4, 1+i%4),
			Beds:        1 + rng.Intn(3),
			NightlyRate: float64(60 + rng.Intn(140)),
		})
		if err != nil {
			return err
		}
		roomIDs = append(roomIDs, room.ID)
	}
	for i := 0; i < 5; i++ {
		name := seedNames[rng.Intn(len(seedNames))]
		guest, err := s.hotel.RegisterGuest(ctx, name, fmt.Sprintf("%s%d@example.com", name, i))
		if err != nil {
			return err
		}
		guestIDs = append(guestIDs, guest.ID)
	}
	for i := 0; i < 4; i++ {
		booking, err := s.hotel.CreateBooking(ctx, primary.CreateBookingRequest{
			RoomID:  roomIDs[i],
			GuestID: guestIDs[rng.Intn(len(guestIDs))],
			Nights:  1 + rng.Intn(6),
		})
		if err != nil {
			return err
		}
		if i == 0 {
			if err := s.hotel.CancelBooking(ctx, booking.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SeedService) seedBank(ctx context.Context, rng *rand.Rand) error {
	for i := 0; i < 4; i++ {
		name := seedNames[rng.Intn(len(seedNames))]
		customer, err := s.bank.AddCustomer(ctx, name, fmt.Sprintf("%s%d@bank.example.com", name, i))
		if err != nil {
			return err
		}
		if _, err := s.bank.OpenAccount(ctx, customer.ID, float64(100+rng.Intn(5000))); err != nil {
			return err
		}
		loan, err := s.bank.CreateLoan(ctx, primary.CreateLoanRequest{
			CustomerID:  customer.ID,
			Principal:   float64(1000 * (1 + rng.Intn(20))),
			RatePercent: 2 + rng.Float64()*8,
		})
		if err != nil {
			return err
		}
		// Walk a random prefix of the happy path.
		steps := []lending.LoanStatus{lending.StatusApproved, lending.StatusActive, lending.StatusPaid}
		for _, status := range steps[:rng.Intn(len(steps)+1)] {
			if err := s.bank.TransitionLoan(ctx, loan.ID, status); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SeedService) seedUniversity(ctx context.Context, rng *rand.Rand) error {
	courseReqs := []primary.AddCourseRequest{
		{Code: "CS101", Title: "Algorithms", Credits: 3, Seats: 30},
		{Code: "MA201", Title: "Calculus II", Credits: 4, Seats: 40},
		{Code: "PH110", Title: "Mechanics", Credits: 3, Seats: 25},
	}
	var courseIDs []int
	for _, req := range courseReqs {
		course, err := s.university.AddCourse(ctx, req)
		if err != nil {
			return err
		}
		courseIDs = append(courseIDs, course.ID)
	}

	for i := 0; i < 6; i++ {
		name := seedNames[rng.Intn(len(seedNames))]
		student, err := s.university.AddStudent(ctx, name, fmt.Sprintf("%s%d@uni.example.edu", name, i))
		if err != nil {
			return err
		}
		for _, courseID := range courseIDs[:1+rng.Intn(len(courseIDs))] {
			enrollment, err := s.university.Enroll(ctx, student.ID, courseID)
			if err != nil {
				return err
			}
			if rng.Intn(2) == 0 {
				points := float64(rng.Intn(9)) / 2.0 // 0.0 .. 4.0 in half steps
				if err := s.university.FinalizeGrade(ctx, enrollment.ID, points); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *SeedService) seedArena(ctx context.Context, rng *rand.Rand) error {
	teamNames := []string{"Crimson Foxes", "Azure Owls", "Golden Boars", "Emerald Wolves"}
	var teamIDs []int
	playerIDs := make(map[int][]int)

	for i, name := range teamNames {
		team, err := s.arena.AddTeam(ctx, name, fmt.Sprintf("T%d", i+1))
		if err != nil {
			return err
		}
		teamIDs = append(teamIDs, team.ID)
		for p := 0; p < 3; p++ {
			player, err := s.arena.SignPlayer(ctx, team.ID, fmt.Sprintf("%s-%d", seedNames[rng.Intn(len(seedNames))], p))
			if err != nil {
				return err
			}
			playerIDs[team.ID] = append(playerIDs[team.ID], player.ID)
		}
	}

	for i := 0; i < len(teamIDs); i++ {
		for j := i + 1; j < len(teamIDs); j++ {
			match, err := s.arena.ScheduleMatch(ctx, teamIDs[i], teamIDs[j])
			if err != nil {
				return err
			}
			if rng.Intn(4) == 0 {
				continue // leave some fixtures unplayed
			}
			home, away := rng.Intn(5), rng.Intn(5)
			if err := s.arena.RecordResult(ctx, match.ID, home, away); err != nil {
				return err
			}
			for _, playerID := range playerIDs[teamIDs[i]][:2] {
				if err := s.arena.RecordAppearance(ctx, match.ID, playerID, rng.Intn(3)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
