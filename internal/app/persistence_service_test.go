package app

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/example/clerk/internal/adapters/snapshot"
	"github.com/example/clerk/internal/adapters/sqlite"
	"github.com/example/clerk/internal/config"
	"github.com/example/clerk/internal/core/lending"
	"github.com/example/clerk/internal/ports/primary"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func setupPersistence(t *testing.T, ledger *Ledger, caps config.Capacities) *PersistenceServiceImpl {
	t.Helper()

	files, err := snapshot.NewFileStore(t.TempDir(), quietLogger())
	if err != nil {
		t.Fatalf("failed to create snapshot store: %v", err)
	}

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewPersistenceService(ledger, caps, files, sqlite.NewArchiveStore(db), quietLogger())
}

// populate fills the ledger with a few records across all four domains,
// including a soft-deleted one.
func populate(t *testing.T, ledger *Ledger) {
	t.Helper()
	ctx := context.Background()

	hotel := NewHotelService(ledger)
	room, _ := hotel.AddRoom(ctx, primary.AddRoomRequest{Number: "101", Beds: 2, NightlyRate: 100})
	guest, _ := hotel.RegisterGuest(ctx, "Ada", "ada@example.com")
	booking, _ := hotel.CreateBooking(ctx, primary.CreateBookingRequest{RoomID: room.ID, GuestID: guest.ID, Nights: 3})
	hotel.CancelBooking(ctx, booking.ID)

	bank := NewBankService(ledger)
	customer, _ := bank.AddCustomer(ctx, "Grace", "grace@example.com")
	loan, _ := bank.CreateLoan(ctx, primary.CreateLoanRequest{CustomerID: customer.ID, Principal: 1000, RatePercent: 4})
	bank.TransitionLoan(ctx, loan.ID, lending.StatusApproved)

	uni := NewUniversityService(ledger)
	course, _ := uni.AddCourse(ctx, primary.AddCourseRequest{Code: "CS101", Title: "Algorithms", Credits: 3, Seats: 10})
	student, _ := uni.AddStudent(ctx, "Linus", "")
	enrollment, _ := uni.Enroll(ctx, student.ID, course.ID)
	uni.FinalizeGrade(ctx, enrollment.ID, 3.7)

	arenaSvc := NewArenaService(ledger)
	reds, _ := arenaSvc.AddTeam(ctx, "Reds", "RED")
	blues, _ := arenaSvc.AddTeam(ctx, "Blues", "BLU")
	match, _ := arenaSvc.ScheduleMatch(ctx, reds.ID, blues.ID)
	arenaSvc.RecordResult(ctx, match.ID, 2, 0)

	// One soft-deleted record to prove the flag survives persistence.
	ledger.Guests.SoftDelete(guest.ID)
}

func assertRestored(t *testing.T, ledger *Ledger) {
	t.Helper()

	if ledger.Rooms.Len() != 1 || ledger.Bookings.Len() != 1 || ledger.Loans.Len() != 1 {
		t.Fatalf("restored counts: rooms=%d bookings=%d loans=%d, want 1 each",
			ledger.Rooms.Len(), ledger.Bookings.Len(), ledger.Loans.Len())
	}

	booking, err := ledger.Bookings.Get(1)
	if err != nil {
		t.Fatalf("restored booking missing: %v", err)
	}
	if booking.TotalAmount != 300 {
		t.Errorf("restored booking total = %v, want 300", booking.TotalAmount)
	}

	loan, _ := ledger.Loans.Get(1)
	if loan.Status != lending.StatusApproved {
		t.Errorf("restored loan status = %q, want %q", loan.Status, lending.StatusApproved)
	}

	// The soft delete must survive the round trip.
	if _, err := ledger.Guests.Get(1); err == nil {
		t.Error("soft-deleted guest became active after restore")
	}
	if ledger.Guests.Len() != 1 {
		t.Errorf("guests len = %d, want 1 (record kept physically)", ledger.Guests.Len())
	}

	enrollment, _ := ledger.Enrollments.Get(1)
	if enrollment.GradePoints != 3.7 {
		t.Errorf("restored grade = %v, want 3.7", enrollment.GradePoints)
	}
}

func TestPersistence_SnapshotRoundTrip(t *testing.T) {
	caps := config.DefaultCapacities()
	source := NewLedger(caps)
	populate(t, source)

	svc := setupPersistence(t, source, caps)
	ctx := context.Background()

	if err := svc.SaveAll(ctx); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	// Restore into a fresh ledger backed by the same stores.
	restored := NewLedger(caps)
	restoreSvc := NewPersistenceService(restored, caps, svc.files, svc.archive, quietLogger())
	if err := restoreSvc.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	assertRestored(t, restored)
}

func TestPersistence_SnapshotRoundTripEmpty(t *testing.T) {
	caps := config.DefaultCapacities()
	source := NewLedger(caps)

	svc := setupPersistence(t, source, caps)
	ctx := context.Background()

	if err := svc.SaveAll(ctx); err != nil {
		t.Fatalf("SaveAll of empty ledger failed: %v", err)
	}

	restored := NewLedger(caps)
	restoreSvc := NewPersistenceService(restored, caps, svc.files, svc.archive, quietLogger())
	if err := restoreSvc.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll of empty snapshot failed: %v", err)
	}
	if restored.Rooms.Len() != 0 || restored.Appearances.Len() != 0 {
		t.Error("empty round trip produced records")
	}
}

func TestPersistence_SnapshotRoundTripNearCapacity(t *testing.T) {
	caps := config.Capacities{Rooms: 5, Guests: 5, Bookings: 5, Customers: 5, Accounts: 5,
		Loans: 5, Students: 5, Courses: 5, Enrollments: 5, Teams: 5, Players: 5, Matches: 5, Appearances: 5}
	source := NewLedger(caps)

	hotel := NewHotelService(source)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := hotel.AddRoom(ctx, primary.AddRoomRequest{Number: "r", Beds: 1, NightlyRate: 10}); err != nil {
			t.Fatalf("AddRoom %d failed: %v", i, err)
		}
	}

	svc := setupPersistence(t, source, caps)
	if err := svc.SaveAll(ctx); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	restored := NewLedger(caps)
	restoreSvc := NewPersistenceService(restored, caps, svc.files, svc.archive, quietLogger())
	if err := restoreSvc.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if restored.Rooms.Len() != 5 {
		t.Errorf("restored rooms = %d, want 5", restored.Rooms.Len())
	}
}

func TestPersistence_LoadAllIsAllOrNothing(t *testing.T) {
	caps := config.DefaultCapacities()
	source := NewLedger(caps)
	populate(t, source)

	svc := setupPersistence(t, source, caps)
	ctx := context.Background()
	// Nothing was ever saved: the load must fail and leave live state alone.
	if err := svc.LoadAll(ctx); err == nil {
		t.Fatal("LoadAll with no snapshots succeeded, want error")
	}
	if source.Rooms.Len() != 1 {
		t.Errorf("failed LoadAll clobbered live state: rooms = %d, want 1", source.Rooms.Len())
	}
}

func TestPersistence_ArchiveRoundTrip(t *testing.T) {
	caps := config.DefaultCapacities()
	source := NewLedger(caps)
	populate(t, source)

	svc := setupPersistence(t, source, caps)
	ctx := context.Background()

	if err := svc.ExportArchive(ctx); err != nil {
		t.Fatalf("ExportArchive failed: %v", err)
	}

	restored := NewLedger(caps)
	restoreSvc := NewPersistenceService(restored, caps, svc.files, svc.archive, quietLogger())
	if err := restoreSvc.ImportArchive(ctx); err != nil {
		t.Fatalf("ImportArchive failed: %v", err)
	}
	assertRestored(t, restored)
}
