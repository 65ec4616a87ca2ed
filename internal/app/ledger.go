package app

import (
	"sync"

	"github.com/example/clerk/internal/config"
	"github.com/example/clerk/internal/core/arena"
	"github.com/example/clerk/internal/core/lending"
	"github.com/example/clerk/internal/core/lodging"
	"github.com/example/clerk/internal/core/registry"
	"github.com/example/clerk/internal/store"
)

// Ledger owns every collection. Nothing outside the service layer touches
// the collections directly, and every operation runs inside the single
// ledger lock: the domain is inherently single-writer, so one exclusive
// critical section is the whole concurrency model.
type Ledger struct {
	mu sync.Mutex

	Rooms    *store.Collection[*lodging.Room]
	Guests   *store.Collection[*lodging.Guest]
	Bookings *store.Collection[*lodging.Booking]

	Customers *store.Collection[*lending.Customer]
	Accounts  *store.Collection[*lending.Account]
	Loans     *store.Collection[*lending.Loan]

	Students    *store.Collection[*registry.Student]
	Courses     *store.Collection[*registry.Course]
	Enrollments *store.Collection[*registry.Enrollment]

	Teams       *store.Collection[*arena.Team]
	Players     *store.Collection[*arena.Player]
	Matches     *store.Collection[*arena.Match]
	Appearances *store.Collection[*arena.Appearance]
}

// NewLedger creates an empty ledger with the configured capacity ceilings.
func NewLedger(caps config.Capacities) *Ledger {
	return &Ledger{
		Rooms:    store.NewCollection[*lodging.Room]("rooms", caps.Rooms),
		Guests:   store.NewCollection[*lodging.Guest]("guests", caps.Guests),
		Bookings: store.NewCollection[*lodging.Booking]("bookings", caps.Bookings),

		Customers: store.NewCollection[*lending.Customer]("customers", caps.Customers),
		Accounts:  store.NewCollection[*lending.Account]("accounts", caps.Accounts),
		Loans:     store.NewCollection[*lending.Loan]("loans", caps.Loans),

		Students:    store.NewCollection[*registry.Student]("students", caps.Students),
		Courses:     store.NewCollection[*registry.Course]("courses", caps.Courses),
		Enrollments: store.NewCollection[*registry.Enrollment]("enrollments", caps.Enrollments),

		Teams:       store.NewCollection[*arena.Team]("teams", caps.Teams),
		Players:     store.NewCollection[*arena.Player]("players", caps.Players),
		Matches:     store.NewCollection[*arena.Match]("matches", caps.Matches),
		Appearances: store.NewCollection[*arena.Appearance]("appearances", caps.Appearances),
	}
}

// Lock takes the ledger's exclusive lock.
func (l *Ledger) Lock() { l.mu.Lock() }

// Unlock releases the ledger's exclusive lock.
func (l *Ledger) Unlock() { l.mu.Unlock() }

// adopt replaces every collection with those of a freshly restored ledger.
// Callers hold the lock; the staged ledger must be fully loaded so the
// swap is all-or-nothing.
func (l *Ledger) adopt(staged *Ledger) {
	l.Rooms = staged.Rooms
	l.Guests = staged.Guests
	l.Bookings = staged.Bookings
	l.Customers = staged.Customers
	l.Accounts = staged.Accounts
	l.Loans = staged.Loans
	l.Students = staged.Students
	l.Courses = staged.Courses
	l.Enrollments = staged.Enrollments
	l.Teams = staged.Teams
	l.Players = staged.Players
	l.Matches = staged.Matches
	l.Appearances = staged.Appearances
}
