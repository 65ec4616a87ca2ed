package lending

import (
	"time"

	"github.com/example/clerk/internal/store"
)

// Customer is a bank customer. Accounts and loans reference it by id.
type Customer struct {
	store.Meta
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Account is a deposit account owned by one customer.
type Account struct {
	store.Meta
	CustomerID int     `json:"customer_id"`
	Balance    float64 `json:"balance"`
}

// Loan is a lent principal tracked through the loan status machine.
// OutstandingPrincipal is reduced by repayments; status changes go through
// the transition table only.
type Loan struct {
	store.Meta
	CustomerID  int        `json:"customer_id"`
	Principal   float64    `json:"principal"`
	Outstanding float64    `json:"outstanding"`
	RatePercent float64    `json:"rate_percent"`
	Status      LoanStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}
