package primary

import (
	"context"

	"github.com/example/clerk/internal/core/lending"
)

// BankService defines the primary port for the bank domain.
type BankService interface {
	// AddCustomer registers a new customer.
	AddCustomer(ctx context.Context, name, email string) (*lending.Customer, error)

	// OpenAccount opens a deposit account for a customer.
	OpenAccount(ctx context.Context, customerID int, initialDeposit float64) (*lending.Account, error)

	// Deposit credits an account. The amount must be positive.
	Deposit(ctx context.Context, accountID int, amount float64) error

	// Withdraw debits an account. Overdrafts are rejected.
	Withdraw(ctx context.Context, accountID int, amount float64) error

	// CreateLoan creates a loan in pending status.
	CreateLoan(ctx context.Context, req CreateLoanRequest) (*lending.Loan, error)

	// TransitionLoan moves a loan along the status table. Disallowed
	// transitions are rejected and the loan is left unchanged.
	TransitionLoan(ctx context.Context, loanID int, to lending.LoanStatus) error

	// Repay reduces an active loan's outstanding principal; reaching zero
	// settles the loan as paid in the same operation.
	Repay(ctx context.Context, loanID int, amount float64) error

	// GetLoan retrieves an active loan by id.
	GetLoan(ctx context.Context, loanID int) (*lending.Loan, error)

	// GetAccount retrieves an active account by id.
	GetAccount(ctx context.Context, accountID int) (*lending.Account, error)

	// ListLoans lists active loans in insertion order.
	ListLoans(ctx context.Context) ([]*lending.Loan, error)

	// Portfolio computes the loan-book report from current state.
	Portfolio(ctx context.Context) (lending.PortfolioReport, error)

	// Exposure computes per-customer outstanding principal over open loans.
	Exposure(ctx context.Context) (map[int]lending.CustomerExposure, error)
}

// CreateLoanRequest contains parameters for creating a loan.
type CreateLoanRequest struct {
	CustomerID  int
	Principal   float64
	RatePercent float64
}
