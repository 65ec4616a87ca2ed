package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/clerk/internal/core/lending"
	"github.com/example/clerk/internal/ports/primary"
	"github.com/example/clerk/internal/store"
)

// BankServiceImpl implements the BankService interface over the ledger.
type BankServiceImpl struct {
	ledger *Ledger
	now    func() time.Time
}

// NewBankService creates a new BankService backed by the given ledger.
func NewBankService(ledger *Ledger) *BankServiceImpl {
	return &BankServiceImpl{ledger: ledger, now: time.Now}
}

// AddCustomer registers a new customer.
func (s *BankServiceImpl) AddCustomer(ctx context.Context, name, email string) (*lending.Customer, error) {
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", store.ErrInvalidInput)
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("email %q is malformed: %w", email, store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	customer := &lending.Customer{Name: name, Email: email}
	if _, err := s.ledger.Customers.Add(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// OpenAccount opens a deposit account for a customer.
func (s *BankServiceImpl) OpenAccount(ctx context.Context, customerID int, initialDeposit float64) (*lending.Account, error) {
	if initialDeposit < 0 {
		return nil, fmt.Errorf("initial deposit must not be negative: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	if !s.ledger.Customers.Has(customerID) {
		return nil, fmt.Errorf("customer %d: %w", customerID, store.ErrReferentialViolation)
	}

	account := &lending.Account{CustomerID: customerID, Balance: initialDeposit}
	if _, err := s.ledger.Accounts.Add(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Deposit credits an account.
func (s *BankServiceImpl) Deposit(ctx context.Context, accountID int, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	account, err := s.ledger.Accounts.Get(accountID)
	if err != nil {
		return err
	}
	account.Balance += amount
	return nil
}

// Withdraw debits an account. Overdrafts are rejected and the balance is
// left unchanged.
func (s *BankServiceImpl) Withdraw(ctx context.Context, accountID int, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("withdrawal amount must be positive: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	account, err := s.ledger.Accounts.Get(accountID)
	if err != nil {
		return err
	}
	if account.Balance < amount {
		return fmt.Errorf("balance %.2f is below %.2f: %w", account.Balance, amount, store.ErrInvalidInput)
	}
	account.Balance -= amount
	return nil
}

// CreateLoan creates a loan in pending status with the outstanding amount
// equal to the principal.
func (s *BankServiceImpl) CreateLoan(ctx context.Context, req primary.CreateLoanRequest) (*lending.Loan, error) {
	if req.Principal <= 0 {
		return nil, fmt.Errorf("loan principal must be positive: %w", store.ErrInvalidInput)
	}
	if req.RatePercent < 0 {
		return nil, fmt.Errorf("loan rate must not be negative: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	if !s.ledger.Customers.Has(req.CustomerID) {
		return nil, fmt.Errorf("customer %d: %w", req.CustomerID, store.ErrReferentialViolation)
	}

	loan := &lending.Loan{
		CustomerID:  req.CustomerID,
		Principal:   req.Principal,
		Outstanding: req.Principal,
		RatePercent: req.RatePercent,
		Status:      lending.InitialLoanStatus(),
		CreatedAt:   s.now(),
	}
	if _, err := s.ledger.Loans.Add(loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// TransitionLoan moves a loan along the status table. A transition not in
// the allow-list is rejected with ErrInvalidTransition and no change.
func (s *BankServiceImpl) TransitionLoan(ctx context.Context, loanID int, to lending.LoanStatus) error {
	if !lending.ValidLoanStatus(to) {
		return fmt.Errorf("unknown loan status %q: %w", to, store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()
	return s.transitionLoan(loanID, to)
}

// transitionLoan applies the loan status table. Callers hold the lock.
func (s *BankServiceImpl) transitionLoan(loanID int, to lending.LoanStatus) error {
	loan, err := s.ledger.Loans.Get(loanID)
	if err != nil {
		return err
	}
	if !lending.CanTransition(loan.Status, to) {
		return fmt.Errorf("loan %d: %s -> %s: %w", loanID, loan.Status, to, store.ErrInvalidTransition)
	}

	result := lending.ApplyTransition(to, s.now())
	loan.Status = result.NewStatus
	loan.ClosedAt = result.ClosedAt
	return nil
}

// Repay reduces an active loan's outstanding principal. Settling the full
// amount moves the loan to paid in the same operation, so the aggregate
// can never drift from the repayment that caused it.
func (s *BankServiceImpl) Repay(ctx context.Context, loanID int, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("repayment amount must be positive: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	loan, err := s.ledger.Loans.Get(loanID)
	if err != nil {
		return err
	}
	if loan.Status != lending.StatusActive {
		return fmt.Errorf("loan %d is %s, not active: %w", loanID, loan.Status, store.ErrInvalidTransition)
	}
	if amount > loan.Outstanding {
		return fmt.Errorf("repayment %.2f exceeds outstanding %.2f: %w", amount, loan.Outstanding, store.ErrInvalidInput)
	}

	loan.Outstanding -= amount
	if loan.Outstanding == 0 {
		return s.transitionLoan(loanID, lending.StatusPaid)
	}
	return nil
}

// GetLoan retrieves an active loan by id.
func (s *BankServiceImpl) GetLoan(ctx context.Context, loanID int) (*lending.Loan, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return s.ledger.Loans.Get(loanID)
}

// GetAccount retrieves an active account by id.
func (s *BankServiceImpl) GetAccount(ctx context.Context, accountID int) (*lending.Account, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return s.ledger.Accounts.Get(accountID)
}

// ListLoans lists active loans in insertion order.
func (s *BankServiceImpl) ListLoans(ctx context.Context) ([]*lending.Loan, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	var loans []*lending.Loan
	s.ledger.Loans.EachActive(func(l *lending.Loan) bool {
		loans = append(loans, l)
		return true
	})
	return loans, nil
}

// Portfolio computes the loan-book report from current state.
func (s *BankServiceImpl) Portfolio(ctx context.Context) (lending.PortfolioReport, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return lending.BuildPortfolioReport(s.ledger.Loans.Records()), nil
}

// Exposure computes per-customer outstanding principal over open loans.
func (s *BankServiceImpl) Exposure(ctx context.Context) (map[int]lending.CustomerExposure, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return lending.BuildExposure(s.ledger.Loans.Records()), nil
}
