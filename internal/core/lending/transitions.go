// Package lending contains the pure business logic for the bank domain:
// the loan status machine, interest math, and portfolio aggregation. No I/O.
package lending

import "time"

// LoanStatus represents the possible states of a loan.
type LoanStatus string

const (
	StatusPending   LoanStatus = "pending"
	StatusApproved  LoanStatus = "approved"
	StatusRejected  LoanStatus = "rejected"
	StatusActive    LoanStatus = "active"
	StatusPaid      LoanStatus = "paid"
	StatusDefaulted LoanStatus = "defaulted"
)

// loanTransitions is the allow-list of status changes. Anything absent is
// rejected, leaving the loan unchanged. Rejected, paid, and defaulted are
// terminal.
var loanTransitions = map[LoanStatus][]LoanStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusActive, StatusDefaulted},
	StatusActive:   {StatusPaid, StatusDefaulted},
}

// InitialLoanStatus returns the status assigned to a newly created loan.
func InitialLoanStatus() LoanStatus {
	return StatusPending
}

// CanTransition reports whether moving from one loan status to another is
// permitted by the transition table.
func CanTransition(from, to LoanStatus) bool {
	for _, allowed := range loanTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a loan status permits no further transitions.
func IsTerminal(s LoanStatus) bool {
	return len(loanTransitions[s]) == 0
}

// ValidLoanStatus reports whether s is one of the known loan statuses.
func ValidLoanStatus(s LoanStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusActive, StatusPaid, StatusDefaulted:
		return true
	}
	return false
}

// TransitionResult captures the outcome of a permitted status change.
// Closing timestamps are set when a loan reaches a terminal state.
type TransitionResult struct {
	NewStatus LoanStatus
	ClosedAt  *time.Time
}

// ApplyTransition computes the result of a permitted transition. Callers
// must check CanTransition first; the clock is passed in for testability.
func ApplyTransition(to LoanStatus, now time.Time) TransitionResult {
	result := TransitionResult{NewStatus: to}
	if IsTerminal(to) {
		result.ClosedAt = &now
	}
	return result
}
