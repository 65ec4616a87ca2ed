package lending

// PortfolioReport aggregates the loan book by status. Computed from
// current state on every call; nothing is cached.
type PortfolioReport struct {
	TotalLoans       int
	ByStatus         map[LoanStatus]int
	OutstandingTotal float64
	PrincipalTotal   float64
	DefaultRate      float64 // defaulted / (paid + defaulted), 0 when no closed loans
}

// BuildPortfolioReport folds the loan book into a PortfolioReport.
func BuildPortfolioReport(loans []*Loan) PortfolioReport {
	report := PortfolioReport{ByStatus: make(map[LoanStatus]int)}

	closed, defaulted := 0, 0
	for _, loan := range loans {
		if !loan.Active {
			continue
		}
		report.TotalLoans++
		report.ByStatus[loan.Status]++
		report.PrincipalTotal += loan.Principal
		if loan.Status == StatusActive || loan.Status == StatusApproved {
			report.OutstandingTotal += loan.Outstanding
		}
		switch loan.Status {
		case StatusPaid:
			closed++
		case StatusDefaulted:
			closed++
			defaulted++
		}
	}

	if closed > 0 {
		report.DefaultRate = float64(defaulted) / float64(closed)
	}
	return report
}

// CustomerExposure is one row of the exposure ranking: a customer and the
// outstanding principal across their open loans.
type CustomerExposure struct {
	CustomerID  int
	Outstanding float64
	OpenLoans   int
}

// BuildExposure sums outstanding principal per customer over open loans.
// The result is keyed by customer id; ranking is left to the caller.
func BuildExposure(loans []*Loan) map[int]CustomerExposure {
	exposure := make(map[int]CustomerExposure)
	for _, loan := range loans {
		if !loan.Active {
			continue
		}
		if loan.Status != StatusActive && loan.Status != StatusApproved {
			continue
		}
		e := exposure[loan.CustomerID]
		e.CustomerID = loan.CustomerID
		e.Outstanding += loan.Outstanding
		e.OpenLoans++
		exposure[loan.CustomerID] = e
	}
	return exposure
}
