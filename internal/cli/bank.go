package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/clerk/internal/core/lending"
	"github.com/example/clerk/internal/ports/primary"
	"github.com/example/clerk/internal/wire"
)

// BankCmd returns the bank command group.
func BankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Manage customers, accounts, and loans",
	}

	cmd.AddCommand(bankCustomerAddCmd())
	cmd.AddCommand(bankAccountOpenCmd())
	cmd.AddCommand(bankDepositCmd())
	cmd.AddCommand(bankWithdrawCmd())
	cmd.AddCommand(bankLoanCreateCmd())
	cmd.AddCommand(bankLoanTransitionCmd())
	cmd.AddCommand(bankRepayCmd())
	cmd.AddCommand(bankLoanListCmd())
	cmd.AddCommand(bankPortfolioCmd())
	cmd.AddCommand(bankExposureCmd())

	return cmd
}

func bankCustomerAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer-add [name]",
		Short: "Register a new customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")

			customer, err := wire.BankService().AddCustomer(context.Background(), args[0], email)
			if err != nil {
				return fmt.Errorf("failed to add customer: %w", err)
			}

			fmt.Printf("✓ Added customer %d: %s\n", customer.ID, customer.Name)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Customer email")
	return cmd
}

func bankAccountOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account-open [customer-id]",
		Short: "Open an account for a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}
			deposit, _ := cmd.Flags().GetFloat64("deposit")

			account, err := wire.BankService().OpenAccount(context.Background(), customerID, deposit)
			if err != nil {
				return fmt.Errorf("failed to open account: %w", err)
			}

			fmt.Printf("✓ Opened account %d for customer %d (balance %.2f)\n", account.ID, account.CustomerID, account.Balance)
			return nil
		},
	}
	cmd.Flags().Float64("deposit", 0, "Initial deposit")
	return cmd
}

func accountAmountArgs(args []string) (int, float64, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid account id %q", args[0])
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid amount %q", args[1])
	}
	return id, amount, nil
}

func bankDepositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit [account-id] [amount]",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, amount, err := accountAmountArgs(args)
			if err != nil {
				return err
			}
			if err := wire.BankService().Deposit(context.Background(), id, amount); err != nil {
				return fmt.Errorf("failed to deposit: %w", err)
			}
			fmt.Printf("✓ Deposited %.2f into account %d\n", amount, id)
			return nil
		},
	}
}

func bankWithdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw [account-id] [amount]",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, amount, err := accountAmountArgs(args)
			if err != nil {
				return err
			}
			if err := wire.BankService().Withdraw(context.Background(), id, amount); err != nil {
				return fmt.Errorf("failed to withdraw: %w", err)
			}
			fmt.Printf("✓ Withdrew %.2f from account %d\n", amount, id)
			return nil
		},
	}
}

func bankLoanCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan-create [customer-id] [principal]",
		Short: "Create a loan in pending status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}
			principal, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid principal %q", args[1])
			}
			rate, _ := cmd.Flags().GetFloat64("rate")

			loan, err := wire.BankService().CreateLoan(context.Background(), primary.CreateLoanRequest{
				CustomerID:  customerID,
				Principal:   principal,
				RatePercent: rate,
			})
			if err != nil {
				return fmt.Errorf("failed to create loan: %w", err)
			}

			fmt.Printf("✓ Created loan %d: %.2f at %.2f%% (%s)\n", loan.ID, loan.Principal, loan.RatePercent, loan.Status)
			return nil
		},
	}
	cmd.Flags().Float64("rate", 0, "Interest rate percent")
	return cmd
}

func bankLoanTransitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loan-set [loan-id] [status]",
		Short: "Move a loan to a new status",
		Long: `Move a loan to a new status.

Valid transitions:
  pending  → approved, rejected
  approved → active, defaulted
  active   → paid, defaulted`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid loan id %q", args[0])
			}
			status := lending.LoanStatus(args[1])
			if !lending.ValidLoanStatus(status) {
				return fmt.Errorf("unknown loan status %q", args[1])
			}
			if err := wire.BankService().TransitionLoan(context.Background(), id, status); err != nil {
				return fmt.Errorf("failed to transition loan: %w", err)
			}
			fmt.Printf("✓ Loan %d is now %s\n", id, statusLabel(args[1]))
			return nil
		},
	}
}

func bankRepayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repay [loan-id] [amount]",
		Short: "Record a repayment against an active loan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid loan id %q", args[0])
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			if err := wire.BankService().Repay(context.Background(), id, amount); err != nil {
				return fmt.Errorf("failed to repay: %w", err)
			}

			loan, err := wire.BankService().GetLoan(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to read loan back: %w", err)
			}
			fmt.Printf("✓ Repaid %.2f on loan %d (outstanding %.2f, %s)\n",
				amount, id, loan.Outstanding, statusLabel(string(loan.Status)))
			return nil
		},
	}
}

func bankLoanListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loan-list",
		Short: "List loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			loans, err := wire.BankService().ListLoans(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list loans: %w", err)
			}
			if len(loans) == 0 {
				fmt.Println("No loans found")
				return nil
			}

			fmt.Printf("\n%-5s %-9s %-11s %-12s %-7s %s\n", "ID", "CUSTOMER", "PRINCIPAL", "OUTSTANDING", "RATE", "STATUS")
			fmt.Println("──────────────────────────────────────────────────────────")
			for _, l := range loans {
				fmt.Printf("%-5d %-9d %-11.2f %-12.2f %-7.2f %s\n",
					l.ID, l.CustomerID, l.Principal, l.Outstanding, l.RatePercent, statusLabel(string(l.Status)))
			}
			fmt.Println()
			return nil
		},
	}
}

func bankPortfolioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "Show the loan portfolio report",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := wire.BankService().Portfolio(context.Background())
			if err != nil {
				return fmt.Errorf("failed to compute portfolio: %w", err)
			}

			fmt.Printf("\nLoans:             %d\n", report.TotalLoans)
			for status, n := range report.ByStatus {
				fmt.Printf("  %-16s %d\n", statusLabel(string(status)), n)
			}
			fmt.Printf("Principal total:   %.2f\n", report.PrincipalTotal)
			fmt.Printf("Outstanding total: %.2f\n", report.OutstandingTotal)
			fmt.Printf("Default rate:      %.1f%%\n\n", report.DefaultRate*100)
			return nil
		},
	}
}

func bankExposureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exposure",
		Short: "Show outstanding exposure per customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			exposure, err := wire.BankService().Exposure(context.Background())
			if err != nil {
				return fmt.Errorf("failed to compute exposure: %w", err)
			}
			if len(exposure) == 0 {
				fmt.Println("No open loans")
				return nil
			}

			ids := make([]int, 0, len(exposure))
			for id := range exposure {
				ids = append(ids, id)
			}
			sort.Ints(ids)

			fmt.Printf("\n%-9s %-11s %s\n", "CUSTOMER", "OPEN LOANS", "OUTSTANDING")
			fmt.Println("─────────────────────────────────")
			for _, id := range ids {
				e := exposure[id]
				fmt.Printf("%-9d %-11d %.2f\n", e.CustomerID, e.OpenLoans, e.Outstanding)
			}
			fmt.Println()
			return nil
		},
	}
}
