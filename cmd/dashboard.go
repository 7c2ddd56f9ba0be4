package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fflow/fflow/financeflow"
)

var (
	reportYear  int
	reportMonth int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the account dashboard",
	Long: `Show the account overview: total balance, income and expenses for the
current month, wallet balances, recent transactions and budget status.`,
	RunE: runDashboard,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a yearly or monthly report",
	Long: `Show per-category totals for a year, or for a single month with --month.
Defaults to the current year.`,
	RunE: runReport,
}

func init() {
	now := time.Now()
	reportCmd.Flags().IntVarP(&reportYear, "year", "y", now.Year(), "report year")
	reportCmd.Flags().IntVarP(&reportMonth, "month", "m", 0, "report month (1-12, omit for whole year)")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	overview, err := client.GetOverview(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch dashboard: %w", err)
	}

	s := overview.Summary
	fmt.Printf("Balance: %s %s\n", s.Balance.StringFixed(2), s.Currency)
	fmt.Printf("This month: +%s / -%s %s\n\n", s.MonthIncome.StringFixed(2), s.MonthExpenses.StringFixed(2), s.Currency)

	if len(overview.Wallets) > 0 {
		fmt.Println("Wallets:")
		for _, w := range overview.Wallets {
			fmt.Printf("  %-20s %10s %s\n", w.Name, w.Balance.StringFixed(2), w.Currency)
		}
		fmt.Println()
	}

	if len(overview.Budgets) > 0 {
		fmt.Println("Budgets:")
		for _, b := range overview.Budgets {
			fmt.Printf("  %-20s %s of %s\n", b.Name, b.Spent.StringFixed(2), b.Limit.StringFixed(2))
		}
		fmt.Println()
	}

	if len(overview.Recent) > 0 {
		fmt.Println("Recent transactions:")
		for _, tx := range overview.Recent {
			printTransaction(tx)
		}
	}

	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var report *financeflow.Report
	var err error
	if reportMonth != 0 {
		report, err = client.GetMonthReport(ctx, reportYear, reportMonth)
	} else {
		report, err = client.GetYearReport(ctx, reportYear)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch report: %w", err)
	}

	if report.Month != 0 {
		fmt.Printf("Report for %04d-%02d\n", report.Year, report.Month)
	} else {
		fmt.Printf("Report for %d\n", report.Year)
	}
	fmt.Printf("Income: %s, Expenses: %s\n\n", report.Income.StringFixed(2), report.Expense.StringFixed(2))

	for _, entry := range report.Entries {
		sign := "-"
		if entry.Type == financeflow.TransactionIncome {
			sign = "+"
		}
		fmt.Printf("  %-20s %s%s\n", entry.Category, sign, entry.Total.StringFixed(2))
	}
	return nil
}
