package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fflow/fflow/filter"
	"github.com/fflow/fflow/financeflow"
)

var (
	filterExpr string
	filterSet  string

	txWallet      string
	txCategory    string
	txSubcategory string
	txType        string
	txListType    string
	txFrom        string
	txTo          string
	txLimit       int

	txDescription string
	txAmount      string
	txDate        string
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage transactions",
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, optionally filtered",
	Long: `List transactions. Server-side filters narrow the fetch (wallet,
category, type, date range); --filter applies an expression locally on top.

Filter expressions support the full expression language:
  fflow tx list --filter 'Amount > 50 && inCategory("Groceries")'

or the shorthand syntax:
  fflow tx list --filter 'category:"Groceries" amount:>50'`,
	RunE: runTxList,
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new transaction",
	RunE:  runTxAdd,
}

var txUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an existing transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxUpdate,
}

var txDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxDelete,
}

var txTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported transaction types",
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := client.GetTransactionTypes(context.Background())
		if err != nil {
			return err
		}
		for _, t := range types {
			fmt.Println(t)
		}
		return nil
	},
}

var txFrequenciesCmd = &cobra.Command{
	Use:   "frequencies",
	Short: "List supported repeat frequencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		freqs, err := client.GetTransactionFrequencies(context.Background())
		if err != nil {
			return err
		}
		for _, f := range freqs {
			fmt.Println(f)
		}
		return nil
	},
}

var txRepeatedCmd = &cobra.Command{
	Use:   "repeated",
	Short: "List repeated transaction templates",
	RunE:  runTxRepeated,
}

var txRepeatedDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a repeated transaction template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxRepeatedDelete,
}

func init() {
	txListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied locally")
	txListCmd.Flags().StringVarP(&filterSet, "preset", "p", "", "named filter preset from config")
	txListCmd.Flags().StringVarP(&txWallet, "wallet", "w", "", "filter by wallet id")
	txListCmd.Flags().StringVarP(&txCategory, "category", "c", "", "filter by category id")
	txListCmd.Flags().StringVar(&txSubcategory, "subcategory", "", "filter by subcategory id")
	txListCmd.Flags().StringVarP(&txListType, "type", "t", "", "filter by type (expense or income)")
	txListCmd.Flags().StringVar(&txFrom, "from", "", "start date (YYYY-MM-DD)")
	txListCmd.Flags().StringVar(&txTo, "to", "", "end date (YYYY-MM-DD)")
	txListCmd.Flags().IntVarP(&txLimit, "limit", "l", 50, "maximum transactions to fetch")

	for _, c := range []*cobra.Command{txAddCmd, txUpdateCmd} {
		c.Flags().StringVar(&txDescription, "description", "", "transaction description")
		c.Flags().StringVar(&txAmount, "amount", "", "amount, e.g. 12.50")
		c.Flags().StringVarP(&txType, "type", "t", "expense", "expense or income")
		c.Flags().StringVarP(&txCategory, "category", "c", "", "category id")
		c.Flags().StringVar(&txSubcategory, "subcategory", "", "subcategory id")
		c.Flags().StringVarP(&txWallet, "wallet", "w", "", "wallet id")
		c.Flags().StringVar(&txDate, "date", "", "date (YYYY-MM-DD, default today)")
	}

	txRepeatedCmd.AddCommand(txRepeatedDeleteCmd)
	txCmd.AddCommand(txListCmd)
	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txUpdateCmd)
	txCmd.AddCommand(txDeleteCmd)
	txCmd.AddCommand(txTypesCmd)
	txCmd.AddCommand(txFrequenciesCmd)
	txCmd.AddCommand(txRepeatedCmd)
	rootCmd.AddCommand(txCmd)
}

// adHocFilterName is the manager slot for the --filter flag and the config
// default expression.
const adHocFilterName = "command-line"

// filterTransactions applies the selected filter through the preset manager.
// Priority: --filter flag > --preset > config default; no filter means the
// listing passes through untouched.
func filterTransactions(ctx context.Context, txs []financeflow.Transaction) ([]financeflow.Transaction, error) {
	manager := filter.NewManager()
	defer func() { _ = manager.Close(ctx) }()

	if len(cfg.Filter.Presets) > 0 {
		if err := manager.RegisterFilters(cfg.Filter.Presets); err != nil {
			return nil, fmt.Errorf("invalid filter preset in config: %w", err)
		}
	}

	name := adHocFilterName
	switch {
	case filterExpr != "":
		if err := manager.RegisterFilter(name, filterExpr); err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
	case filterSet != "":
		if _, ok := manager.GetFilter(filterSet); !ok {
			return nil, fmt.Errorf("unknown filter preset: %s", filterSet)
		}
		name = filterSet
	case cfg.Filter.DefaultExpression != "":
		if err := manager.RegisterFilter(name, cfg.Filter.DefaultExpression); err != nil {
			return nil, fmt.Errorf("invalid default filter in config: %w", err)
		}
	default:
		return txs, nil
	}

	matches, err := manager.EvaluateFilter(ctx, name, txs)
	if err != nil {
		return nil, fmt.Errorf("filter evaluation failed: %w", err)
	}

	logger.Debug().
		Int("fetched", len(txs)).
		Int("matched", len(matches)).
		Str("filter", name).
		Msg("Applied filter")

	return matches, nil
}

func buildTransactionQuery() (financeflow.TransactionQuery, error) {
	query := financeflow.TransactionQuery{
		WalletID:      txWallet,
		CategoryID:    txCategory,
		SubcategoryID: txSubcategory,
		Type:          financeflow.TransactionType(txListType),
		Limit:         txLimit,
	}
	if txFrom != "" {
		from, err := time.Parse("2006-01-02", txFrom)
		if err != nil {
			return query, fmt.Errorf("invalid --from date: %w", err)
		}
		query.From = from
	}
	if txTo != "" {
		to, err := time.Parse("2006-01-02", txTo)
		if err != nil {
			return query, fmt.Errorf("invalid --to date: %w", err)
		}
		query.To = to
	}
	return query, nil
}

func runTxList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	query, err := buildTransactionQuery()
	if err != nil {
		return err
	}

	txs, err := client.ListTransactions(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}

	txs, err = filterTransactions(ctx, txs)
	if err != nil {
		return err
	}

	if len(txs) == 0 {
		fmt.Println("No transactions found.")
		return nil
	}

	fmt.Printf("Found %d transaction(s):\n\n", len(txs))
	for _, tx := range txs {
		printTransaction(tx)
	}
	return nil
}

func printTransaction(tx financeflow.Transaction) {
	sign := "-"
	if tx.Type == financeflow.TransactionIncome {
		sign = "+"
	}
	fmt.Printf("%s  %s%s %s  %s", tx.Date.Format("2006-01-02"), sign, tx.Amount.StringFixed(2), tx.Currency, tx.Description)
	if cfg.Safety.ShowDetails {
		fmt.Printf("  [%s", tx.Category)
		if tx.Subcategory != "" {
			fmt.Printf("/%s", tx.Subcategory)
		}
		fmt.Printf(", %s, id=%s]", tx.Wallet, tx.ID)
	}
	fmt.Println()
}

func buildTransactionInput() (financeflow.TransactionInput, error) {
	var input financeflow.TransactionInput
	if txDescription == "" || txAmount == "" || txCategory == "" || txWallet == "" {
		return input, fmt.Errorf("--description, --amount, --category and --wallet are required")
	}
	amount, err := decimal.NewFromString(txAmount)
	if err != nil {
		return input, fmt.Errorf("invalid amount %q: %w", txAmount, err)
	}
	kind := financeflow.TransactionType(strings.ToLower(txType))
	if kind != financeflow.TransactionExpense && kind != financeflow.TransactionIncome {
		return input, fmt.Errorf("type must be expense or income")
	}

	date := time.Now()
	if txDate != "" {
		date, err = time.Parse("2006-01-02", txDate)
		if err != nil {
			return input, fmt.Errorf("invalid --date: %w", err)
		}
	}

	return financeflow.TransactionInput{
		Description:   txDescription,
		Amount:        amount,
		Type:          kind,
		CategoryID:    txCategory,
		SubcategoryID: txSubcategory,
		WalletID:      txWallet,
		Date:          date,
	}, nil
}

func runTxAdd(cmd *cobra.Command, args []string) error {
	input, err := buildTransactionInput()
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would record %s %s (%s)\n", input.Type, input.Amount.StringFixed(2), input.Description)
		return nil
	}

	tx, err := client.CreateTransaction(context.Background(), input)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	fmt.Printf("Recorded transaction %s\n", tx.ID)
	return nil
}

func runTxUpdate(cmd *cobra.Command, args []string) error {
	input, err := buildTransactionInput()
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would update transaction %s\n", args[0])
		return nil
	}

	tx, err := client.UpdateTransaction(context.Background(), args[0], input)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	fmt.Printf("Updated transaction %s\n", tx.ID)
	return nil
}

func runTxDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	id := args[0]

	tx, err := client.GetTransaction(ctx, id)
	if err != nil {
		if financeflow.IsNotFound(err) {
			return fmt.Errorf("transaction %s not found", id)
		}
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would delete %q (%s %s)\n", tx.Description, tx.Amount.StringFixed(2), tx.Currency)
		return nil
	}

	if cfg.Safety.ConfirmDelete && !confirmAction(fmt.Sprintf("Delete %q (%s %s)?", tx.Description, tx.Amount.StringFixed(2), tx.Currency)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	fmt.Printf("Deleted transaction %s\n", id)
	return nil
}

func runTxRepeated(cmd *cobra.Command, args []string) error {
	repeated, err := client.ListRepeatedTransactions(context.Background())
	if err != nil {
		return err
	}

	if len(repeated) == 0 {
		fmt.Println("No repeated transactions.")
		return nil
	}

	for _, rt := range repeated {
		status := "active"
		if !rt.Active {
			status = "paused"
		}
		fmt.Printf("%s  %s %s every %s (next %s, %s)  id=%s\n",
			rt.Description, rt.Type, rt.Amount.StringFixed(2), rt.Frequency,
			rt.NextRun.Format("2006-01-02"), status, rt.ID)
	}
	return nil
}

func runTxRepeatedDelete(cmd *cobra.Command, args []string) error {
	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would delete repeated transaction %s\n", args[0])
		return nil
	}

	if cfg.Safety.ConfirmDelete && !confirmAction("Delete this repeated transaction and stop future runs?") {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.DeleteRepeatedTransaction(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// confirmAction asks for interactive confirmation.
func confirmAction(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	var response string
	fmt.Scanln(&response)
	return strings.EqualFold(response, "y") || strings.EqualFold(response, "yes")
}
