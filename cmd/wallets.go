package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fflow/fflow/financeflow"
)

var (
	walletName     string
	walletType     string
	walletCurrency string
	walletBalance  string

	transferFrom        string
	transferTo          string
	transferAmount      string
	transferDescription string
)

var walletsCmd = &cobra.Command{
	Use:   "wallets",
	Short: "Manage wallets",
}

var walletsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wallets with balances",
	RunE:  runWalletsList,
}

var walletsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new wallet",
	RunE:  runWalletsAdd,
}

var walletsUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a wallet",
	Args:  cobra.ExactArgs(1),
	RunE:  runWalletsUpdate,
}

var walletsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a wallet",
	Args:  cobra.ExactArgs(1),
	RunE:  runWalletsDelete,
}

var walletsTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported wallet types",
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := client.GetWalletTypes(context.Background())
		if err != nil {
			return err
		}
		for _, t := range types {
			fmt.Println(t)
		}
		return nil
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Move money between wallets",
	RunE:  runTransfer,
}

var transferListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past transfers",
	RunE:  runTransferList,
}

func init() {
	for _, c := range []*cobra.Command{walletsAddCmd, walletsUpdateCmd} {
		c.Flags().StringVarP(&walletName, "name", "n", "", "wallet name")
		c.Flags().StringVarP(&walletType, "type", "t", "", "wallet type, see 'fflow wallets types'")
		c.Flags().StringVar(&walletCurrency, "currency", "", "wallet currency code")
		c.Flags().StringVar(&walletBalance, "balance", "0", "opening balance")
	}

	transferCmd.Flags().StringVar(&transferFrom, "from", "", "source wallet id")
	transferCmd.Flags().StringVar(&transferTo, "to", "", "destination wallet id")
	transferCmd.Flags().StringVar(&transferAmount, "amount", "", "amount to move")
	transferCmd.Flags().StringVar(&transferDescription, "description", "", "optional description")

	walletsCmd.AddCommand(walletsListCmd)
	walletsCmd.AddCommand(walletsAddCmd)
	walletsCmd.AddCommand(walletsUpdateCmd)
	walletsCmd.AddCommand(walletsDeleteCmd)
	walletsCmd.AddCommand(walletsTypesCmd)
	transferCmd.AddCommand(transferListCmd)
	rootCmd.AddCommand(walletsCmd)
	rootCmd.AddCommand(transferCmd)
}

func runWalletsList(cmd *cobra.Command, args []string) error {
	wallets, err := client.ListWallets(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch wallets: %w", err)
	}

	if len(wallets) == 0 {
		fmt.Println("No wallets yet. Create one with 'fflow wallets add'.")
		return nil
	}

	for _, w := range wallets {
		shared := ""
		if w.Shared {
			shared = " (shared)"
		}
		fmt.Printf("%-20s %10s %s  [%s]%s", w.Name, w.Balance.StringFixed(2), w.Currency, w.Type, shared)
		if cfg.Safety.ShowDetails {
			fmt.Printf("  id=%s", w.ID)
		}
		fmt.Println()
	}
	return nil
}

func buildWalletInput() (financeflow.WalletInput, error) {
	var input financeflow.WalletInput
	if walletName == "" || walletType == "" || walletCurrency == "" {
		return input, fmt.Errorf("--name, --type and --currency are required")
	}
	balance, err := decimal.NewFromString(walletBalance)
	if err != nil {
		return input, fmt.Errorf("invalid balance %q: %w", walletBalance, err)
	}
	return financeflow.WalletInput{
		Name:     walletName,
		Type:     walletType,
		Currency: walletCurrency,
		Balance:  balance,
	}, nil
}

func runWalletsAdd(cmd *cobra.Command, args []string) error {
	input, err := buildWalletInput()
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would create wallet %q (%s)\n", input.Name, input.Currency)
		return nil
	}

	wallet, err := client.CreateWallet(context.Background(), input)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	fmt.Printf("Created wallet %q (id=%s)\n", wallet.Name, wallet.ID)
	return nil
}

func runWalletsUpdate(cmd *cobra.Command, args []string) error {
	input, err := buildWalletInput()
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would update wallet %s\n", args[0])
		return nil
	}

	wallet, err := client.UpdateWallet(context.Background(), args[0], input)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	fmt.Printf("Updated wallet %q\n", wallet.Name)
	return nil
}

func runWalletsDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	id := args[0]

	wallet, err := client.GetWallet(ctx, id)
	if err != nil {
		if financeflow.IsNotFound(err) {
			return fmt.Errorf("wallet %s not found", id)
		}
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would delete wallet %q with balance %s %s\n", wallet.Name, wallet.Balance.StringFixed(2), wallet.Currency)
		return nil
	}

	if cfg.Safety.ConfirmDelete && !confirmAction(fmt.Sprintf("Delete wallet %q and all its transactions?", wallet.Name)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.DeleteWallet(ctx, id); err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	fmt.Printf("Deleted wallet %q\n", wallet.Name)
	return nil
}

func runTransfer(cmd *cobra.Command, args []string) error {
	if transferFrom == "" || transferTo == "" || transferAmount == "" {
		return fmt.Errorf("--from, --to and --amount are required")
	}
	amount, err := decimal.NewFromString(transferAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", transferAmount, err)
	}
	if transferFrom == transferTo {
		return fmt.Errorf("source and destination wallet must differ")
	}

	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would transfer %s from %s to %s\n", amount.StringFixed(2), transferFrom, transferTo)
		return nil
	}

	transfer, err := client.CreateTransfer(context.Background(), financeflow.TransferInput{
		FromWalletID: transferFrom,
		ToWalletID:   transferTo,
		Amount:       amount,
		Description:  transferDescription,
	})
	if err != nil {
		return fmt.Errorf("transfer failed: %w", err)
	}

	fmt.Printf("Transferred %s (id=%s)\n", transfer.Amount.StringFixed(2), transfer.ID)
	return nil
}

func runTransferList(cmd *cobra.Command, args []string) error {
	transfers, err := client.ListTransfers(context.Background())
	if err != nil {
		return err
	}

	if len(transfers) == 0 {
		fmt.Println("No transfers found.")
		return nil
	}

	for _, t := range transfers {
		fmt.Printf("%s  %s  %s -> %s", t.Date.Format("2006-01-02"), t.Amount.StringFixed(2), t.FromWalletID, t.ToWalletID)
		if t.Description != "" {
			fmt.Printf("  (%s)", t.Description)
		}
		fmt.Println()
	}
	return nil
}
