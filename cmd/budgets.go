package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fflow/fflow/financeflow"
)

var (
	budgetName     string
	budgetCategory string
	budgetLimit    string
	budgetPeriod   string

	categoryName   string
	categoryType   string
	categoryIcon   string
	categoryParent string
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Manage budgets",
}

var budgetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List budgets with current spend",
	RunE:  runBudgetsList,
}

var budgetsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a budget for a category",
	RunE:  runBudgetsAdd,
}

var budgetsUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsUpdate,
}

var budgetsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsDelete,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage categories and subcategories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their subcategories",
	RunE:  runCategoriesList,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a category, or a subcategory with --parent",
	RunE:  runCategoriesAdd,
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesDelete,
}

func init() {
	for _, c := range []*cobra.Command{budgetsAddCmd, budgetsUpdateCmd} {
		c.Flags().StringVarP(&budgetName, "name", "n", "", "budget name")
		c.Flags().StringVarP(&budgetCategory, "category", "c", "", "category id the budget covers")
		c.Flags().StringVar(&budgetLimit, "limit", "", "spending cap")
		c.Flags().StringVar(&budgetPeriod, "period", "monthly", "budget period (monthly or yearly)")
	}

	categoriesAddCmd.Flags().StringVarP(&categoryName, "name", "n", "", "category name")
	categoriesAddCmd.Flags().StringVarP(&categoryType, "type", "t", "expense", "expense or income")
	categoriesAddCmd.Flags().StringVar(&categoryIcon, "icon", "", "optional icon name")
	categoriesAddCmd.Flags().StringVar(&categoryParent, "parent", "", "parent category id, creates a subcategory")

	budgetsCmd.AddCommand(budgetsListCmd)
	budgetsCmd.AddCommand(budgetsAddCmd)
	budgetsCmd.AddCommand(budgetsUpdateCmd)
	budgetsCmd.AddCommand(budgetsDeleteCmd)
	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesDeleteCmd)
	rootCmd.AddCommand(budgetsCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runBudgetsList(cmd *cobra.Command, args []string) error {
	budgets, err := client.ListBudgets(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch budgets: %w", err)
	}

	if len(budgets) == 0 {
		fmt.Println("No budgets yet. Create one with 'fflow budgets add'.")
		return nil
	}

	for _, b := range budgets {
		remaining := b.Limit.Sub(b.Spent)
		marker := ""
		if remaining.IsNegative() {
			marker = "  OVER BUDGET"
		}
		fmt.Printf("%-20s %s: %s of %s spent, %s left%s\n",
			b.Name, b.Period, b.Spent.StringFixed(2), b.Limit.StringFixed(2), remaining.StringFixed(2), marker)
	}
	return nil
}

func buildBudgetInput() (financeflow.BudgetInput, error) {
	var input financeflow.BudgetInput
	if budgetName == "" || budgetCategory == "" || budgetLimit == "" {
		return input, fmt.Errorf("--name, --category and --limit are required")
	}
	limit, err := decimal.NewFromString(budgetLimit)
	if err != nil {
		return input, fmt.Errorf("invalid limit %q: %w", budgetLimit, err)
	}
	if !limit.IsPositive() {
		return input, fmt.Errorf("limit must be positive")
	}
	return financeflow.BudgetInput{
		Name:       budgetName,
		CategoryID: budgetCategory,
		Limit:      limit,
		Period:     budgetPeriod,
	}, nil
}

func runBudgetsAdd(cmd *cobra.Command, args []string) error {
	input, err := buildBudgetInput()
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would create %s budget %q capped at %s\n", input.Period, input.Name, input.Limit.StringFixed(2))
		return nil
	}

	budget, err := client.CreateBudget(context.Background(), input)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	fmt.Printf("Created budget %q (id=%s)\n", budget.Name, budget.ID)
	return nil
}

func runBudgetsUpdate(cmd *cobra.Command, args []string) error {
	input, err := buildBudgetInput()
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would update budget %s\n", args[0])
		return nil
	}

	budget, err := client.UpdateBudget(context.Background(), args[0], input)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	fmt.Printf("Updated budget %q\n", budget.Name)
	return nil
}

func runBudgetsDelete(cmd *cobra.Command, args []string) error {
	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would delete budget %s\n", args[0])
		return nil
	}

	if cfg.Safety.ConfirmDelete && !confirmAction("Delete this budget?") {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.DeleteBudget(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	fmt.Println("Deleted.")
	return nil
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	categories, err := client.ListCategories(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch categories: %w", err)
	}

	for _, c := range categories {
		fmt.Printf("%s (%s)", c.Name, c.Type)
		if cfg.Safety.ShowDetails {
			fmt.Printf("  id=%s", c.ID)
		}
		fmt.Println()
		for _, sub := range c.Subcategories {
			fmt.Printf("  - %s", sub.Name)
			if cfg.Safety.ShowDetails {
				fmt.Printf("  id=%s", sub.ID)
			}
			fmt.Println()
		}
	}
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if categoryName == "" {
		return fmt.Errorf("--name is required")
	}

	if categoryParent != "" {
		if cfg.Safety.DryRun {
			fmt.Printf("DRY RUN: Would create subcategory %q under %s\n", categoryName, categoryParent)
			return nil
		}
		sub, err := client.CreateSubcategory(ctx, financeflow.SubcategoryInput{
			Name:       categoryName,
			CategoryID: categoryParent,
		})
		if err != nil {
			return fmt.Errorf("failed to create subcategory: %w", err)
		}
		fmt.Printf("Created subcategory %q (id=%s)\n", sub.Name, sub.ID)
		return nil
	}

	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would create category %q (%s)\n", categoryName, categoryType)
		return nil
	}

	category, err := client.CreateCategory(ctx, financeflow.CategoryInput{
		Name: categoryName,
		Type: categoryType,
		Icon: categoryIcon,
	})
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	fmt.Printf("Created category %q (id=%s)\n", category.Name, category.ID)
	return nil
}

func runCategoriesDelete(cmd *cobra.Command, args []string) error {
	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would delete category %s\n", args[0])
		return nil
	}

	if cfg.Safety.ConfirmDelete && !confirmAction("Delete this category? Transactions keep their history but lose the category.") {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.DeleteCategory(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	fmt.Println("Deleted.")
	return nil
}
