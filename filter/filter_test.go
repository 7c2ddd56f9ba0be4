package filter

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fflow/fflow/financeflow"
)

func testTransaction() financeflow.Transaction {
	return financeflow.Transaction{
		ID:          "tx1",
		Description: "Weekly groceries",
		Amount:      decimal.RequireFromString("54.20"),
		Currency:    "EUR",
		Type:        financeflow.TransactionExpense,
		Category:    "Food",
		Subcategory: "Groceries",
		Wallet:      "Cash",
		Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Repeated:    false,
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `inCategory("Food")`,
			wantErr:    false,
		},
		{
			name:        "empty expression",
			expression:  "",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `inCategory("unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `inCategory("Food") and Amount > 20 and isExpense()`,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if filter == nil {
					t.Errorf("expected filter but got nil")
				}
			}
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	tx := testTransaction()

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{"category match", `inCategory("Food")`, true},
		{"category case-insensitive", `inCategory("food")`, true},
		{"category mismatch", `inCategory("Travel")`, false},
		{"wallet match", `inWallet("Cash")`, true},
		{"amount comparison", `Amount > 50`, true},
		{"amount range", `amountBetween(50, 60)`, true},
		{"amount out of range", `amountBetween(60, 70)`, false},
		{"type helper", `isExpense()`, true},
		{"income helper", `isIncome()`, false},
		{"description text match", `hasText(Description, "groceries")`, true},
		{"description text mismatch", `hasText(Description, "rent")`, false},
		{"builtin contains operator", `Description contains "groceries"`, true},
		{"date comparison", `Date > parseDate("2026-08-01")`, true},
		{"on date", `onDate("2026-08-15")`, true},
		{"in month", `inMonth(2026, 8)`, true},
		{"repeated flag", `Repeated == false`, true},
		{"combined", `isExpense() and Amount > 20 and inWallet("Cash")`, true},
		{"combined negative", `isIncome() or Amount > 100`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile %q: %v", tt.expression, err)
			}
			got, err := filter.Evaluate(tx)
			if err != nil {
				t.Fatalf("failed to evaluate %q: %v", tt.expression, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expression, got, tt.want)
			}
		})
	}
}

func TestConvertShorthand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "category",
			input: `category:"Food"`,
			want:  `inCategory("Food")`,
		},
		{
			name:  "negated category",
			input: `category!:"Food"`,
			want:  `not inCategory("Food")`,
		},
		{
			name:  "amount comparison",
			input: `amount:>50`,
			want:  `Amount > 50`,
		},
		{
			name:  "type",
			input: `type:expense`,
			want:  `isExpense()`,
		},
		{
			name:  "combined with AND",
			input: `category:"Food" AND amount:>=10.50`,
			want:  `inCategory("Food") and Amount >= 10.50`,
		},
		{
			name:  "date bounds",
			input: `after:"2026-01-01" AND before:"2026-02-01"`,
			want:  `Date > parseDate("2026-01-01") and Date < parseDate("2026-02-01")`,
		},
		{
			name:  "wallet and description",
			input: `wallet:"Cash" AND description:"coffee"`,
			want:  `inWallet("Cash") and hasText(Description, "coffee")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertShorthand(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertShorthand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestShorthandCompiles(t *testing.T) {
	filter, err := CompileFilter(`category:"Food" AND amount:>50 AND description:"groceries"`)
	if err != nil {
		t.Fatalf("shorthand failed to compile: %v", err)
	}
	got, err := filter.Evaluate(testTransaction())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Errorf("expected shorthand filter to match test transaction")
	}
}

func TestEvaluateSurfacesRuntimeErrors(t *testing.T) {
	// Compiles because Description's type is unknown statically, then fails
	// at run time inside daysSince.
	filter, err := CompileFilter(`daysSince(Description) > 3`)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	if _, err := filter.Evaluate(testTransaction()); err == nil {
		t.Fatalf("expected evaluation error, got none")
	}

	evaluator := NewConcurrentEvaluator()
	defer func() { _ = evaluator.Stop(context.Background()) }()
	if _, err := evaluator.Evaluate(context.Background(), filter, []financeflow.Transaction{testTransaction()}); err == nil {
		t.Fatalf("expected evaluator to propagate the evaluation error")
	}
}

func TestIsShorthand(t *testing.T) {
	if !IsShorthand(`category:"Food"`) {
		t.Errorf("expected shorthand detection for category:")
	}
	if IsShorthand(`inCategory("Food") and Amount > 50`) {
		t.Errorf("expr syntax misdetected as shorthand")
	}
}

func TestConcurrentEvaluator(t *testing.T) {
	compiler := NewExprCompiler()
	filter, err := compiler.Compile(`Amount > 100`)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}

	// Enough transactions to force the concurrent path
	txs := make([]financeflow.Transaction, 500)
	for i := range txs {
		tx := testTransaction()
		if i%5 == 0 {
			tx.Amount = decimal.NewFromInt(150)
		}
		txs[i] = tx
	}

	evaluator := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(50))
	defer func() { _ = evaluator.Stop(context.Background()) }()

	matches, err := evaluator.Evaluate(context.Background(), filter, txs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 100 {
		t.Errorf("got %d matches, want 100", len(matches))
	}
}

func TestManagerPresets(t *testing.T) {
	m := NewManager()
	defer func() { _ = m.Close(context.Background()) }()

	err := m.RegisterFilters(map[string]string{
		"big-expenses": `isExpense() and Amount > 50`,
		"food":         `inCategory("Food")`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.ListFilters()) != 2 {
		t.Errorf("expected 2 registered filters")
	}

	txs := []financeflow.Transaction{testTransaction()}
	matches, err := m.EvaluateFilter(context.Background(), "food", txs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("got %d matches, want 1", len(matches))
	}

	if _, err := m.EvaluateFilter(context.Background(), "missing", txs); err == nil {
		t.Errorf("expected error for unknown preset")
	}

	if err := m.RegisterFilter("broken", `inCategory(`); err == nil {
		t.Errorf("expected compile error for broken preset")
	}
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(10)).(CachingCompiler)

	first, err := compiler.Compile(`Amount > 10`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := compiler.Compile(`Amount > 10`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("expected cached filter instance to be reused")
	}
	if compiler.Size() != 1 {
		t.Errorf("cache size = %d, want 1", compiler.Size())
	}

	compiler.Clear()
	if compiler.Size() != 0 {
		t.Errorf("cache size after clear = %d, want 0", compiler.Size())
	}
}
