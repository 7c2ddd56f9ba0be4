package filter

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fflow/fflow/financeflow"
)

func benchTransactions(n int) []financeflow.Transaction {
	txs := make([]financeflow.Transaction, n)
	for i := range txs {
		txs[i] = financeflow.Transaction{
			ID:          "tx",
			Description: "Benchmark expense",
			Amount:      decimal.NewFromInt(int64(i % 200)),
			Type:        financeflow.TransactionExpense,
			Category:    "Food",
			Wallet:      "Cash",
			Date:        time.Now().AddDate(0, 0, -(i % 365)),
		}
	}
	return txs
}

func BenchmarkCompile(b *testing.B) {
	compiler := NewExprCompiler()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := compiler.Compile(`isExpense() and Amount > 100 and inCategory("Food")`)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompileCached(b *testing.B) {
	compiler := NewExprCompiler(WithCache(10))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := compiler.Compile(`isExpense() and Amount > 100 and inCategory("Food")`)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateSequential(b *testing.B) {
	filter, err := CompileFilter(`Amount > 100`)
	if err != nil {
		b.Fatal(err)
	}
	txs := benchTransactions(50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tx := range txs {
			if _, err := filter.Evaluate(tx); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkEvaluateConcurrent(b *testing.B) {
	filter, err := CompileFilter(`Amount > 100`)
	if err != nil {
		b.Fatal(err)
	}
	txs := benchTransactions(5000)

	evaluator := NewConcurrentEvaluator()
	defer func() { _ = evaluator.Stop(context.Background()) }()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := evaluator.Evaluate(context.Background(), filter, txs); err != nil {
			b.Fatal(err)
		}
	}
}
