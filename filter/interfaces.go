package filter

import (
	"context"

	"github.com/fflow/fflow/financeflow"
)

// Filter defines the basic interface for transaction filters
type Filter interface {
	// Evaluate checks if a transaction matches the filter criteria.
	// A non-nil error means the expression could not be evaluated for
	// this transaction, not that it didn't match.
	Evaluate(tx financeflow.Transaction) (bool, error)
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string

	// IsThreadSafe indicates if the filter can be evaluated concurrently
	IsThreadSafe() bool
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator evaluates filters against transactions
type Evaluator interface {
	// Evaluate evaluates a filter against all transactions
	Evaluate(ctx context.Context, filter CompiledFilter, txs []financeflow.Transaction) ([]financeflow.Transaction, error)
}

// BatchEvaluator evaluates multiple filters concurrently
type BatchEvaluator interface {
	// EvaluateBatch evaluates multiple filters against transactions concurrently
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, txs []financeflow.Transaction) (map[string][]financeflow.Transaction, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// BatchResult represents the result of evaluating a filter
type BatchResult struct {
	FilterName string
	Matches    []financeflow.Transaction
	Error      error
}

// WorkerPool defines the interface for concurrent work execution
type WorkerPool interface {
	// Submit submits work to the pool
	Submit(work func()) error

	// Stop gracefully stops the worker pool
	Stop(ctx context.Context) error
}
