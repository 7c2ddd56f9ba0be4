package filter

import (
	"context"
	"runtime"
	"sync"

	"github.com/fflow/fflow/financeflow"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.workerCount = workers
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.batchSize = size
	}
}

// ConcurrentEvaluator implements both Evaluator and BatchEvaluator interfaces
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
	pool        WorkerPool
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.pool = NewWorkerPool(e.workerCount)

	return e
}

// Evaluate evaluates a single filter against all transactions
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, txs []financeflow.Transaction) ([]financeflow.Transaction, error) {
	if len(txs) == 0 {
		return []financeflow.Transaction{}, nil
	}

	// Small listings aren't worth the fan-out
	if len(txs) < e.batchSize {
		return e.evaluateSequential(filter, txs)
	}

	return e.evaluateConcurrent(ctx, filter, txs)
}

// EvaluateBatch evaluates multiple filters against transactions concurrently
func (e *ConcurrentEvaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, txs []financeflow.Transaction) (map[string][]financeflow.Transaction, error) {
	if len(filters) == 0 || len(txs) == 0 {
		return make(map[string][]financeflow.Transaction), nil
	}

	results := make(map[string][]financeflow.Transaction)
	resultChan := make(chan BatchResult, len(filters))

	var wg sync.WaitGroup
	for name, filter := range filters {
		wg.Add(1)
		name := name
		filter := filter

		err := e.pool.Submit(func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				resultChan <- BatchResult{
					FilterName: name,
					Error:      ctx.Err(),
				}
				return
			default:
			}

			matches, err := e.Evaluate(ctx, filter, txs)
			resultChan <- BatchResult{
				FilterName: name,
				Matches:    matches,
				Error:      err,
			}
		})

		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for result := range resultChan {
		if result.Error != nil {
			// Skip filters that error
			continue
		}
		results[result.FilterName] = result.Matches
	}

	return results, nil
}

// evaluateSequential evaluates a filter against all transactions sequentially
func (e *ConcurrentEvaluator) evaluateSequential(filter CompiledFilter, txs []financeflow.Transaction) ([]financeflow.Transaction, error) {
	matches := make([]financeflow.Transaction, 0, len(txs)/10)
	for _, tx := range txs {
		ok, err := filter.Evaluate(tx)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, tx)
		}
	}
	return matches, nil
}

// evaluateConcurrent evaluates a filter against transactions using the worker pool
func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, txs []financeflow.Transaction) ([]financeflow.Transaction, error) {
	chunkSize := max(len(txs)/e.workerCount, e.batchSize)

	type chunkResult struct {
		matches []financeflow.Transaction
		order   int
		err     error
	}

	resultChan := make(chan chunkResult, (len(txs)/chunkSize)+1)
	var wg sync.WaitGroup

	chunkIndex := 0
	for i := 0; i < len(txs); i += chunkSize {
		end := min(i+chunkSize, len(txs))

		wg.Add(1)
		chunk := txs[i:end]
		index := chunkIndex
		chunkIndex++

		err := e.pool.Submit(func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			matches := make([]financeflow.Transaction, 0, len(chunk)/10)
			for _, tx := range chunk {
				ok, err := filter.Evaluate(tx)
				if err != nil {
					resultChan <- chunkResult{order: index, err: err}
					return
				}
				if ok {
					matches = append(matches, tx)
				}
			}

			resultChan <- chunkResult{matches: matches, order: index}
		})

		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make(map[int][]financeflow.Transaction)
	var evalErr error
	for result := range resultChan {
		if result.err != nil {
			if evalErr == nil {
				evalErr = result.err
			}
			continue
		}
		results[result.order] = result.matches
	}
	if evalErr != nil {
		return nil, evalErr
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	totalMatches := 0
	for i := 0; i < len(results); i++ {
		totalMatches += len(results[i])
	}

	allMatches := make([]financeflow.Transaction, 0, totalMatches)
	for i := 0; i < len(results); i++ {
		allMatches = append(allMatches, results[i]...)
	}

	return allMatches, nil
}

// Stop gracefully stops the evaluator's worker pool
func (e *ConcurrentEvaluator) Stop(ctx context.Context) error {
	return e.pool.Stop(ctx)
}
