package filter

import (
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/fflow/fflow/financeflow"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	envPool    *sync.Pool
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
		envPool:     &sync.Pool{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.envPool.New = func() any {
		return make(map[string]any, 48)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
	envPool     *sync.Pool
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached.(CompiledFilter), nil
		}
	}

	// Compile with static environment for validation
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // Allow transaction properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		envPool:    c.envPool,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a transaction
func (f *exprFilter) Evaluate(tx financeflow.Transaction) (bool, error) {
	env := f.envPool.Get().(map[string]any)
	defer func() {
		clear(env)
		f.envPool.Put(env)
	}()
	populateRuntimeEnvironment(env, tx)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			FilterName:  f.expression,
			Description: tx.Description,
			Reason:      err.Error(),
			Err:         err,
		}
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// IsThreadSafe indicates that expr filters are thread-safe
func (f *exprFilter) IsThreadSafe() bool {
	return true
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 24)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers. "contains" is an expr infix operator and cannot be
	// shadowed by a function, hence hasText.
	env["hasText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// populateRuntimeEnvironment fills env with the helpers and properties for
// evaluating one transaction. The map comes from the compiler's pool and is
// cleared by the caller after the run.
func populateRuntimeEnvironment(env map[string]any, tx financeflow.Transaction) {
	addHelperFunctions(env)

	// Amounts are exposed as floats; expr's comparison operators don't
	// understand decimal.Decimal.
	amount, _ := tx.Amount.Float64()

	env["Transaction"] = tx

	// Transaction-specific helper functions using closures for efficiency
	env["inCategory"] = createNameMatchFunc(tx.Category)
	env["inSubcategory"] = createNameMatchFunc(tx.Subcategory)
	env["inWallet"] = createNameMatchFunc(tx.Wallet)
	env["isExpense"] = createTypeFunc(tx.Type, financeflow.TransactionExpense)
	env["isIncome"] = createTypeFunc(tx.Type, financeflow.TransactionIncome)
	env["isRepeated"] = func() bool { return tx.Repeated }
	// Takes any so integer literals work; expr invokes Go funcs through
	// reflection without converting int arguments to float64.
	env["amountBetween"] = func(lo, hi any) bool {
		l, lok := toFloat(lo)
		h, hok := toFloat(hi)
		return lok && hok && amount >= l && amount <= h
	}
	env["onDate"] = func(dateStr string) bool {
		return tx.Date.Format("2006-01-02") == dateStr
	}
	env["inMonth"] = func(year, month int) bool {
		return tx.Date.Year() == year && int(tx.Date.Month()) == month
	}

	// Direct transaction properties for convenience
	env["Description"] = tx.Description
	env["Amount"] = amount
	env["Currency"] = tx.Currency
	env["Type"] = string(tx.Type)
	env["Category"] = tx.Category
	env["Subcategory"] = tx.Subcategory
	env["Wallet"] = tx.Wallet
	env["Date"] = tx.Date
	env["Repeated"] = tx.Repeated
	env["CreatedAt"] = tx.CreatedAt
}

// toFloat coerces the numeric types expr produces for literals.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Helper factory functions for better performance through closures

func createNameMatchFunc(name string) func(string) bool {
	lowerName := strings.ToLower(name)
	return func(target string) bool {
		return lowerName == strings.ToLower(target)
	}
}

func createTypeFunc(actual, expected financeflow.TransactionType) func() bool {
	matches := actual == expected
	return func() bool {
		return matches
	}
}
