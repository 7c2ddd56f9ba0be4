package filter

// defaultCompiler backs the package-level convenience functions. Compiled
// expressions are cached across calls.
var defaultCompiler = NewExprCompiler(WithCache(100))

// normalizeExpression converts shorthand field:value syntax to expr and
// leaves full expressions untouched.
func normalizeExpression(expression string) (string, error) {
	if !IsShorthand(expression) {
		return expression, nil
	}
	return ConvertShorthand(expression)
}

// CompileFilter compiles an expression with the package-level compiler.
// Shorthand field:value syntax is converted to expr first.
func CompileFilter(expression string) (CompiledFilter, error) {
	normalized, err := normalizeExpression(expression)
	if err != nil {
		return nil, err
	}
	return defaultCompiler.Compile(normalized)
}
