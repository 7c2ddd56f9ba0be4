// Package financeflow provides a client for the FinanceFlow REST API.
//
// FinanceFlow is a personal-finance service: transactions, wallets,
// categories, budgets, transfers, shared capital groups, reports and
// subscription billing. This package implements a clean, idiomatic Go client
// for every backend operation.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the request executor handling auth, serialization and errors
//   - Endpoints: a static catalog mapping operations to URL templates
//   - Wrappers: one method per backend operation, unwrapping envelopes
//   - Errors: a normalized APIError with classification helpers
//
// # Usage
//
// Create a client, log in, and call operations:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := financeflow.NewClient("https://api.financeflow.app", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	result, err := client.Login(ctx, "user@example.com", "secret")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	txs, err := client.ListTransactions(ctx, financeflow.TransactionQuery{})
//
// # Error Handling
//
// Every non-2xx response becomes an *APIError carrying the server's message
// and code (the HTTP status when the body has none) plus any field-level
// validation messages:
//
//	if apiErr, ok := financeflow.AsAPIError(err); ok {
//		if apiErr.IsUnauthorized() {
//			// Re-authenticate
//		}
//	}
//
// The executor never retries; callers decide how to surface failures.
package financeflow
