package financeflow

import "fmt"

// Endpoint catalog. Pure data: one entry per backend operation, some
// parameterized by id or period. Input validation is left to the server.
const (
	epLogin              = "/auth/login"
	epLogout             = "/auth/logout"
	epRegister           = "/auth/register"
	epVerifyEmail        = "/auth/verify-email"
	epResendVerification = "/auth/resend-verification"
	epProfile            = "/users/me"

	epDashboard = "/dashboard"

	epTransactions           = "/transactions"
	epTransactionTypes       = "/transactions/types"
	epTransactionFrequencies = "/transactions/frequencies"
	epRepeatedTransactions   = "/transactions/repeated"

	epWallets     = "/wallets"
	epWalletTypes = "/wallets/types"

	epCategories    = "/categories"
	epSubcategories = "/subcategories"

	epTransfers  = "/transfers"
	epCurrencies = "/currencies"
	epFeedback   = "/feedback"
	epBudgets    = "/budgets"

	epCapitalGroups      = "/capital"
	epCapitalInvitations = "/capital/invitations"

	epCheckoutSession = "/billing/checkout-session"
	epPortalSession   = "/billing/portal-session"
)

func epTransaction(id string) string         { return epTransactions + "/" + id }
func epRepeatedTransaction(id string) string { return epRepeatedTransactions + "/" + id }
func epWallet(id string) string              { return epWallets + "/" + id }
func epCategory(id string) string            { return epCategories + "/" + id }
func epSubcategory(id string) string         { return epSubcategories + "/" + id }
func epTransfer(id string) string            { return epTransfers + "/" + id }
func epFeedbackItem(id string) string        { return epFeedback + "/" + id }
func epBudget(id string) string              { return epBudgets + "/" + id }
func epCapitalGroup(id string) string        { return epCapitalGroups + "/" + id }

func epCapitalInvitation(id, action string) string {
	return fmt.Sprintf("%s/%s/%s", epCapitalInvitations, id, action)
}

func epReport(year, month int) string {
	if month > 0 {
		return fmt.Sprintf("/reports/%d/%d", year, month)
	}
	return fmt.Sprintf("/reports/%d", year)
}
