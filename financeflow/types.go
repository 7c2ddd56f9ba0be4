package financeflow

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an authenticated FinanceFlow account.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Currency      string    `json:"currency"`
	EmailVerified bool      `json:"emailVerified"`
	Premium       bool      `json:"premium"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TransactionType is either "expense" or "income".
type TransactionType string

const (
	TransactionExpense TransactionType = "expense"
	TransactionIncome  TransactionType = "income"
)

// Transaction is a single dated movement of money within a wallet.
type Transaction struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryId"`
	Category      string          `json:"category"`
	SubcategoryID string          `json:"subcategoryId,omitempty"`
	Subcategory   string          `json:"subcategory,omitempty"`
	WalletID      string          `json:"walletId"`
	Wallet        string          `json:"wallet"`
	Date          time.Time       `json:"date"`
	Repeated      bool            `json:"repeated"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionInput is the payload for creating or updating a transaction.
type TransactionInput struct {
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryId"`
	SubcategoryID string          `json:"subcategoryId,omitempty"`
	WalletID      string          `json:"walletId"`
	Date          time.Time       `json:"date"`
}

// RepeatedTransaction is a transaction template that recurs on a schedule.
type RepeatedTransaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	CategoryID  string          `json:"categoryId"`
	WalletID    string          `json:"walletId"`
	Frequency   string          `json:"frequency"`
	NextRun     time.Time       `json:"nextRun"`
	Active      bool            `json:"active"`
}

// Wallet holds a balance in a single currency.
type Wallet struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Shared   bool            `json:"shared"`
}

// WalletInput is the payload for creating or updating a wallet.
type WalletInput struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// Category is a main spending/income category. Subcategories nest one level
// below their parent.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	Icon          string        `json:"icon,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// Subcategory belongs to exactly one main category.
type Subcategory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
}

// Budget caps spend for a category over a period.
type Budget struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CategoryID string          `json:"categoryId"`
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Period     string          `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
}

// BudgetInput is the payload for creating or updating a budget.
type BudgetInput struct {
	Name       string          `json:"name"`
	CategoryID string          `json:"categoryId"`
	Limit      decimal.Decimal `json:"limit"`
	Period     string          `json:"period"`
}

// Transfer moves money between two wallets.
type Transfer struct {
	ID           string          `json:"id"`
	FromWalletID string          `json:"fromWalletId"`
	ToWalletID   string          `json:"toWalletId"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	Date         time.Time       `json:"date"`
}

// TransferInput is the payload for creating a transfer.
type TransferInput struct {
	FromWalletID string          `json:"fromWalletId"`
	ToWalletID   string          `json:"toWalletId"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
}

// Currency is a supported currency code with display metadata.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Feedback is a user-submitted feedback entry.
type Feedback struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// CapitalGroup is a shared visibility group combining multiple users' wallet
// balances.
type CapitalGroup struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	OwnerID string          `json:"ownerId"`
	Members []CapitalMember `json:"members"`
	Total   decimal.Decimal `json:"total"`
}

// CapitalMember is one participant in a capital group.
type CapitalMember struct {
	UserID  string          `json:"userId"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Balance decimal.Decimal `json:"balance"`
}

// CapitalInvitation is a pending invite to join a capital group.
type CapitalInvitation struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"groupId"`
	GroupName string    `json:"groupName"`
	InvitedBy string    `json:"invitedBy"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardSummary is the headline numbers for the dashboard.
type DashboardSummary struct {
	Balance       decimal.Decimal `json:"balance"`
	MonthIncome   decimal.Decimal `json:"monthIncome"`
	MonthExpenses decimal.Decimal `json:"monthExpenses"`
	Currency      string          `json:"currency"`
}

// ReportEntry is one category row in a monthly or yearly report.
type ReportEntry struct {
	Category string          `json:"category"`
	Type     TransactionType `json:"type"`
	Total    decimal.Decimal `json:"total"`
}

// Report groups totals per category for a year or a single month.
type Report struct {
	Year    int             `json:"year"`
	Month   int             `json:"month,omitempty"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Entries []ReportEntry   `json:"entries"`
}

// BillingSession is a hosted checkout or portal session returned by the
// payment provider integration.
type BillingSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
