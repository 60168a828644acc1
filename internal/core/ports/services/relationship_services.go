package services

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
)

// RelationshipSvcFacade exposes the static field-connection table and the
// lookups that resolve concrete related entities. All methods are pure reads.
type RelationshipSvcFacade interface {
	// FieldConnectionMap returns the full field-influence table. The result
	// is a copy; mutating it does not affect later calls.
	FieldConnectionMap() map[string][]string

	// FieldConnections returns the ordered fields connected to fieldName,
	// or an empty slice when the field is unknown.
	FieldConnections(fieldName string) []string

	// RelatedAccounts resolves the 0-2 accounts a journal entry touches,
	// debit side first.
	RelatedAccounts(entry domain.JournalEntry) []domain.Account

	// ExpensesByOffice returns the expenses booked under an office,
	// preserving seed order.
	ExpensesByOffice(officeName string) []domain.Expense

	// ExpensesByCurrency returns the expenses recorded in a currency,
	// preserving seed order.
	ExpensesByCurrency(currencyCode string) []domain.Expense

	// JournalEntriesForAccount returns the entries that debit or credit the
	// named account, preserving seed order.
	JournalEntriesForAccount(accountName string) []domain.JournalEntry
}

// SuggestionSvcFacade derives a default value for one field from another
// using the connection map and the current reference data. Suggestions are
// never auto-applied; the caller decides whether the target field is empty.
type SuggestionSvcFacade interface {
	// SuggestedOffice returns the first office whose home currency matches,
	// or nil when no office uses the currency. Ties break by seed order.
	SuggestedOffice(currencyCode string) *domain.Office

	// SuggestedCurrency returns the home currency of the given office, or
	// nil when the office is unknown or its currency is not seeded.
	SuggestedCurrency(officeID string) *domain.Currency
}
