package services

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	portsrepo "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/repositories"
	portssvc "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/services"
)

// fieldConnectionMap is the hand-authored table of directional field
// influence: editing the key field can or should affect the listed fields,
// in order. It is static; lookups on unknown keys return an empty slice.
var fieldConnectionMap = map[string][]string{
	"currency":                   {"office", "expense.currency", "expense.exchangeRate"},
	"office":                     {"currency", "expense.office"},
	"account":                    {"journalEntry.debitAccount", "journalEntry.creditAccount"},
	"journalEntry.debitAccount":  {"account.balance"},
	"journalEntry.creditAccount": {"account.balance"},
	"booking":                    {"passenger", "invoice"},
	"passenger":                  {"invoice"},
	"invoice":                    {"payment"},
	"payment":                    {"booking.refundStatus", "passenger.refundStatus"},
}

// relationshipService resolves the connection map and related entities.
type relationshipService struct {
	accounts portsrepo.AccountReader
	journal  portsrepo.JournalReader
	expenses portsrepo.ExpenseReader
}

// NewRelationshipService creates the relationship engine over the given readers.
func NewRelationshipService(accounts portsrepo.AccountReader, journal portsrepo.JournalReader, expenses portsrepo.ExpenseReader) portssvc.RelationshipSvcFacade {
	return &relationshipService{
		accounts: accounts,
		journal:  journal,
		expenses: expenses,
	}
}

var _ portssvc.RelationshipSvcFacade = (*relationshipService)(nil)

// FieldConnectionMap returns a copy of the full influence table.
func (s *relationshipService) FieldConnectionMap() map[string][]string {
	out := make(map[string][]string, len(fieldConnectionMap))
	for field, connected := range fieldConnectionMap {
		out[field] = append([]string(nil), connected...)
	}
	return out
}

// FieldConnections returns the ordered fields connected to fieldName, or an
// empty slice for an unknown field.
func (s *relationshipService) FieldConnections(fieldName string) []string {
	connected, ok := fieldConnectionMap[fieldName]
	if !ok {
		return []string{}
	}
	return append([]string(nil), connected...)
}

// RelatedAccounts resolves the accounts a journal entry touches, debit side
// first. Unresolvable names are simply skipped.
func (s *relationshipService) RelatedAccounts(entry domain.JournalEntry) []domain.Account {
	related := make([]domain.Account, 0, 2)
	if acc := s.accounts.FindAccountByName(entry.DebitAccount); acc != nil {
		related = append(related, *acc)
	}
	if acc := s.accounts.FindAccountByName(entry.CreditAccount); acc != nil {
		related = append(related, *acc)
	}
	return related
}

// ExpensesByOffice filters the expense collection by office name,
// preserving seed order.
func (s *relationshipService) ExpensesByOffice(officeName string) []domain.Expense {
	var out []domain.Expense
	for _, e := range s.expenses.ListExpenses() {
		if e.Office == officeName {
			out = append(out, e)
		}
	}
	return out
}

// ExpensesByCurrency filters the expense collection by currency code,
// preserving seed order.
func (s *relationshipService) ExpensesByCurrency(currencyCode string) []domain.Expense {
	var out []domain.Expense
	for _, e := range s.expenses.ListExpenses() {
		if e.CurrencyCode == currencyCode {
			out = append(out, e)
		}
	}
	return out
}

// JournalEntriesForAccount returns the entries that debit or credit the
// named account, preserving seed order.
func (s *relationshipService) JournalEntriesForAccount(accountName string) []domain.JournalEntry {
	var out []domain.JournalEntry
	for _, e := range s.journal.ListJournalEntries() {
		if e.DebitAccount == accountName || e.CreditAccount == accountName {
			out = append(out, e)
		}
	}
	return out
}
