package repositories

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
)

// CurrencyReader defines read operations over the currency reference data.
// All reads are in-memory snapshot lookups and never fail; a missing key
// yields nil.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(code string) *domain.Currency

	// ListCurrencies retrieves all currencies in seed order.
	ListCurrencies() []domain.Currency
}

// OfficeReader defines read operations over the office reference data.
type OfficeReader interface {
	// FindOfficeByID retrieves a specific office by its id.
	FindOfficeByID(officeID string) *domain.Office

	// FindOfficeByName retrieves a specific office by its unique name.
	FindOfficeByName(name string) *domain.Office

	// ListOffices retrieves all offices in seed order.
	ListOffices() []domain.Office
}
