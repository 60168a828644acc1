package services

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	portsrepo "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/repositories"
	portssvc "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/services"
)

// suggestionService derives default values between connected fields.
// Suggestions are recommendations only; the caller decides whether the
// target field is empty before accepting one, so user input is never
// overwritten here.
type suggestionService struct {
	currencies portsrepo.CurrencyReader
	offices    portsrepo.OfficeReader
}

// NewSuggestionService creates the suggestion resolver over the given readers.
func NewSuggestionService(currencies portsrepo.CurrencyReader, offices portsrepo.OfficeReader) portssvc.SuggestionSvcFacade {
	return &suggestionService{
		currencies: currencies,
		offices:    offices,
	}
}

var _ portssvc.SuggestionSvcFacade = (*suggestionService)(nil)

// SuggestedOffice returns the first office whose home currency matches the
// code, in seed order, or nil when no office uses the currency.
func (s *suggestionService) SuggestedOffice(currencyCode string) *domain.Office {
	for _, office := range s.offices.ListOffices() {
		if office.CurrencyCode == currencyCode {
			o := office
			return &o
		}
	}
	return nil
}

// SuggestedCurrency returns the home currency of the given office, or nil
// when the office is unknown or references an unseeded currency.
func (s *suggestionService) SuggestedCurrency(officeID string) *domain.Currency {
	office := s.offices.FindOfficeByID(officeID)
	if office == nil {
		return nil
	}
	return s.currencies.FindCurrencyByCode(office.CurrencyCode)
}
