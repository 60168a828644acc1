package domain

// Office represents a branch office in the reference data.
type Office struct {
	OfficeID     string `json:"officeID"`     // Primary Key (e.g., "uk")
	Name         string `json:"name"`         // Unique display name used as a foreign key by Expense
	CurrencyCode string `json:"currencyCode"` // Home currency, FK -> Currency.Code
}
