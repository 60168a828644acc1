package domain

// Currency represents a supported currency in the reference data.
type Currency struct {
	Code      string `json:"code"`      // Primary Key (e.g., "USD")
	Symbol    string `json:"symbol"`    // e.g., "$"
	Name      string `json:"name"`      // e.g., "US Dollar"
	Precision int    `json:"precision"` // Display decimal places
}
