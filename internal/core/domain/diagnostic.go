package domain

// Severity classifies a validation diagnostic. Warnings are advisory and do
// not make a record invalid; errors do.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ValidationResult accumulates the diagnostics produced by validating one
// record. The zero value is a valid result.
type ValidationResult struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// AddError appends an error-severity diagnostic.
func (r *ValidationResult) AddError(message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Severity: SeverityError, Message: message})
}

// AddWarning appends a warning-severity diagnostic.
func (r *ValidationResult) AddWarning(message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Severity: SeverityWarning, Message: message})
}

// Valid reports whether the record passed validation. Warnings alone do not
// invalidate a record.
func (r ValidationResult) Valid() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns the messages of all error-severity diagnostics.
func (r ValidationResult) Errors() []string {
	return r.messages(SeverityError)
}

// Warnings returns the messages of all warning-severity diagnostics.
func (r ValidationResult) Warnings() []string {
	return r.messages(SeverityWarning)
}

func (r ValidationResult) messages(sev Severity) []string {
	msgs := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			msgs = append(msgs, d.Message)
		}
	}
	return msgs
}
