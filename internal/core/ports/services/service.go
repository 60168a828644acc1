package services

// ServiceContainer holds instances of all the engines the data context
// exposes. It is the main entry point for callers: constructed once per
// process lifetime over a seeded data context and discarded on teardown.
type ServiceContainer struct {
	Validator    ValidatorSvcFacade
	Relationship RelationshipSvcFacade
	Suggestion   SuggestionSvcFacade
	Eligibility  EligibilitySvcFacade
	Reporting    ReportingSvcFacade
}
