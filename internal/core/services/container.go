package services

import (
	portsrepo "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/repositories"
	portssvc "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/services"
)

// NewContainer wires every engine over one seeded data context. The
// container is the callable surface of the data context: constructed once
// per process lifetime and handed to the UI layer.
func NewContainer(ctx portsrepo.ReferenceReader) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Validator:    NewValidationService(ctx, ctx, ctx),
		Relationship: NewRelationshipService(ctx, ctx, ctx),
		Suggestion:   NewSuggestionService(ctx, ctx),
		Eligibility:  NewEligibilityService(ctx, ctx),
		Reporting:    NewReportingService(ctx, ctx, ctx),
	}
}
