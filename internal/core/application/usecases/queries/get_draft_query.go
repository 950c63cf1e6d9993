// Package queries contains read-only operations of the order wizard.
// Implements the query side of CQRS: handlers never modify state.
package queries

import (
	"errors"
	"time"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
	"taskwizard/internal/core/domain/model/wizard"
	"taskwizard/internal/pkg/guard"
)

var ErrGetDraftQueryIsNotConstructed = errors.New(
	"GetDraftQuery must be created via NewGetDraftQuery constructor",
)

// GetDraftQuery renders the current state of a wizard session: the draft, the step the
// user is on, the live quote and the options the current task type offers.
//
// Example:
//
//	query, err := NewGetDraftQuery(draftID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("step %s, total %d\n", view.Step, view.Quote.Total)
type GetDraftQuery struct {
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDraftQuery(draftID kernel.UUID) (GetDraftQuery, error) {
	if err := draftID.Validate(); err != nil {
		return GetDraftQuery{}, err
	}
	return GetDraftQuery{
		draftID: draftID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftQueryIsNotConstructed)
}

func (q GetDraftQuery) DraftID() kernel.UUID {
	return q.draftID
}

// GetDraftQueryResponse is everything a client needs to render the current step.
//
// CanAdvance tells whether the Next action is enabled. StopWarnings are advisory and
// never block it. TaskID is set once the draft has been submitted.
type GetDraftQueryResponse struct {
	Draft      draft.Draft
	Step       wizard.Step
	CanAdvance bool
	Confirmed  bool
	TaskID     *kernel.UUID
	TouchedAt  time.Time

	Quote        tariff.Breakdown
	StopWarnings []wizard.StopWarning

	WeightOptions  []tariff.WeightOption
	SizeOptions    []tariff.SizeOption
	ServiceOptions []tariff.ServiceOption
}
