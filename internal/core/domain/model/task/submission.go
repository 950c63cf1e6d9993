package task

import (
	"errors"
	"fmt"
	"slices"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
	"taskwizard/internal/pkg/errs"
)

// Submission is the payload handed to order creation when the user confirms a draft.
//
// For multi-stop tasks ProductName, Description and Photo are taken from the first stop
// and DropoffContact is empty. For send and errand tasks they describe the single item and
// DropoffContact is "name, phone" or "name".
type Submission struct {
	TaskType kernel.TaskType

	PickupAddress  string
	PickupContact  string
	DropoffAddress string
	DropoffContact string

	Stops []draft.Stop

	ProductName string
	Description string
	Photo       draft.PhotoRef

	TimePreference draft.TimePreference
	ScheduledDate  string
	PaymentMethod  draft.PaymentMethod
	ServiceLevel   tariff.ServiceLevel

	Price     int
	Breakdown tariff.Breakdown
}

// Validate checks the fields a task cannot be created without.
//
// Returns:
//   - nil if the submission is valid
//   - joined validation errors for every invalid field otherwise
func (s Submission) Validate() error {
	var taskTypeErr error
	if !s.TaskType.IsSet() {
		taskTypeErr = errs.NewValueIsRequiredError("task type")
	}

	var priceErr error
	if s.Price < 0 {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", s.Price))
	}

	return errors.Join(
		taskTypeErr,
		priceErr,
		s.TimePreference.Validate(),
		s.PaymentMethod.Validate(),
		s.ServiceLevel.Validate(),
	)
}

func (s Submission) clone() Submission {
	s.Stops = slices.Clone(s.Stops)
	return s
}
