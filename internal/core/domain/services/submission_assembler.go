package services

import (
	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/task"
	"taskwizard/internal/pkg/errs"
)

// SubmissionPricing selects which price is sent with a submitted task.
type SubmissionPricing int

const (
	// UnifiedPricing submits the total the user was quoted on the confirm step.
	UnifiedPricing SubmissionPricing = iota
	// LegacyFlatPricing submits the flat legacy formula, see LegacySubmissionPrice.
	LegacyFlatPricing
)

func (s SubmissionPricing) String() string {
	if s == LegacyFlatPricing {
		return "legacy"
	}
	return "unified"
}

// Legacy flat submission formula: base + distance + per stop.
const (
	legacyBaseFare    = 50
	legacyDistanceFee = 30
	legacyStopFee     = 20
)

// LegacySubmissionPrice is the flat price older clients submitted regardless of the quote:
// 50 + 30 + 20 per stop.
func LegacySubmissionPrice(d draft.Draft) int {
	return legacyBaseFare + legacyDistanceFee + d.RouteStops().Len()*legacyStopFee
}

// SubmissionAssembler builds the order-creation payload of a confirmed draft.
type SubmissionAssembler struct {
	calculator PriceCalculator
	pricing    SubmissionPricing
}

func NewSubmissionAssembler(calculator PriceCalculator, pricing SubmissionPricing) SubmissionAssembler {
	return SubmissionAssembler{calculator: calculator, pricing: pricing}
}

// Assemble maps d to a submission.
//
// Multi-stop drafts with at least one stop take their primary product name, description
// and photo from the first stop and carry no drop-off contact. Every other draft uses the
// single item and formats the drop-off contact as "name, phone" or "name".
//
// A draft without a task type is rejected with errs.ValueIsRequiredError.
func (a SubmissionAssembler) Assemble(d draft.Draft) (task.Submission, error) {
	if err := d.Validate(); err != nil {
		return task.Submission{}, err
	}
	if !d.TaskType().IsSet() {
		return task.Submission{}, errs.NewValueIsRequiredError("task type")
	}

	breakdown := a.calculator.Calculate(d)
	price := breakdown.Total
	if a.pricing == LegacyFlatPricing {
		price = LegacySubmissionPrice(d)
	}

	s := task.Submission{
		TaskType:       d.TaskType(),
		PickupAddress:  d.PickupAddress(),
		PickupContact:  d.PickupContact(),
		DropoffAddress: d.DropoffAddress(),
		Stops:          d.RouteStops().All(),
		ProductName:    d.Item().ProductName,
		Description:    d.Item().Description,
		Photo:          d.Item().Photo,
		TimePreference: d.TimePreference(),
		ScheduledDate:  d.ScheduledDate(),
		PaymentMethod:  d.PaymentMethod(),
		ServiceLevel:   d.ServiceLevel(),
		Price:          price,
		Breakdown:      breakdown,
	}

	if d.TaskType().IsMultiStop() {
		if first, err := d.RouteStops().At(0); err == nil {
			s.ProductName = first.ProductName
			s.Description = first.Description
			s.Photo = first.Photo
		}
	} else {
		s.DropoffContact = d.DropoffContact().String()
	}

	return s, nil
}
