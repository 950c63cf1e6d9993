package wizard

import (
	"taskwizard/internal/core/domain/model/draft"
)

// CanAdvance reports whether the draft satisfies the requirements of step, so that the
// wizard may move to the next one. It is a pure function of its arguments.
//
// Requirements per step:
//   - TaskType: a task type is selected
//   - Route: pickup address set; every stop address set (multi-stop) or drop-off set
//   - Details: at least one stop and every stop has a product name (multi-stop), or the item
//     has a product name and a description
//   - Service, Payment, Confirm: always satisfied
//
// Unknown steps never advance.
func CanAdvance(step Step, d draft.Draft) bool {
	switch step {
	case StepTaskType:
		return d.TaskType().IsSet()
	case StepRoute:
		return routeComplete(d)
	case StepDetails:
		return detailsComplete(d)
	case StepService, StepPayment, StepConfirm:
		return true
	default:
		return false
	}
}

// FirstIncompleteStep returns the first step whose requirements d does not meet. Steps
// without requirements are never incomplete, so the result is at most StepDetails.
func FirstIncompleteStep(d draft.Draft) (Step, bool) {
	for step := FirstStep; step < StepService; step++ {
		if !CanAdvance(step, d) {
			return step, true
		}
	}
	return 0, false
}

func routeComplete(d draft.Draft) bool {
	if d.PickupAddress() == "" {
		return false
	}
	if !d.TaskType().IsMultiStop() {
		return d.DropoffAddress() != ""
	}
	for _, stop := range d.Stops().All() {
		if stop.Address == "" {
			return false
		}
	}
	return true
}

func detailsComplete(d draft.Draft) bool {
	if !d.TaskType().IsMultiStop() {
		return d.Item().ProductName != "" && d.Item().Description != ""
	}
	if d.Stops().Len() == 0 {
		return false
	}
	for _, stop := range d.Stops().All() {
		if stop.ProductName == "" {
			return false
		}
	}
	return true
}
