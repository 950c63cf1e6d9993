package wizard

import (
	"fmt"

	"taskwizard/internal/pkg/errs"
)

// Step is a position in the order wizard. Steps are numbered from 1 and only ever move by one.
//
//	TaskType -> Route -> Details -> Service -> Payment -> Confirm -> (confirmed)
type Step int

const (
	StepTaskType Step = iota + 1
	StepRoute
	StepDetails
	StepService
	StepPayment
	StepConfirm
)

// FirstStep and LastStep bound the wizard.
const (
	FirstStep = StepTaskType
	LastStep  = StepConfirm
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		StepTaskType: "task_type",
		StepRoute:    "route",
		StepDetails:  "details",
		StepService:  "service",
		StepPayment:  "payment",
		StepConfirm:  "confirm",
	}
}

// Validate accepts steps 1 through 6.
func (s Step) Validate() error {
	if s < FirstStep || s > LastStep {
		return errs.NewValueIsOutOfRangeError("step", int(s), int(FirstStep), int(LastStep))
	}
	return nil
}

func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return fmt.Sprintf("step(%d)", int(s))
}
