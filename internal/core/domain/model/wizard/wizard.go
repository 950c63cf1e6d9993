package wizard

import (
	"errors"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/pkg/errs"
	"taskwizard/internal/pkg/guard"
)

var (
	// ErrWizardIsNotConstructed is returned when a Wizard was not created through New.
	ErrWizardIsNotConstructed = errors.New("Wizard must be created via New constructor")

	// ErrStepIncomplete is returned by Advance when the draft does not satisfy the current
	// step, and by Confirm when it no longer satisfies an earlier one. It is an expected
	// outcome of user input, not a failure.
	ErrStepIncomplete = errs.NewConflictError("current step is incomplete")

	// ErrConfirmationRequiresSubmission is returned by Advance on the confirm step. Leaving
	// the confirm step happens only through a successful submission (see Confirm).
	ErrConfirmationRequiresSubmission = errs.NewConflictError("confirm step is left only by submitting the draft")

	// ErrNotOnConfirmStep is returned by Confirm before the wizard reached the confirm step.
	ErrNotOnConfirmStep = errs.NewConflictError("draft can be submitted only from the confirm step")

	// ErrWizardConfirmed is returned by every transition once the draft has been submitted.
	ErrWizardConfirmed = errs.NewConflictError("wizard is already confirmed")
)

// Wizard tracks the current step of one order session. It is a value: transitions return
// the next Wizard and leave the receiver unchanged.
//
// After a successful submission the wizard is confirmed. A confirmed wizard carries the
// created task id and accepts no further transitions.
type Wizard struct {
	step      Step
	confirmed bool
	taskID    kernel.UUID

	guard guard.ConstructorGuard
}

// New starts a wizard. When the user arrived with a task type already chosen the
// task-type step is skipped and the wizard opens on the route step.
func New(preselected kernel.TaskType) Wizard {
	step := StepTaskType
	if preselected.IsSet() {
		step = StepRoute
	}
	return Wizard{
		step:  step,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate rejects zero-value wizards.
func (w Wizard) Validate() error {
	return w.guard.Validate(ErrWizardIsNotConstructed)
}

// Step returns the current step. A confirmed wizard stays on StepConfirm.
func (w Wizard) Step() Step {
	return w.step
}

// Confirmed reports whether the draft has been submitted.
func (w Wizard) Confirmed() bool {
	return w.confirmed
}

// TaskID returns the id of the task created on submission, and false before that.
func (w Wizard) TaskID() (kernel.UUID, bool) {
	return w.taskID, w.confirmed
}

// Advance moves to the next step when CanAdvance holds for the current one.
//
// Returns:
//   - ErrStepIncomplete when the draft does not satisfy the current step
//   - ErrConfirmationRequiresSubmission on the confirm step
//   - ErrWizardConfirmed once the draft has been submitted
func (w Wizard) Advance(d draft.Draft) (Wizard, error) {
	if err := w.checkOpen(); err != nil {
		return w, err
	}
	if !CanAdvance(w.step, d) {
		return w, ErrStepIncomplete
	}
	if w.step == LastStep {
		return w, ErrConfirmationRequiresSubmission
	}

	w.step++
	return w, nil
}

// Back moves to the previous step. On the first step there is nowhere to go: exited is
// true, the wizard is unchanged and the caller should discard the session.
func (w Wizard) Back() (next Wizard, exited bool, err error) {
	if err = w.checkOpen(); err != nil {
		return w, false, err
	}
	if w.step == FirstStep {
		return w, true, nil
	}

	w.step--
	return w, false, nil
}

// Confirm records a successful submission of d as the task taskID. Only the confirm step
// can be confirmed, and only while d still satisfies every step before it: edits are
// accepted on any step and may have undone an earlier one.
func (w Wizard) Confirm(d draft.Draft, taskID kernel.UUID) (Wizard, error) {
	if err := w.checkOpen(); err != nil {
		return w, err
	}
	if err := taskID.Validate(); err != nil {
		return w, err
	}
	if w.step != LastStep {
		return w, ErrNotOnConfirmStep
	}
	if _, incomplete := FirstIncompleteStep(d); incomplete {
		return w, ErrStepIncomplete
	}

	w.confirmed = true
	w.taskID = taskID
	return w, nil
}

// Rewind moves the wizard back to the first step d does not satisfy when that step lies
// before the current one. Otherwise, and for confirmed wizards, w is returned unchanged.
func (w Wizard) Rewind(d draft.Draft) Wizard {
	if w.checkOpen() != nil {
		return w
	}
	if step, incomplete := FirstIncompleteStep(d); incomplete && step < w.step {
		w.step = step
	}
	return w
}

func (w Wizard) checkOpen() error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.confirmed {
		return ErrWizardConfirmed
	}
	return nil
}
