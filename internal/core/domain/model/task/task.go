package task

import (
	"errors"
	"time"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/pkg/errs"
)

// DefaultETA is the estimate shown on the tracking view until a courier is assigned.
const DefaultETA = "15 min"

var (
	// ErrTaskIsNotConstructed is returned when a Task instance was not created through
	// the NewTask or RestoreTask factory methods.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")
)

// Task is a submitted delivery order. It is the aggregate root handed to order creation
// and read back by the tracking view.
//
// Task follows these invariants:
//   - Must have a valid unique identifier
//   - Must carry a valid submission (task type, price, selections)
//   - Starts Pending with the default ETA
//   - Can only be created through NewTask or RestoreTask
type Task struct {
	// id is the unique identifier returned to the tracking view
	id kernel.UUID

	// submission is the confirmed draft content and its price
	submission Submission

	// eta is the human readable arrival estimate
	eta string

	// status is the tracking state
	status Status

	// createdAt is the submission time
	createdAt time.Time

	// isConstructed ensures the task was created via NewTask
	isConstructed bool
}

// NewTask creates a Pending task from a confirmed submission.
//
// Parameters:
//   - id: Unique identifier for the task (must be valid UUID)
//   - submission: The assembled draft (must pass Submission.Validate)
//   - createdAt: Submission time
//
// Returns:
//   - *Task: The created task if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	submission, _ := assembler.Assemble(d)
//	t, err := task.NewTask(kernel.NewUUID(), submission, time.Now().UTC())
//	if err != nil {
//	    // Handle validation error
//	}
func NewTask(id kernel.UUID, submission Submission, createdAt time.Time) (*Task, error) {
	return RestoreTask(id, submission, DefaultETA, Pending, createdAt)
}

// RestoreTask rebuilds a task loaded from persistence, validating every field.
func RestoreTask(id kernel.UUID, submission Submission, eta string, status Status, createdAt time.Time) (*Task, error) {
	t := &Task{
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setSubmission(submission),
		t.setETA(eta),
		t.setStatus(status),
		t.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Task instance was properly constructed through NewTask.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}

	return nil
}

// IsEqual compares two tasks by their unique identifiers.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// Submission returns a copy of the submitted content.
func (t *Task) Submission() Submission {
	return t.submission.clone()
}

// ETA returns the arrival estimate.
func (t *Task) ETA() string {
	return t.eta
}

// Status returns the tracking state of the task.
func (t *Task) Status() Status {
	return t.status
}

// CreatedAt returns the submission time.
func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setSubmission(submission Submission) error {
	if err := submission.Validate(); err != nil {
		return err
	}
	t.submission = submission.clone()
	return nil
}

func (t *Task) setETA(eta string) error {
	if eta == "" {
		return errs.NewValueIsRequiredError("eta")
	}
	t.eta = eta
	return nil
}

func (t *Task) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Task) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	t.createdAt = createdAt
	return nil
}
