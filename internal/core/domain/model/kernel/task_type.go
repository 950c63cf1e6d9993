package kernel

import (
	"fmt"

	"taskwizard/internal/pkg/errs"
)

// TaskType is the kind of delivery being assembled. It is chosen once, on the first
// wizard step, and decides which draft fields matter on every later step.
type TaskType int

const (
	// TaskTypeUnset is the zero value: no task type has been selected yet.
	TaskTypeUnset TaskType = iota
	// Send is a single pickup to drop-off delivery.
	Send
	// Errand is a merchant pickup delivered to the user's address.
	Errand
	// MultiStop is one pickup followed by any number of stops, each with its own package.
	MultiStop
)

func taskTypeIDs() map[TaskType]string {
	return map[TaskType]string{
		Send:      "send",
		Errand:    "errand",
		MultiStop: "multistop",
	}
}

// ParseTaskType maps a wire id ("send", "errand", "multistop") to a TaskType.
// The empty string maps to TaskTypeUnset.
func ParseTaskType(id string) (TaskType, error) {
	if id == "" {
		return TaskTypeUnset, nil
	}
	for t, s := range taskTypeIDs() {
		if s == id {
			return t, nil
		}
	}
	return TaskTypeUnset, errs.NewValueIsInvalidErrorWithCause("task type", fmt.Errorf("%q is not a known task type", id))
}

// Validate accepts Send, Errand and MultiStop.
func (t TaskType) Validate() error {
	if _, ok := taskTypeIDs()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("task type", fmt.Errorf("%d is not a valid task type", t))
	}
	return nil
}

// IsSet reports whether a task type has been selected.
func (t TaskType) IsSet() bool {
	return t.Validate() == nil
}

// IsMultiStop reports whether the draft is a multi-stop route.
func (t TaskType) IsMultiStop() bool {
	return t == MultiStop
}

// String returns the wire id, or "" for TaskTypeUnset and unknown values.
func (t TaskType) String() string {
	return taskTypeIDs()[t]
}
