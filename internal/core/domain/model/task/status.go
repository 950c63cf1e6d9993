package task

import (
	"fmt"

	"taskwizard/internal/pkg/errs"
)

// Status represents the tracking state of a submitted task.
//
// A task is created Pending. Dispatch and delivery are handled by other services,
// so this service never moves a task past Pending.
type Status int

const (
	// Unknown is the zero value; a task never holds it.
	Unknown Status = iota

	// Pending is the status of a freshly submitted task waiting for a courier.
	Pending
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Pending: "Pending",
	}
}

// ParseStatus maps a persisted status name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate accepts Pending only.
func (s Status) Validate() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String is the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
