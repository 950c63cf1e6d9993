package draft

import (
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
)

// Edit is one user change to a draft. Edits are pure: they return the edited copy.
type Edit func(Draft) (Draft, error)

// Apply runs edits in order against d. When any edit fails the original draft is
// returned together with the error, so a batch is applied entirely or not at all.
func Apply(d Draft, edits ...Edit) (Draft, error) {
	if err := d.Validate(); err != nil {
		return d, err
	}

	next := d
	for _, edit := range edits {
		var err error
		if next, err = edit(next); err != nil {
			return d, err
		}
	}
	return next, nil
}

func SetTaskType(taskType kernel.TaskType) Edit {
	return func(d Draft) (Draft, error) {
		return d.WithTaskType(taskType)
	}
}

func SetPickup(address, contact string) Edit {
	return func(d Draft) (Draft, error) {
		return d.WithPickup(address, contact), nil
	}
}

func SetDropoff(address string, contact Contact) Edit {
	return func(d Draft) (Draft, error) {
		return d.WithDropoff(address, contact), nil
	}
}

func UpdateItem(patch ItemPatch) Edit {
	return func(d Draft) (Draft, error) {
		return d.WithItem(patch)
	}
}

func SetSchedule(preference TimePreference, scheduledDate string) Edit {
	return func(d Draft) (Draft, error) {
		return d.WithSchedule(preference, scheduledDate)
	}
}

func SetPaymentMethod(method PaymentMethod) Edit {
	return func(d Draft) (Draft, error) {
		return d.WithPaymentMethod(method)
	}
}

func SetServiceLevel(level tariff.ServiceLevel) Edit {
	return func(d Draft) (Draft, error) {
		return d.WithServiceLevel(level)
	}
}

func AddStop() Edit {
	return func(d Draft) (Draft, error) {
		next, _, err := d.AddStop()
		return next, err
	}
}

func RemoveStopAt(index int) Edit {
	return func(d Draft) (Draft, error) {
		return d.RemoveStopAt(index)
	}
}

func RemoveStop(id kernel.UUID) Edit {
	return func(d Draft) (Draft, error) {
		return d.RemoveStop(id)
	}
}

func UpdateStopAt(index int, patch StopPatch) Edit {
	return func(d Draft) (Draft, error) {
		return d.UpdateStopAt(index, patch)
	}
}

func UpdateStop(id kernel.UUID, patch StopPatch) Edit {
	return func(d Draft) (Draft, error) {
		return d.UpdateStop(id, patch)
	}
}
