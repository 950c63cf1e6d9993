package draft

import (
	"errors"
	"fmt"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
	"taskwizard/internal/pkg/errs"
	"taskwizard/internal/pkg/guard"
)

// ErrDraftIsNotConstructed is returned when a Draft was not created through NewDraft.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

// ErrStopsRequireMultiStop is returned when a stop is added to a draft that is not a
// multi-stop route.
var ErrStopsRequireMultiStop = errs.NewConflictError("stops can only be added to a multi-stop draft")

// TimePreference says whether the order should go out now or at a scheduled date.
type TimePreference string

const (
	DeliverNow       TimePreference = "now"
	DeliverScheduled TimePreference = "scheduled"
)

func (p TimePreference) Validate() error {
	if p != DeliverNow && p != DeliverScheduled {
		return errs.NewValueIsInvalidErrorWithCause("time preference", fmt.Errorf("%q is not a known time preference", string(p)))
	}
	return nil
}

// PaymentMethod is how the user will pay for the order.
type PaymentMethod string

const (
	Cash  PaymentMethod = "cash"
	GCash PaymentMethod = "gcash"
	Card  PaymentMethod = "card"
)

func (m PaymentMethod) Validate() error {
	switch m {
	case Cash, GCash, Card:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not a known payment method", string(m)))
	}
}

// Contact is a person reachable at a delivery address.
type Contact struct {
	Name  string
	Phone string
}

// String formats the contact as "name, phone", or just "name" when there is no phone.
func (c Contact) String() string {
	if c.Phone == "" {
		return c.Name
	}
	return c.Name + ", " + c.Phone
}

// Draft is the in-progress order of one wizard session.
//
// Draft is an immutable value: every edit returns a new Draft and leaves the receiver
// unchanged. The session replaces its draft wholesale after each edit, and the price
// calculator and wizard only ever read a snapshot.
type Draft struct {
	id       kernel.UUID
	taskType kernel.TaskType

	pickupAddress  string
	pickupContact  string
	dropoffAddress string
	dropoffContact Contact

	stops Stops
	item  Item

	timePreference TimePreference
	scheduledDate  string
	paymentMethod  PaymentMethod
	serviceLevel   tariff.ServiceLevel

	guard guard.ConstructorGuard
}

// NewDraft creates an empty draft. taskType may be kernel.TaskTypeUnset when the user
// has not picked one yet.
//
// Defaults: deliver now, cash payment, regular service, a 0-1 kg small item, no insurance.
func NewDraft(id kernel.UUID, taskType kernel.TaskType) (Draft, error) {
	if err := id.Validate(); err != nil {
		return Draft{}, err
	}
	if taskType != kernel.TaskTypeUnset {
		if err := taskType.Validate(); err != nil {
			return Draft{}, err
		}
	}

	return Draft{
		id:             id,
		taskType:       taskType,
		item:           defaultItem(),
		timePreference: DeliverNow,
		paymentMethod:  Cash,
		serviceLevel:   tariff.DefaultService,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate rejects zero-value drafts.
func (d Draft) Validate() error {
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

func (d Draft) ID() kernel.UUID                   { return d.id }
func (d Draft) TaskType() kernel.TaskType         { return d.taskType }
func (d Draft) PickupAddress() string             { return d.pickupAddress }
func (d Draft) PickupContact() string             { return d.pickupContact }
func (d Draft) DropoffAddress() string            { return d.dropoffAddress }
func (d Draft) DropoffContact() Contact           { return d.dropoffContact }
func (d Draft) Stops() Stops                      { return d.stops }
func (d Draft) Item() Item                        { return d.item }
func (d Draft) TimePreference() TimePreference    { return d.timePreference }
func (d Draft) ScheduledDate() string             { return d.scheduledDate }
func (d Draft) PaymentMethod() PaymentMethod      { return d.paymentMethod }
func (d Draft) ServiceLevel() tariff.ServiceLevel { return d.serviceLevel }

// WithTaskType selects the task type. Stops entered before a switch away from multi-stop
// are kept so that switching back does not lose them, but only RouteStops are priced
// and submitted.
func (d Draft) WithTaskType(taskType kernel.TaskType) (Draft, error) {
	if err := taskType.Validate(); err != nil {
		return d, err
	}
	d.taskType = taskType
	return d, nil
}

func (d Draft) WithPickup(address, contact string) Draft {
	d.pickupAddress = address
	d.pickupContact = contact
	return d
}

func (d Draft) WithDropoff(address string, contact Contact) Draft {
	d.dropoffAddress = address
	d.dropoffContact = contact
	return d
}

// WithItem merges patch into the single item.
func (d Draft) WithItem(patch ItemPatch) (Draft, error) {
	item, err := patch.apply(d.item)
	if err != nil {
		return d, err
	}
	d.item = item
	return d, nil
}

// WithSchedule sets the time preference and the free-text scheduled date.
func (d Draft) WithSchedule(preference TimePreference, scheduledDate string) (Draft, error) {
	if err := preference.Validate(); err != nil {
		return d, err
	}
	d.timePreference = preference
	d.scheduledDate = scheduledDate
	return d, nil
}

func (d Draft) WithPaymentMethod(method PaymentMethod) (Draft, error) {
	if err := method.Validate(); err != nil {
		return d, err
	}
	d.paymentMethod = method
	return d, nil
}

func (d Draft) WithServiceLevel(level tariff.ServiceLevel) (Draft, error) {
	if err := level.Validate(); err != nil {
		return d, err
	}
	d.serviceLevel = level
	return d, nil
}

// RouteStops are the stops that belong to the route: every stop of a multi-stop draft
// and none for other task types.
func (d Draft) RouteStops() Stops {
	if !d.taskType.IsMultiStop() {
		return Stops{}
	}
	return d.stops
}

// AddStop appends a stop with default package attributes and returns it. Only multi-stop
// drafts take stops; others are left unchanged with ErrStopsRequireMultiStop.
func (d Draft) AddStop() (Draft, Stop, error) {
	if !d.taskType.IsMultiStop() {
		return d, Stop{}, ErrStopsRequireMultiStop
	}
	stop := NewStop()
	d.stops = d.stops.Add(stop)
	return d, stop, nil
}

// RemoveStopAt removes the stop at index. An invalid index leaves the draft unchanged and
// returns a ValueIsOutOfRangeError.
func (d Draft) RemoveStopAt(index int) (Draft, error) {
	stops, err := d.stops.RemoveAt(index)
	if err != nil {
		return d, err
	}
	d.stops = stops
	return d, nil
}

func (d Draft) RemoveStop(id kernel.UUID) (Draft, error) {
	stops, err := d.stops.Remove(id)
	if err != nil {
		return d, err
	}
	d.stops = stops
	return d, nil
}

// UpdateStopAt merges patch into the stop at index.
func (d Draft) UpdateStopAt(index int, patch StopPatch) (Draft, error) {
	stops, err := d.stops.UpdateAt(index, patch)
	if err != nil {
		return d, err
	}
	d.stops = stops
	return d, nil
}

func (d Draft) UpdateStop(id kernel.UUID, patch StopPatch) (Draft, error) {
	stops, err := d.stops.Update(id, patch)
	if err != nil {
		return d, err
	}
	d.stops = stops
	return d, nil
}
