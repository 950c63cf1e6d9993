package draft

import (
	"fmt"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
	"taskwizard/internal/pkg/errs"
)

// PhotoRef is an opaque reference to a picture chosen through the media picker.
// The empty value means no photo.
type PhotoRef string

// Stop is one destination and package of a multi-stop order.
//
// A stop keeps a durable identifier assigned when it is created, so edits and removals
// address the stop itself rather than its current position in the list.
type Stop struct {
	id kernel.UUID

	Address      string
	ContactName  string
	ContactPhone string
	Note         string
	Description  string
	ProductName  string
	Photo        PhotoRef
	Weight       tariff.WeightBracket
	Size         tariff.SizeBracket
	ItemCount    int
	Insurance    bool
	ItemValue    string
}

// NewStop returns an empty stop with a fresh identifier and the default package:
// 1-3 kg, small, a single item, no insurance.
func NewStop() Stop {
	return Stop{
		id:        kernel.NewUUID(),
		Weight:    tariff.DefaultStopWeight,
		Size:      tariff.DefaultStopSize,
		ItemCount: 1,
	}
}

// RestoreStop rebuilds a stop with a known identifier, e.g. when a submitted task is loaded.
func RestoreStop(id kernel.UUID, fields Stop) (Stop, error) {
	if err := id.Validate(); err != nil {
		return Stop{}, err
	}
	fields.id = id
	return fields, nil
}

// ID returns the stop identifier.
func (s Stop) ID() kernel.UUID {
	return s.id
}

// StopPatch carries a partial stop update. Nil fields leave the stop value untouched.
type StopPatch struct {
	Address      *string
	ContactName  *string
	ContactPhone *string
	Note         *string
	Description  *string
	ProductName  *string
	Photo        *PhotoRef
	Weight       *tariff.WeightBracket
	Size         *tariff.SizeBracket
	ItemCount    *int
	Insurance    *bool
	ItemValue    *string
}

// apply shallow-merges p over s. Brackets must be known ids; multi-stop limits are not
// enforced here, they are reported as warnings by the wizard.
func (p StopPatch) apply(s Stop) (Stop, error) {
	if p.Weight != nil {
		if err := p.Weight.Validate(); err != nil {
			return Stop{}, err
		}
	}
	if p.Size != nil {
		if err := p.Size.Validate(); err != nil {
			return Stop{}, err
		}
	}
	if p.ItemCount != nil && *p.ItemCount < 1 {
		return Stop{}, errs.NewValueIsInvalidErrorWithCause("item count", fmt.Errorf("%d is not greater than 0", *p.ItemCount))
	}

	merge(&s.Address, p.Address)
	merge(&s.ContactName, p.ContactName)
	merge(&s.ContactPhone, p.ContactPhone)
	merge(&s.Note, p.Note)
	merge(&s.Description, p.Description)
	merge(&s.ProductName, p.ProductName)
	merge(&s.Photo, p.Photo)
	merge(&s.Weight, p.Weight)
	merge(&s.Size, p.Size)
	merge(&s.ItemCount, p.ItemCount)
	merge(&s.Insurance, p.Insurance)
	merge(&s.ItemValue, p.ItemValue)
	return s, nil
}

func merge[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
