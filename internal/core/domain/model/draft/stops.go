package draft

import (
	"slices"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/pkg/errs"
)

// Stops is the ordered stop list of a draft. Every operation returns a new list and
// leaves the receiver untouched, so a published draft never changes under its readers.
type Stops struct {
	items []Stop
}

// Len returns the number of stops.
func (s Stops) Len() int {
	return len(s.items)
}

// All returns a copy of the stops in display order.
func (s Stops) All() []Stop {
	return slices.Clone(s.items)
}

// At returns the stop at index.
func (s Stops) At(index int) (Stop, error) {
	if err := s.checkIndex(index); err != nil {
		return Stop{}, err
	}
	return s.items[index], nil
}

// IndexOf returns the display position of the stop with id, or -1.
func (s Stops) IndexOf(id kernel.UUID) int {
	return slices.IndexFunc(s.items, func(stop Stop) bool {
		return stop.id.IsEqual(id)
	})
}

// Add appends stop. There is no upper bound on the number of stops.
func (s Stops) Add(stop Stop) Stops {
	items := make([]Stop, 0, len(s.items)+1)
	items = append(items, s.items...)
	return Stops{items: append(items, stop)}
}

// RemoveAt removes exactly the stop at index; later stops shift down by one.
// An index outside [0, Len) is a caller bug and returns a ValueIsOutOfRangeError.
func (s Stops) RemoveAt(index int) (Stops, error) {
	if err := s.checkIndex(index); err != nil {
		return s, err
	}
	return Stops{items: slices.Delete(slices.Clone(s.items), index, index+1)}, nil
}

// Remove removes the stop with id.
func (s Stops) Remove(id kernel.UUID) (Stops, error) {
	index := s.IndexOf(id)
	if index < 0 {
		return s, errs.NewObjectNotFoundError("stop", id.String())
	}
	return s.RemoveAt(index)
}

// UpdateAt merges patch into the stop at index. Other stops are unchanged.
func (s Stops) UpdateAt(index int, patch StopPatch) (Stops, error) {
	if err := s.checkIndex(index); err != nil {
		return s, err
	}

	updated, err := patch.apply(s.items[index])
	if err != nil {
		return s, err
	}

	items := slices.Clone(s.items)
	items[index] = updated
	return Stops{items: items}, nil
}

// Update merges patch into the stop with id.
func (s Stops) Update(id kernel.UUID, patch StopPatch) (Stops, error) {
	index := s.IndexOf(id)
	if index < 0 {
		return s, errs.NewObjectNotFoundError("stop", id.String())
	}
	return s.UpdateAt(index, patch)
}

func (s Stops) checkIndex(index int) error {
	if index < 0 || index >= len(s.items) {
		return errs.NewValueIsOutOfRangeError("stop index", index, 0, len(s.items)-1)
	}
	return nil
}
