package wizard

import (
	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
)

// StopWarning flags a multi-stop package that is heavier or bigger than multi-stop
// orders allow. It is advisory only.
type StopWarning struct {
	StopID       kernel.UUID
	Index        int
	Weight       tariff.WeightBracket
	Size         tariff.SizeBracket
	WeightExceed bool
	SizeExceed   bool
}

// StopWarnings lists the stops of a multi-stop draft whose weight or size bracket is
// outside the multi-stop subset of tables. Other task types never produce warnings.
// Warnings never block CanAdvance.
func StopWarnings(d draft.Draft, tables tariff.RateTables) []StopWarning {
	if !d.TaskType().IsMultiStop() {
		return nil
	}

	var warnings []StopWarning
	for i, stop := range d.Stops().All() {
		weightOK := tables.AllowsWeight(kernel.MultiStop, stop.Weight)
		sizeOK := tables.AllowsSize(kernel.MultiStop, stop.Size)
		if weightOK && sizeOK {
			continue
		}
		warnings = append(warnings, StopWarning{
			StopID:       stop.ID(),
			Index:        i,
			Weight:       stop.Weight,
			Size:         stop.Size,
			WeightExceed: !weightOK,
			SizeExceed:   !sizeOK,
		})
	}
	return warnings
}
