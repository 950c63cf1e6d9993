package services

import (
	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/tariff"
)

// PricingMode is the fulfillment mode every quote is priced against.
const PricingMode = tariff.Drone

// MultiStopPackageFees selects how package fees are charged on multi-stop drafts.
type MultiStopPackageFees int

const (
	// SelectorPackageFees prices the draft's single-item weight and size selectors for
	// every task type, multi-stop included.
	SelectorPackageFees MultiStopPackageFees = iota
	// PerStopPackageFees prices multi-stop drafts by the sum of each stop's weight and
	// size fee. Send and errand drafts are unaffected.
	PerStopPackageFees
)

func (m MultiStopPackageFees) String() string {
	if m == PerStopPackageFees {
		return "per_stop"
	}
	return "selector"
}

// PriceCalculator is a domain service producing the itemized quote of a draft.
//
// Quote lines:
//   - base fare and distance fee of the designated mode over the placeholder distance
//   - weight, size and service fees of the selected brackets; brackets that are unknown
//     or not offered for the task type price as 0
//   - per-stop and per-stop monitoring fees for every stop of a multi-stop route
//   - insurance fee when the single item is insured
//   - platform fee
//
// The total is the sum of all lines, floored at zero.
//
// Example usage:
//
//	calculator := services.NewPriceCalculator(tariff.DefaultRateTables(), services.SelectorPackageFees)
//	quote := calculator.Calculate(d)
//	fmt.Println(quote.Total)
type PriceCalculator struct {
	tables      tariff.RateTables
	packageFees MultiStopPackageFees
}

// NewPriceCalculator creates a calculator over tables.
//
// Parameters:
//   - tables: Rate tables to price against (must be constructed)
//   - packageFees: How multi-stop drafts are charged for their packages
//
// Returns:
//   - PriceCalculator: A calculator ready to quote drafts
//   - error: tariff.ErrRateTablesAreNotConstructed for zero-value tables
func NewPriceCalculator(tables tariff.RateTables, packageFees MultiStopPackageFees) (PriceCalculator, error) {
	if err := tables.Validate(); err != nil {
		return PriceCalculator{}, err
	}
	return PriceCalculator{tables: tables, packageFees: packageFees}, nil
}

// Tables returns the rate tables the calculator prices against.
func (p PriceCalculator) Tables() tariff.RateTables {
	return p.tables
}

// Calculate quotes d. It is pure: equal drafts always produce equal breakdowns, and the
// draft is not modified.
func (p PriceCalculator) Calculate(d draft.Draft) tariff.Breakdown {
	stops := d.RouteStops().Len()

	b := tariff.Breakdown{
		BaseFare:      p.tables.BaseFare(PricingMode),
		DistanceFee:   p.tables.PlaceholderDistanceKm() * p.tables.DistanceRate(PricingMode),
		ServiceFee:    p.tables.ServiceFee(d.ServiceLevel()),
		StopFee:       stops * p.tables.PerStopFee(),
		MonitoringFee: stops * p.tables.PerStopMonitoringFee(),
		PlatformFee:   p.tables.PlatformFee(),
	}
	b.WeightFee, b.SizeFee = p.packageFee(d)

	if d.Item().Insurance {
		b.InsuranceFee = p.tables.InsuranceFee()
	}

	b.Total = max(0, b.Sum())
	return b
}

// packageFee prices brackets against the options offered for the draft's task type, so a
// selector left on a bracket the task type does not offer costs nothing.
func (p PriceCalculator) packageFee(d draft.Draft) (weightFee, sizeFee int) {
	taskType := d.TaskType()
	if p.packageFees == PerStopPackageFees && taskType.IsMultiStop() {
		for _, stop := range d.RouteStops().All() {
			weightFee += p.tables.WeightFee(PricingMode, taskType, stop.Weight)
			sizeFee += p.tables.SizeFee(taskType, stop.Size)
		}
		return weightFee, sizeFee
	}

	item := d.Item()
	return p.tables.WeightFee(PricingMode, taskType, item.Weight), p.tables.SizeFee(taskType, item.Size)
}
