package tariff

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/pkg/errs"
	"taskwizard/internal/pkg/guard"
)

// ErrRateTablesAreNotConstructed is returned when RateTables is used as a zero value.
var ErrRateTablesAreNotConstructed = errors.New("RateTables must be created via NewRateTables or DefaultRateTables")

// Fares are the flat amounts of a tariff, in whole currency units.
type Fares struct {
	BaseFare              map[FulfillmentMode]int
	DistanceRate          map[FulfillmentMode]int
	PlaceholderDistanceKm int
	PerStopFee            int
	PerStopMonitoringFee  int
	InsuranceFee          int
	PlatformFee           int
}

// RateTables is the static lookup data behind every quote. It is immutable: option lists are
// copied on read, so callers cannot alter the tables they were given.
//
// Multi-stop orders may only use the lower brackets (see WeightOptions and SizeOptions).
// Packages outside that subset are allowed on a stop but must be flagged to the user.
type RateTables struct {
	baseFare              map[FulfillmentMode]int
	distanceRate          map[FulfillmentMode]int
	placeholderDistanceKm int

	weights  []WeightOption
	sizes    []SizeOption
	services []ServiceOption

	multiStopWeights []WeightBracket
	multiStopSizes   []SizeBracket

	perStopFee           int
	perStopMonitoringFee int
	insuranceFee         int
	platformFee          int

	guard guard.ConstructorGuard
}

// NewRateTables builds a tariff from fares and bracket options. The multi-stop subsets are
// fixed to the two lightest weights and the two smallest sizes.
//
// Every fulfillment mode needs a base fare and a distance rate. Fares and bracket fees may
// not be negative; service fees may. Each bracket and service level may appear once.
func NewRateTables(
	fares Fares,
	weights []WeightOption,
	sizes []SizeOption,
	services []ServiceOption,
) (RateTables, error) {
	r := RateTables{
		multiStopWeights: []WeightBracket{WeightUpTo1, Weight1To3},
		multiStopSizes:   []SizeBracket{SizeSmall, SizeMedium},
	}

	if err := errors.Join(
		r.setFares(fares),
		r.setWeights(weights),
		r.setSizes(sizes),
		r.setServices(services),
	); err != nil {
		return RateTables{}, err
	}

	r.guard = guard.NewConstructorGuard()
	return r, nil
}

// DefaultRateTables returns the production tariff.
func DefaultRateTables() RateTables {
	tables, err := NewRateTables(
		Fares{
			BaseFare:              map[FulfillmentMode]int{Drone: 79, Robot: 59},
			DistanceRate:          map[FulfillmentMode]int{Drone: 30, Robot: 15},
			PlaceholderDistanceKm: 5,
			PerStopFee:            10,
			PerStopMonitoringFee:  10,
			InsuranceFee:          20,
			PlatformFee:           10,
		},
		[]WeightOption{
			{Bracket: WeightUpTo1, Label: "0-1 kg", DroneFee: 20, RobotFee: 30},
			{Bracket: Weight1To3, Label: "1-3 kg", DroneFee: 30, RobotFee: 40},
			{Bracket: Weight3To5, Label: "3-5 kg", DroneFee: 50, RobotFee: 60},
			{Bracket: Weight5To10, Label: "5-10 kg", DroneFee: 80, RobotFee: 100},
		},
		[]SizeOption{
			{Bracket: SizeSmall, Label: "Small", Fee: 0},
			{Bracket: SizeMedium, Label: "Medium", Fee: 10},
			{Bracket: SizeLarge, Label: "Large", Fee: 30},
			{Bracket: SizeExtraLarge, Label: "Extra Large", Fee: 50},
		},
		[]ServiceOption{
			{Level: Express, Label: "Instant / Express", Description: "Fastest delivery (30-60 mins)", Fee: 40},
			{Level: Regular, Label: "Regular", Description: "Standard delivery (1-2 hours)", Fee: 0},
			{Level: Scheduled, Label: "Scheduled", Description: "Schedule for later (cheaper)", Fee: -10},
		},
	)
	if err != nil {
		panic(err)
	}
	return tables
}

func (r *RateTables) setFares(f Fares) error {
	var problems []error
	for _, mode := range []FulfillmentMode{Drone, Robot} {
		problems = append(problems,
			nonNegative("base fare "+mode.String(), f.BaseFare, mode),
			nonNegative("distance rate "+mode.String(), f.DistanceRate, mode),
		)
	}
	for _, fare := range []struct {
		name   string
		amount int
	}{
		{"placeholder distance", f.PlaceholderDistanceKm},
		{"per stop fee", f.PerStopFee},
		{"per stop monitoring fee", f.PerStopMonitoringFee},
		{"insurance fee", f.InsuranceFee},
		{"platform fee", f.PlatformFee},
	} {
		if fare.amount < 0 {
			problems = append(problems, negative(fare.name, fare.amount))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	r.baseFare = maps.Clone(f.BaseFare)
	r.distanceRate = maps.Clone(f.DistanceRate)
	r.placeholderDistanceKm = f.PlaceholderDistanceKm
	r.perStopFee = f.PerStopFee
	r.perStopMonitoringFee = f.PerStopMonitoringFee
	r.insuranceFee = f.InsuranceFee
	r.platformFee = f.PlatformFee
	return nil
}

func nonNegative(name string, amounts map[FulfillmentMode]int, mode FulfillmentMode) error {
	amount, ok := amounts[mode]
	if !ok {
		return errs.NewValueIsRequiredError(name)
	}
	if amount < 0 {
		return negative(name, amount)
	}
	return nil
}

func negative(name string, amount int) error {
	return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", amount))
}

func (r *RateTables) setWeights(options []WeightOption) error {
	if len(options) == 0 {
		return errs.NewValueIsRequiredError("weight options")
	}
	seen := make(map[WeightBracket]bool, len(options))
	for _, o := range options {
		if err := o.Bracket.Validate(); err != nil {
			return err
		}
		if seen[o.Bracket] {
			return errs.NewValueIsInvalidErrorWithCause("weight options", fmt.Errorf("%s listed twice", o.Bracket))
		}
		if o.DroneFee < 0 || o.RobotFee < 0 {
			return negative("weight fee "+string(o.Bracket), min(o.DroneFee, o.RobotFee))
		}
		seen[o.Bracket] = true
	}
	r.weights = slices.Clone(options)
	return nil
}

func (r *RateTables) setSizes(options []SizeOption) error {
	if len(options) == 0 {
		return errs.NewValueIsRequiredError("size options")
	}
	seen := make(map[SizeBracket]bool, len(options))
	for _, o := range options {
		if err := o.Bracket.Validate(); err != nil {
			return err
		}
		if seen[o.Bracket] {
			return errs.NewValueIsInvalidErrorWithCause("size options", fmt.Errorf("%s listed twice", o.Bracket))
		}
		if o.Fee < 0 {
			return negative("size fee "+string(o.Bracket), o.Fee)
		}
		seen[o.Bracket] = true
	}
	r.sizes = slices.Clone(options)
	return nil
}

// setServices accepts negative fees: a service level may be a discount.
func (r *RateTables) setServices(options []ServiceOption) error {
	if len(options) == 0 {
		return errs.NewValueIsRequiredError("service options")
	}
	seen := make(map[ServiceLevel]bool, len(options))
	for _, o := range options {
		if err := o.Level.Validate(); err != nil {
			return err
		}
		if seen[o.Level] {
			return errs.NewValueIsInvalidErrorWithCause("service options", fmt.Errorf("%s listed twice", o.Level))
		}
		seen[o.Level] = true
	}
	r.services = slices.Clone(options)
	return nil
}

// Validate rejects zero-value tables.
func (r RateTables) Validate() error {
	return r.guard.Validate(ErrRateTablesAreNotConstructed)
}

// BaseFare is the flat fare of mode.
func (r RateTables) BaseFare(mode FulfillmentMode) int {
	return r.baseFare[mode]
}

// DistanceRate is the fee per kilometre for the given mode.
func (r RateTables) DistanceRate(mode FulfillmentMode) int {
	return r.distanceRate[mode]
}

// PlaceholderDistanceKm is the fixed trip length used until real geolocation exists.
func (r RateTables) PlaceholderDistanceKm() int {
	return r.placeholderDistanceKm
}

// WeightFee returns the fee of bracket for mode among the weights offered for taskType.
// A bracket that is unknown or not offered for taskType costs 0.
func (r RateTables) WeightFee(mode FulfillmentMode, taskType kernel.TaskType, bracket WeightBracket) int {
	for _, o := range r.WeightOptions(taskType) {
		if o.Bracket == bracket {
			return o.Fee(mode)
		}
	}
	return 0
}

// SizeFee returns the fee of bracket among the sizes offered for taskType. A bracket that
// is unknown or not offered for taskType costs 0.
func (r RateTables) SizeFee(taskType kernel.TaskType, bracket SizeBracket) int {
	for _, o := range r.SizeOptions(taskType) {
		if o.Bracket == bracket {
			return o.Fee
		}
	}
	return 0
}

// ServiceFee returns the fee delta of level, or 0 for an unknown level.
func (r RateTables) ServiceFee(level ServiceLevel) int {
	for _, o := range r.services {
		if o.Level == level {
			return o.Fee
		}
	}
	return 0
}

// PerStopFee is charged once for every stop of a multi-stop route.
func (r RateTables) PerStopFee() int { return r.perStopFee }

// PerStopMonitoringFee is the tracking fee charged for every stop of a multi-stop route.
func (r RateTables) PerStopMonitoringFee() int { return r.perStopMonitoringFee }

// InsuranceFee is charged when the single item is insured.
func (r RateTables) InsuranceFee() int { return r.insuranceFee }

// PlatformFee is added to every quote.
func (r RateTables) PlatformFee() int { return r.platformFee }

// WeightOptions lists the weight brackets selectable for taskType.
// Multi-stop orders get the narrower subset.
func (r RateTables) WeightOptions(taskType kernel.TaskType) []WeightOption {
	if !taskType.IsMultiStop() {
		return slices.Clone(r.weights)
	}
	options := make([]WeightOption, 0, len(r.multiStopWeights))
	for _, o := range r.weights {
		if slices.Contains(r.multiStopWeights, o.Bracket) {
			options = append(options, o)
		}
	}
	return options
}

// SizeOptions lists the size brackets selectable for taskType.
func (r RateTables) SizeOptions(taskType kernel.TaskType) []SizeOption {
	if !taskType.IsMultiStop() {
		return slices.Clone(r.sizes)
	}
	options := make([]SizeOption, 0, len(r.multiStopSizes))
	for _, o := range r.sizes {
		if slices.Contains(r.multiStopSizes, o.Bracket) {
			options = append(options, o)
		}
	}
	return options
}

// ServiceOptions lists the service levels. They do not depend on the task type.
func (r RateTables) ServiceOptions() []ServiceOption {
	return slices.Clone(r.services)
}

// AllowsWeight reports whether bracket is selectable for taskType.
func (r RateTables) AllowsWeight(taskType kernel.TaskType, bracket WeightBracket) bool {
	return slices.ContainsFunc(r.WeightOptions(taskType), func(o WeightOption) bool {
		return o.Bracket == bracket
	})
}

// AllowsSize reports whether bracket is selectable for taskType.
func (r RateTables) AllowsSize(taskType kernel.TaskType, bracket SizeBracket) bool {
	return slices.ContainsFunc(r.SizeOptions(taskType), func(o SizeOption) bool {
		return o.Bracket == bracket
	})
}
