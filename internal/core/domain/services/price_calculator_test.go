package services_test

import (
	"testing"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
	"taskwizard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newDraft(t *testing.T, taskType kernel.TaskType, edits ...draft.Edit) draft.Draft {
	t.Helper()

	d, err := draft.NewDraft(kernel.NewUUID(), taskType)
	require.NoError(t, err)
	d, err = draft.Apply(d, edits...)
	require.NoError(t, err)
	return d
}

func newCalculator(t *testing.T, packageFees services.MultiStopPackageFees) services.PriceCalculator {
	t.Helper()

	calculator, err := services.NewPriceCalculator(tariff.DefaultRateTables(), packageFees)
	require.NoError(t, err)
	return calculator
}

func sendGiftDraft(t *testing.T, edits ...draft.Edit) draft.Draft {
	t.Helper()

	base := []draft.Edit{
		draft.SetPickup("A", ""),
		draft.SetDropoff("B", draft.Contact{}),
		draft.UpdateItem(draft.ItemPatch{ProductName: ptr("Phone"), Description: ptr("Gift")}),
		draft.SetServiceLevel(tariff.Regular),
	}
	return newDraft(t, kernel.Send, append(base, edits...)...)
}

func TestNewPriceCalculator(t *testing.T) {
	_, err := services.NewPriceCalculator(tariff.RateTables{}, services.SelectorPackageFees)

	require.ErrorIs(t, err, tariff.ErrRateTablesAreNotConstructed)
}

func TestPriceCalculator_Calculate(t *testing.T) {
	calculator := newCalculator(t, services.SelectorPackageFees)

	t.Run("should quote a send draft line by line", func(t *testing.T) {
		quote := calculator.Calculate(sendGiftDraft(t))

		assert.Equal(t, tariff.Breakdown{
			BaseFare:    79,
			DistanceFee: 150,
			WeightFee:   20,
			SizeFee:     0,
			ServiceFee:  0,
			PlatformFee: 10,
			Total:       259,
		}, quote)
	})

	t.Run("should add stop and monitoring fees per stop", func(t *testing.T) {
		d := sendGiftDraft(t,
			draft.SetTaskType(kernel.MultiStop),
			draft.AddStop(),
			draft.AddStop(),
		)

		quote := calculator.Calculate(d)

		assert.Equal(t, 20, quote.StopFee)
		assert.Equal(t, 20, quote.MonitoringFee)
		assert.Equal(t, 20, quote.WeightFee, "multi-stop still prices the item selectors")
		assert.Equal(t, 299, quote.Total)
	})

	t.Run("should price every selector", func(t *testing.T) {
		d := sendGiftDraft(t,
			draft.UpdateItem(draft.ItemPatch{
				Weight:    ptr(tariff.Weight5To10),
				Size:      ptr(tariff.SizeExtraLarge),
				Insurance: ptr(true),
			}),
			draft.SetServiceLevel(tariff.Express),
		)

		quote := calculator.Calculate(d)

		assert.Equal(t, 80, quote.WeightFee)
		assert.Equal(t, 50, quote.SizeFee)
		assert.Equal(t, 40, quote.ServiceFee)
		assert.Equal(t, 20, quote.InsuranceFee)
		assert.Equal(t, 79+150+80+50+40+20+10, quote.Total)
	})

	t.Run("should discount scheduled delivery", func(t *testing.T) {
		quote := calculator.Calculate(sendGiftDraft(t, draft.SetServiceLevel(tariff.Scheduled)))

		assert.Equal(t, -10, quote.ServiceFee)
		assert.Equal(t, 249, quote.Total)
	})

	t.Run("total should equal the sum of the lines", func(t *testing.T) {
		for _, level := range []tariff.ServiceLevel{tariff.Express, tariff.Regular, tariff.Scheduled} {
			for _, weight := range []tariff.WeightBracket{tariff.WeightUpTo1, tariff.Weight3To5} {
				d := sendGiftDraft(t,
					draft.SetServiceLevel(level),
					draft.UpdateItem(draft.ItemPatch{Weight: ptr(weight)}),
					draft.SetTaskType(kernel.MultiStop),
					draft.AddStop(),
				)

				quote := calculator.Calculate(d)

				assert.Equal(t, quote.Sum(), quote.Total)
				assert.GreaterOrEqual(t, quote.Total, 0)
			}
		}
	})

	t.Run("should be pure", func(t *testing.T) {
		d := sendGiftDraft(t, draft.SetTaskType(kernel.MultiStop), draft.AddStop())
		snapshot := d.Stops().All()

		first := calculator.Calculate(d)
		second := calculator.Calculate(d)

		assert.Equal(t, first, second)
		assert.Equal(t, snapshot, d.Stops().All())
	})

	t.Run("should not depend on the task type for a single item", func(t *testing.T) {
		send := calculator.Calculate(sendGiftDraft(t))
		errand := calculator.Calculate(sendGiftDraft(t, draft.SetTaskType(kernel.Errand)))

		assert.Equal(t, send, errand)
	})
}

func TestPriceCalculator_SelectorFeesFollowTheTaskType(t *testing.T) {
	calculator := newCalculator(t, services.SelectorPackageFees)

	heavy := []draft.Edit{
		draft.UpdateItem(draft.ItemPatch{Weight: ptr(tariff.Weight3To5), Size: ptr(tariff.SizeExtraLarge)}),
	}

	t.Run("should charge heavy brackets on a send draft", func(t *testing.T) {
		quote := calculator.Calculate(newDraft(t, kernel.Send, heavy...))

		assert.Equal(t, 50, quote.WeightFee)
		assert.Equal(t, 50, quote.SizeFee)
	})

	t.Run("should not charge brackets multi-stop does not offer after a type switch", func(t *testing.T) {
		d := newDraft(t, kernel.Send, append(heavy,
			draft.SetTaskType(kernel.MultiStop),
			draft.AddStop(),
			draft.AddStop(),
		)...)

		quote := calculator.Calculate(d)

		assert.Equal(t, 0, quote.WeightFee)
		assert.Equal(t, 0, quote.SizeFee)
		assert.Equal(t, 79+150+20+20+10, quote.Total)
	})
}

func TestPriceCalculator_StopsOnlyCountOnMultiStopRoutes(t *testing.T) {
	calculator := newCalculator(t, services.SelectorPackageFees)

	d := newDraft(t, kernel.MultiStop,
		draft.AddStop(),
		draft.AddStop(),
		draft.SetTaskType(kernel.Send),
	)

	quote := calculator.Calculate(d)

	assert.Equal(t, 2, d.Stops().Len())
	assert.Equal(t, 0, quote.StopFee)
	assert.Equal(t, 0, quote.MonitoringFee)
	assert.Equal(t, 259, quote.Total)
}

func TestPriceCalculator_TotalIsNeverNegative(t *testing.T) {
	defaults := tariff.DefaultRateTables()
	levels := defaults.ServiceOptions()
	for i := range levels {
		if levels[i].Level == tariff.Scheduled {
			levels[i].Fee = -1000
		}
	}
	tables, err := tariff.NewRateTables(
		tariff.Fares{
			BaseFare:              map[tariff.FulfillmentMode]int{tariff.Drone: 79, tariff.Robot: 59},
			DistanceRate:          map[tariff.FulfillmentMode]int{tariff.Drone: 30, tariff.Robot: 15},
			PlaceholderDistanceKm: 5,
			PlatformFee:           10,
		},
		defaults.WeightOptions(kernel.Send),
		defaults.SizeOptions(kernel.Send),
		levels,
	)
	require.NoError(t, err)
	calculator, err := services.NewPriceCalculator(tables, services.SelectorPackageFees)
	require.NoError(t, err)

	quote := calculator.Calculate(sendGiftDraft(t, draft.SetServiceLevel(tariff.Scheduled)))

	assert.Equal(t, -1000, quote.ServiceFee)
	assert.Equal(t, 79+150+20+0-1000+10, quote.Sum())
	assert.Equal(t, 0, quote.Total)
}

func TestPriceCalculator_PerStopPackageFees(t *testing.T) {
	calculator := newCalculator(t, services.PerStopPackageFees)

	t.Run("should sum the package fees of every stop", func(t *testing.T) {
		d := newDraft(t, kernel.MultiStop,
			draft.AddStop(),
			draft.AddStop(),
			draft.UpdateStopAt(1, draft.StopPatch{Weight: ptr(tariff.WeightUpTo1), Size: ptr(tariff.SizeMedium)}),
		)

		quote := calculator.Calculate(d)

		assert.Equal(t, 30+20, quote.WeightFee)
		assert.Equal(t, 0+10, quote.SizeFee)
		assert.Equal(t, 79+150+50+10+20+20+10, quote.Total)
	})

	t.Run("should price no packages when there are no stops", func(t *testing.T) {
		quote := calculator.Calculate(newDraft(t, kernel.MultiStop))

		assert.Equal(t, 0, quote.WeightFee)
		assert.Equal(t, 0, quote.SizeFee)
	})

	t.Run("should leave single item task types unchanged", func(t *testing.T) {
		quote := calculator.Calculate(sendGiftDraft(t))

		assert.Equal(t, 259, quote.Total)
	})
}
