package tariff_test

import (
	"testing"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
	"taskwizard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRateTables_Fees(t *testing.T) {
	tables := tariff.DefaultRateTables()
	require.NoError(t, tables.Validate())

	assert.Equal(t, 79, tables.BaseFare(tariff.Drone))
	assert.Equal(t, 59, tables.BaseFare(tariff.Robot))
	assert.Equal(t, 30, tables.DistanceRate(tariff.Drone))
	assert.Equal(t, 15, tables.DistanceRate(tariff.Robot))
	assert.Equal(t, 5, tables.PlaceholderDistanceKm())

	assert.Equal(t, 20, tables.WeightFee(tariff.Drone, kernel.Send, tariff.WeightUpTo1))
	assert.Equal(t, 100, tables.WeightFee(tariff.Robot, kernel.Send, tariff.Weight5To10))
	assert.Equal(t, 0, tables.WeightFee(tariff.Drone, kernel.Send, tariff.WeightBracket("9-99")))

	assert.Equal(t, 10, tables.SizeFee(kernel.Errand, tariff.SizeMedium))
	assert.Equal(t, 50, tables.SizeFee(kernel.Errand, tariff.SizeExtraLarge))
	assert.Equal(t, -10, tables.ServiceFee(tariff.Scheduled))
	assert.Equal(t, 40, tables.ServiceFee(tariff.Express))

	assert.Equal(t, 10, tables.PerStopFee())
	assert.Equal(t, 10, tables.PerStopMonitoringFee())
	assert.Equal(t, 20, tables.InsuranceFee())
	assert.Equal(t, 10, tables.PlatformFee())
}

func TestRateTables_OptionsDependOnTaskType(t *testing.T) {
	tables := tariff.DefaultRateTables()

	t.Run("multi-stop gets the narrow subset", func(t *testing.T) {
		weights := tables.WeightOptions(kernel.MultiStop)
		sizes := tables.SizeOptions(kernel.MultiStop)

		require.Len(t, weights, 2)
		assert.Equal(t, tariff.WeightUpTo1, weights[0].Bracket)
		assert.Equal(t, tariff.Weight1To3, weights[1].Bracket)
		require.Len(t, sizes, 2)
		assert.False(t, tables.AllowsWeight(kernel.MultiStop, tariff.Weight3To5))
		assert.False(t, tables.AllowsSize(kernel.MultiStop, tariff.SizeLarge))
	})

	t.Run("single item orders get every bracket", func(t *testing.T) {
		assert.Len(t, tables.WeightOptions(kernel.Send), 4)
		assert.Len(t, tables.SizeOptions(kernel.Errand), 4)
		assert.True(t, tables.AllowsWeight(kernel.Send, tariff.Weight5To10))
		assert.True(t, tables.AllowsSize(kernel.Send, tariff.SizeExtraLarge))
	})

	t.Run("returned options cannot alter the tables", func(t *testing.T) {
		options := tables.WeightOptions(kernel.Send)
		options[0].DroneFee = 999

		assert.Equal(t, 20, tables.WeightFee(tariff.Drone, kernel.Send, tariff.WeightUpTo1))
	})
}

func TestRateTables_FeesDependOnTaskType(t *testing.T) {
	tables := tariff.DefaultRateTables()

	t.Run("multi-stop prices brackets it does not offer as 0", func(t *testing.T) {
		assert.Equal(t, 0, tables.WeightFee(tariff.Drone, kernel.MultiStop, tariff.Weight3To5))
		assert.Equal(t, 0, tables.SizeFee(kernel.MultiStop, tariff.SizeExtraLarge))
	})

	t.Run("multi-stop prices its own brackets like every task type", func(t *testing.T) {
		assert.Equal(t, 30, tables.WeightFee(tariff.Drone, kernel.MultiStop, tariff.Weight1To3))
		assert.Equal(t, 10, tables.SizeFee(kernel.MultiStop, tariff.SizeMedium))
	})

	t.Run("an unset task type sees every bracket", func(t *testing.T) {
		assert.Equal(t, 50, tables.WeightFee(tariff.Drone, kernel.TaskTypeUnset, tariff.Weight3To5))
	})
}

func validFares() tariff.Fares {
	return tariff.Fares{
		BaseFare:              map[tariff.FulfillmentMode]int{tariff.Drone: 79, tariff.Robot: 59},
		DistanceRate:          map[tariff.FulfillmentMode]int{tariff.Drone: 30, tariff.Robot: 15},
		PlaceholderDistanceKm: 5,
		PerStopFee:            10,
		PerStopMonitoringFee:  10,
		InsuranceFee:          20,
		PlatformFee:           10,
	}
}

func weightOptions() []tariff.WeightOption {
	return []tariff.WeightOption{{Bracket: tariff.WeightUpTo1, DroneFee: 20, RobotFee: 30}}
}

func sizeOptions() []tariff.SizeOption {
	return []tariff.SizeOption{{Bracket: tariff.SizeSmall, Fee: 0}}
}

func serviceOptions(fee int) []tariff.ServiceOption {
	return []tariff.ServiceOption{{Level: tariff.Scheduled, Fee: fee}}
}

func TestNewRateTables(t *testing.T) {
	t.Run("should build custom tables", func(t *testing.T) {
		tables, err := tariff.NewRateTables(validFares(), weightOptions(), sizeOptions(), serviceOptions(-500))

		require.NoError(t, err)
		require.NoError(t, tables.Validate())
		assert.Equal(t, -500, tables.ServiceFee(tariff.Scheduled))
		assert.Equal(t, 0, tables.ServiceFee(tariff.Express), "levels missing from the table cost nothing")
		assert.Len(t, tables.WeightOptions(kernel.Send), 1)
	})

	t.Run("should copy the inputs", func(t *testing.T) {
		fares := validFares()
		weights := weightOptions()
		tables, err := tariff.NewRateTables(fares, weights, sizeOptions(), serviceOptions(0))
		require.NoError(t, err)

		fares.BaseFare[tariff.Drone] = 1
		weights[0].DroneFee = 999

		assert.Equal(t, 79, tables.BaseFare(tariff.Drone))
		assert.Equal(t, 20, tables.WeightFee(tariff.Drone, kernel.Send, tariff.WeightUpTo1))
	})

	t.Run("should report every invalid fare", func(t *testing.T) {
		fares := validFares()
		delete(fares.BaseFare, tariff.Robot)
		fares.PlatformFee = -1
		fares.DistanceRate[tariff.Drone] = -30

		_, err := tariff.NewRateTables(fares, weightOptions(), sizeOptions(), serviceOptions(0))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "base fare robot")
		assert.Contains(t, err.Error(), "platform fee")
		assert.Contains(t, err.Error(), "distance rate drone")
	})

	t.Run("should reject bad bracket options", func(t *testing.T) {
		cases := map[string]struct {
			weights  []tariff.WeightOption
			sizes    []tariff.SizeOption
			services []tariff.ServiceOption
		}{
			"no weights": {nil, sizeOptions(), serviceOptions(0)},
			"duplicate weight": {
				append(weightOptions(), weightOptions()...), sizeOptions(), serviceOptions(0),
			},
			"negative size fee": {
				weightOptions(), []tariff.SizeOption{{Bracket: tariff.SizeSmall, Fee: -1}}, serviceOptions(0),
			},
			"unknown size": {
				weightOptions(), []tariff.SizeOption{{Bracket: tariff.SizeBracket("oversized")}}, serviceOptions(0),
			},
			"unknown service level": {
				weightOptions(), sizeOptions(), []tariff.ServiceOption{{Level: tariff.ServiceLevel("overnight")}},
			},
		}

		for name, c := range cases {
			t.Run(name, func(t *testing.T) {
				tables, err := tariff.NewRateTables(validFares(), c.weights, c.sizes, c.services)

				require.Error(t, err)
				assert.ErrorIs(t, tables.Validate(), tariff.ErrRateTablesAreNotConstructed)
			})
		}
	})
}

func TestBrackets_Validate(t *testing.T) {
	require.NoError(t, tariff.Weight3To5.Validate())
	require.NoError(t, tariff.SizeExtraLarge.Validate())
	require.NoError(t, tariff.Scheduled.Validate())

	require.ErrorIs(t, tariff.WeightBracket("5+").Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, tariff.SizeBracket("oversized").Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, tariff.ServiceLevel("overnight").Validate(), errs.ErrValueIsInvalid)
}

func TestRateTables_ZeroValueIsRejected(t *testing.T) {
	var tables tariff.RateTables
	assert.Equal(t, tariff.ErrRateTablesAreNotConstructed, tables.Validate())
}
