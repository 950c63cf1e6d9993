package kernel_test

import (
	"testing"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskType(t *testing.T) {
	testCases := []struct {
		input    string
		expected kernel.TaskType
	}{
		{"send", kernel.Send},
		{"errand", kernel.Errand},
		{"multistop", kernel.MultiStop},
		{"", kernel.TaskTypeUnset},
	}

	for _, tc := range testCases {
		t.Run("should parse "+tc.input, func(t *testing.T) {
			taskType, err := kernel.ParseTaskType(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, taskType)
			assert.Equal(t, tc.input, taskType.String())
		})
	}

	t.Run("should reject unknown ids", func(t *testing.T) {
		_, err := kernel.ParseTaskType("courier")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"courier" is not a known task type`)
	})
}

func TestTaskType_Validate(t *testing.T) {
	assert.NoError(t, kernel.Send.Validate())
	assert.NoError(t, kernel.MultiStop.Validate())
	require.ErrorIs(t, kernel.TaskTypeUnset.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, kernel.TaskType(9).Validate(), errs.ErrValueIsInvalid)

	assert.False(t, kernel.TaskTypeUnset.IsSet())
	assert.True(t, kernel.Errand.IsSet())
	assert.True(t, kernel.MultiStop.IsMultiStop())
	assert.False(t, kernel.Send.IsMultiStop())
}
