package formulas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAmortizationSchedule(t *testing.T) {
	schedule, err := GenerateAmortizationSchedule(500000, 8.0, 60)
	require.NoError(t, err)
	require.Len(t, schedule, 60)

	// Principal components sum back to the original principal
	var principalSum float64
	for _, row := range schedule {
		principalSum += row.Principal
	}
	assert.InDelta(t, 500000, principalSum, 0.01)

	// Balance is monotonically non-increasing and ends at exactly 0
	prev := 500000.0
	for _, row := range schedule {
		assert.LessOrEqual(t, row.Balance, prev+1e-9,
			"balance must never increase (period %d)", row.Period)
		prev = row.Balance
	}
	assert.Equal(t, 0.0, schedule[len(schedule)-1].Balance)

	// Periods are 1-based and sequential
	for i, row := range schedule {
		assert.Equal(t, i+1, row.Period)
	}

	// Each row: payment = principal + interest
	for _, row := range schedule {
		assert.InDelta(t, row.Payment, row.Principal+row.Interest, 1e-6)
	}
}

func TestGenerateAmortizationSchedule_ZeroRate(t *testing.T) {
	schedule, err := GenerateAmortizationSchedule(120000, 0, 12)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	for _, row := range schedule {
		assert.InDelta(t, 10000, row.Payment, 1e-9)
		assert.InDelta(t, 0, row.Interest, 1e-9)
	}
	assert.Equal(t, 0.0, schedule[11].Balance)
}

func TestGenerateAmortizationSchedule_InvalidInput(t *testing.T) {
	_, err := GenerateAmortizationSchedule(0, 8, 60)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestGenerateAmortizationSchedule_Deterministic(t *testing.T) {
	a, err := GenerateAmortizationSchedule(250000, 10.5, 36)
	require.NoError(t, err)
	b, err := GenerateAmortizationSchedule(250000, 10.5, 36)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
