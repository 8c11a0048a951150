package formulas

import (
	"math"
	"testing"
)

func TestCalculateEMI(t *testing.T) {
	tests := []struct {
		name         string
		principal    float64
		annualRate   float64
		tenureMonths int
		expected     float64
		tolerance    float64
		description  string
	}{
		{
			name:         "Home loan 5L at 8% over 5 years",
			principal:    500000,
			annualRate:   8.0,
			tenureMonths: 60,
			expected:     10138.0,
			tolerance:    2.0,
			description:  "Standard amortizing loan, ~10,139/month",
		},
		{
			name:         "Zero interest degrades to straight-line",
			principal:    120000,
			annualRate:   0,
			tenureMonths: 12,
			expected:     10000,
			tolerance:    0.0001,
			description:  "EMI = P / n when rate is 0",
		},
		{
			name:         "Single month loan",
			principal:    10000,
			annualRate:   12.0,
			tenureMonths: 1,
			expected:     10100,
			tolerance:    0.01,
			description:  "One period pays principal plus one month of interest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emi, err := CalculateEMI(tt.principal, tt.annualRate, tt.tenureMonths)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(emi-tt.expected) > tt.tolerance {
				t.Errorf("EMI = %.2f, want %.2f ± %.2f - %s",
					emi, tt.expected, tt.tolerance, tt.description)
			}
		})
	}
}

func TestCalculateEMI_InvalidInputs(t *testing.T) {
	tests := []struct {
		name         string
		principal    float64
		annualRate   float64
		tenureMonths int
	}{
		{name: "zero principal", principal: 0, annualRate: 8, tenureMonths: 12},
		{name: "negative principal", principal: -1000, annualRate: 8, tenureMonths: 12},
		{name: "zero tenure", principal: 1000, annualRate: 8, tenureMonths: 0},
		{name: "negative tenure", principal: 1000, annualRate: 8, tenureMonths: -6},
		{name: "negative rate", principal: 1000, annualRate: -1, tenureMonths: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateEMI(tt.principal, tt.annualRate, tt.tenureMonths)
			if err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
