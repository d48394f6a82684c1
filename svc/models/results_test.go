package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskCategoryFromProbabilityBoundaries(t *testing.T) {
	cases := []struct {
		probability float64
		expected    RiskCategory
	}{
		{0.10, RiskLow},
		{0.25, RiskModerate},
		{0.49, RiskModerate},
		{0.50, RiskHigh},
		{0.74, RiskHigh},
		{0.75, RiskCritical},
		{1.00, RiskCritical},
		{0.00, RiskLow},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, RiskCategoryFromProbability(tc.probability),
			"probability %v", tc.probability)
	}
}

func TestRiskCategoryString(t *testing.T) {
	assert.Equal(t, "Low", RiskLow.String())
	assert.Equal(t, "Moderate", RiskModerate.String())
	assert.Equal(t, "High", RiskHigh.String())
	assert.Equal(t, "Critical", RiskCritical.String())
	assert.Equal(t, "Unknown", RiskCategory(0).String())
}

func TestSimulationResultSummary(t *testing.T) {
	result := SimulationResult{
		Iterations: 100,
		Mean:       0.5,
		StdDev:     0.1,
		Min:        0.2,
		Max:        0.9,
		Interval:   ConfidenceInterval{Lower: 0.48, Upper: 0.52},
		Distribution: []DistributionBucket{
			{Label: "0.0-0.1", Count: 0},
			{Label: "0.5-0.6", Count: 100},
		},
	}

	summary := result.Summary()
	assert.True(t, strings.Contains(summary, "100 iterations"))
	assert.True(t, strings.Contains(summary, "0.5-0.6: 100"))
}
