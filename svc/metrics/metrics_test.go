package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal-reasoning-core/svc/models"
)

func TestComputeCPTCoverageMetric(t *testing.T) {
	network := models.NewNetwork()
	// one parent: 2 of 2 combinations seeded
	require.NoError(t, network.AddConditionalProbability("income_sufficient", []string{"employed"}, 0.85))
	// two parents: 4 of 4 combinations seeded
	require.NoError(t, network.AddConditionalProbability("eligible",
		[]string{"age_verified", "income_verified"}, 0.95))
	// three parents: only the all-true entry of 8
	require.NoError(t, network.AddConditionalProbability("benefits_granted",
		[]string{"eligible", "residency_confirmed", "application_filed"}, 0.90))

	metric, err := ComputeCPTCoverageMetric(network)
	require.NoError(t, err)

	assert.Equal(t, "CPT Coverage Score", metric.Label)
	assert.Equal(t, int32(2+4+1), metric.Numerator)
	assert.Equal(t, int32(2+4+8), metric.Denominator)
	assert.InDelta(t, 7.0/14.0, metric.ToPercentage(), 1e-12)
}

func TestComputeCPTCoverageMetricRequiresConditionalNodes(t *testing.T) {
	network := models.NewNetwork()
	require.NoError(t, network.AddNode("employed", 0.7))

	_, err := ComputeCPTCoverageMetric(network)
	assert.Error(t, err)
}
