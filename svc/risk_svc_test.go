package svc

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal-reasoning-core/svc/models"
)

func buildComplianceNetwork(t *testing.T) *models.Network {
	t.Helper()
	network := models.NewNetwork()
	require.NoError(t, network.AddNode("prior_violation", 0.15))
	require.NoError(t, network.AddConditionalProbability("audit_risk", []string{"prior_violation"}, 0.80))
	require.NoError(t, network.AddConditionalProbability("penalty_risk", []string{"prior_violation"}, 0.60))
	require.NoError(t, network.AddConditionalProbability("license_risk", []string{"prior_violation"}, 0.30))
	require.NoError(t, network.AddConditionalProbability("reputational_risk", []string{"prior_violation"}, 0.10))
	return network
}

func TestQuantifyRiskCategorizes(t *testing.T) {
	quantifier := NewRiskService(buildComplianceNetwork(t))
	quantifier.SetSimulationCount(100)

	evidence := models.Evidence{"prior_violation": true}

	risk, err := quantifier.QuantifyRisk("audit_risk", evidence)
	require.NoError(t, err)
	assert.Equal(t, models.RiskCritical, risk.Category)
	assert.Equal(t, 0.80, risk.Probability)
	assert.True(t, strings.Contains(risk.Explanation, "Critical"))
	assert.True(t, strings.Contains(risk.Explanation, "80.00%"))

	risk, err = quantifier.QuantifyRisk("penalty_risk", evidence)
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, risk.Category)

	risk, err = quantifier.QuantifyRisk("license_risk", evidence)
	require.NoError(t, err)
	assert.Equal(t, models.RiskModerate, risk.Category)

	risk, err = quantifier.QuantifyRisk("reputational_risk", evidence)
	require.NoError(t, err)
	assert.Equal(t, models.RiskLow, risk.Category)
}

func TestQuantifyRiskIntervalIsPointMassUnderFullEvidence(t *testing.T) {
	quantifier := NewRiskService(buildComplianceNetwork(t))
	quantifier.SetSimulationCount(100)

	risk, err := quantifier.QuantifyRisk("audit_risk", models.Evidence{"prior_violation": true})
	require.NoError(t, err)
	assert.InDelta(t, 0.80, risk.Interval.Lower, 1e-12)
	assert.InDelta(t, 0.80, risk.Interval.Upper, 1e-12)
}

func TestQuantifyUnknownRiskIsLow(t *testing.T) {
	quantifier := NewRiskService(buildComplianceNetwork(t))
	quantifier.SetSimulationCount(100)

	risk, err := quantifier.QuantifyRisk("unknown_risk", models.Evidence{"prior_violation": true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, risk.Probability)
	assert.Equal(t, models.RiskLow, risk.Category)
}

func TestAssessRisksPreservesInputOrder(t *testing.T) {
	quantifier := NewRiskService(buildComplianceNetwork(t))
	quantifier.SetSimulationCount(100)

	ids := []string{"reputational_risk", "audit_risk", "license_risk"}
	risks, err := quantifier.AssessRisks(ids, models.Evidence{"prior_violation": true})
	require.NoError(t, err)

	require.Len(t, risks, 3)
	for i, id := range ids {
		assert.Equal(t, id, risks[i].RiskID)
	}
}

func TestAssessRisksParallelMatchesSequential(t *testing.T) {
	quantifier := NewRiskService(buildComplianceNetwork(t))
	quantifier.SetSimulationCount(100)

	ids := []string{"audit_risk", "penalty_risk", "license_risk", "reputational_risk"}
	evidence := models.Evidence{"prior_violation": true}

	sequential, err := quantifier.AssessRisks(ids, evidence)
	require.NoError(t, err)
	parallel, err := quantifier.AssessRisksParallel(context.Background(), ids, evidence)
	require.NoError(t, err)

	// with the sole parent pinned every simulation is a point mass, so the
	// two paths agree exactly
	assert.Equal(t, sequential, parallel)
}

func TestHighPriorityRisks(t *testing.T) {
	quantifier := NewRiskService(buildComplianceNetwork(t))
	quantifier.SetSimulationCount(100)

	ids := []string{"audit_risk", "penalty_risk", "license_risk", "reputational_risk"}
	priority, err := quantifier.HighPriorityRisks(ids, models.Evidence{"prior_violation": true})
	require.NoError(t, err)

	require.Len(t, priority, 2)
	assert.Equal(t, "audit_risk", priority[0].RiskID)
	assert.Equal(t, models.RiskCritical, priority[0].Category)
	assert.Equal(t, "penalty_risk", priority[1].RiskID)
	assert.Equal(t, models.RiskHigh, priority[1].Category)
}

func TestBuildAssessmentReport(t *testing.T) {
	quantifier := NewRiskService(buildComplianceNetwork(t))
	quantifier.SetSimulationCount(100)

	evidence := models.Evidence{"prior_violation": true}
	report, err := quantifier.BuildAssessmentReport([]string{"audit_risk", "penalty_risk"}, evidence)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(report.ID, "assessment_"))
	assert.Greater(t, report.CreatedAtMillisUTC, int64(0))
	assert.Len(t, report.Risks, 2)
	assert.Equal(t, evidence, report.Evidence)

	// the report holds its own copy of the evidence
	report.Evidence["prior_violation"] = false
	assert.True(t, evidence["prior_violation"])
}
