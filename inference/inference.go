package inference

import "legal-reasoning-core/svc/models"

// Evaluator decides whether a single proposition holds given partial
// evidence. Higher level processes like statute evaluation depend on this
// boundary rather than on a concrete engine.
type Evaluator interface {

	// Evaluate computes the proposition's probability under the evidence and
	// decides the outcome against the engine's threshold.
	Evaluate(proposition string, evidence models.Evidence) *models.ProbabilisticResult
}

// Simulator estimates the distribution of a queried probability under random
// assignment of ancestor truth values.
type Simulator interface {

	// Simulate samples fresh evidence for every node on each iteration.
	Simulate(target string, iterations int) (*models.SimulationResult, error)

	// SimulateWithEvidence pins the named nodes to fixed truth values while
	// sampling the rest.
	SimulateWithEvidence(target string, fixed models.Evidence, iterations int) (*models.SimulationResult, error)
}

// Entailer derives the probable conclusions that follow from known facts.
type Entailer interface {
	Entail(evidence models.Evidence) ([]models.ProbabilisticEntailment, error)
	HighlyProbableEntailments(evidence models.Evidence) ([]models.ProbabilisticEntailment, error)
}

// RiskAssessor classifies regulatory risks into probability bands.
type RiskAssessor interface {
	QuantifyRisk(riskID string, evidence models.Evidence) (*models.RiskLevel, error)
	AssessRisks(riskIDs []string, evidence models.Evidence) ([]models.RiskLevel, error)
	HighPriorityRisks(riskIDs []string, evidence models.Evidence) ([]models.RiskLevel, error)
}
