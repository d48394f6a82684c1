package svc

import (
	"fmt"

	"legal-reasoning-core/svc/models"
)

// EvaluatorService answers yes/no questions about propositions by comparing
// their queried probability against a decision threshold.
type EvaluatorService struct {
	network   *models.Network
	threshold float64
}

// NewEvaluatorService creates an evaluator over a copy of the network with
// the default threshold of 0.5.
func NewEvaluatorService(network *models.Network) *EvaluatorService {
	return &EvaluatorService{
		network:   network.Clone(),
		threshold: 0.5,
	}
}

// NewEvaluatorServiceWithThreshold creates an evaluator with a custom
// decision threshold.
func NewEvaluatorServiceWithThreshold(network *models.Network, threshold float64) (*EvaluatorService, error) {
	es := NewEvaluatorService(network)
	if err := es.SetThreshold(threshold); err != nil {
		return nil, err
	}
	return es, nil
}

// SetThreshold replaces the decision threshold, re-validating the [0, 1]
// bound.
func (es *EvaluatorService) SetThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold %v: %w", threshold, models.ErrInvalidProbability)
	}
	es.threshold = threshold
	return nil
}

// Threshold returns the current decision threshold.
func (es *EvaluatorService) Threshold() float64 {
	return es.threshold
}

// Evaluate queries the proposition under the given evidence and decides the
// outcome against the threshold. The queried probability doubles as the
// confidence of the result.
func (es *EvaluatorService) Evaluate(proposition string, evidence models.Evidence) *models.ProbabilisticResult {
	p := es.network.Query(proposition, evidence)
	return &models.ProbabilisticResult{
		Outcome:    p >= es.threshold,
		Confidence: p,
		Explanation: fmt.Sprintf("Probability of '%s' is %.2f%% against a threshold of %.2f%%",
			proposition, p*100, es.threshold*100),
	}
}
