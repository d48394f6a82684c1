package svc

import (
	"fmt"
	"log"

	"legal-reasoning-core/svc/models"
)

// EntailmentService derives the propositions that probably follow from a set
// of known case facts.
type EntailmentService struct {
	network         *models.Network
	threshold       float64
	simulationCount int
}

// NewEntailmentService creates an entailment engine over a copy of the
// network with the default threshold of 0.5 and 1000 simulation iterations
// per entailed proposition.
func NewEntailmentService(network *models.Network) *EntailmentService {
	return &EntailmentService{
		network:         network.Clone(),
		threshold:       0.5,
		simulationCount: 1000,
	}
}

// NewEntailmentServiceWithThreshold creates an entailment engine with a
// custom entailment threshold.
func NewEntailmentServiceWithThreshold(network *models.Network, threshold float64) (*EntailmentService, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("threshold %v: %w", threshold, models.ErrInvalidProbability)
	}
	es := NewEntailmentService(network)
	es.threshold = threshold
	return es, nil
}

// SetSimulationCount replaces the number of Monte Carlo iterations used to
// estimate each entailment's confidence interval.
func (es *EntailmentService) SetSimulationCount(count int) {
	es.simulationCount = count
}

// Entail returns every proposition whose probability, given the evidence,
// meets the threshold. Propositions already named in the evidence are never
// reported back as conclusions. Each entailment carries a confidence interval
// estimated by a fresh simulator over a copy of the network. Results follow
// network insertion order.
func (es *EntailmentService) Entail(evidence models.Evidence) ([]models.ProbabilisticEntailment, error) {
	var entailments []models.ProbabilisticEntailment
	for _, id := range es.network.NodeIDs() {
		if _, known := evidence[id]; known {
			continue
		}
		p := es.network.Query(id, evidence)
		if p < es.threshold {
			continue
		}

		sim := NewMonteCarloService(es.network)
		result, err := sim.SimulateWithEvidence(id, evidence, es.simulationCount)
		if err != nil {
			log.Printf("Error simulating entailment for %s: %v", id, err)
			return nil, err
		}

		entailments = append(entailments, models.ProbabilisticEntailment{
			Proposition: id,
			Probability: p,
			Interval:    result.Interval,
			Evidence:    evidence.Clone(),
			Explanation: fmt.Sprintf("'%s' follows with %.2f%% probability (%s likelihood); 95%% CI [%.4f, %.4f]",
				id, p*100, likelihoodLabel(p), result.Interval.Lower, result.Interval.Upper),
		})
	}
	return entailments, nil
}

// HighlyProbableEntailments filters Entail down to propositions with
// probability of at least 0.8.
func (es *EntailmentService) HighlyProbableEntailments(evidence models.Evidence) ([]models.ProbabilisticEntailment, error) {
	entailments, err := es.Entail(evidence)
	if err != nil {
		return nil, err
	}
	var probable []models.ProbabilisticEntailment
	for _, e := range entailments {
		if e.Probability >= 0.8 {
			probable = append(probable, e)
		}
	}
	return probable, nil
}

func likelihoodLabel(p float64) string {
	switch {
	case p >= 0.8:
		return "High"
	case p >= 0.6:
		return "Moderate"
	default:
		return "Low"
	}
}
