package svc

import (
	"fmt"
	"math"
	"time"

	"legal-reasoning-core/svc/models"
)

// 31-bit linear congruential generator parameters. The recurrence is part of
// the engine's compatibility contract: seeded runs must reproduce the same
// draw stream across implementations, so math/rand cannot be substituted.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// MonteCarloService estimates the distribution of a queried probability under
// random assignment of ancestor truth values. Each service owns its own
// generator state, so independent instances never perturb each other's
// streams.
type MonteCarloService struct {
	network *models.Network
	state   int64
}

// NewMonteCarloService creates a simulator over a copy of the network, seeded
// from the wall clock. Unseeded runs are non-reproducible by design; use
// NewMonteCarloServiceWithSeed when reproducibility is required.
func NewMonteCarloService(network *models.Network) *MonteCarloService {
	return NewMonteCarloServiceWithSeed(network, time.Now().UnixNano())
}

// NewMonteCarloServiceWithSeed creates a simulator with a fixed seed. Two
// simulators constructed with the same seed over the same network produce
// identical results for identical calls.
func NewMonteCarloServiceWithSeed(network *models.Network, seed int64) *MonteCarloService {
	return &MonteCarloService{
		network: network.Clone(),
		state:   seed & (lcgModulus - 1),
	}
}

// next advances the generator and maps the state into [0, 1).
func (mc *MonteCarloService) next() float64 {
	mc.state = (mc.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(mc.state) / float64(lcgModulus-1)
}

// Simulate runs the target query against freshly sampled evidence for every
// iteration. Each iteration draws one number per node, in network insertion
// order, and marks the node true when the draw falls below its prior. The
// recorded outcome is the queried probability itself, not a Bernoulli trial.
func (mc *MonteCarloService) Simulate(target string, iterations int) (*models.SimulationResult, error) {
	return mc.run(target, nil, iterations)
}

// SimulateWithEvidence behaves like Simulate except that nodes named in the
// fixed evidence keep their fixed truth value in every iteration and consume
// no draw; all other nodes are still sampled per iteration from the same
// stream.
func (mc *MonteCarloService) SimulateWithEvidence(target string, fixed models.Evidence, iterations int) (*models.SimulationResult, error) {
	return mc.run(target, fixed, iterations)
}

func (mc *MonteCarloService) run(target string, fixed models.Evidence, iterations int) (*models.SimulationResult, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("simulation requires a positive iteration count, got %d", iterations)
	}

	nodeIDs := mc.network.NodeIDs()
	outcomes := make([]float64, 0, iterations)
	for i := 0; i < iterations; i++ {
		sampled := make(models.Evidence, len(nodeIDs))
		for _, id := range nodeIDs {
			if v, ok := fixed[id]; ok {
				sampled[id] = v
				continue
			}
			node, _ := mc.network.Node(id)
			sampled[id] = mc.next() < node.Prior
		}
		outcomes = append(outcomes, mc.network.Query(target, sampled))
	}

	return summarize(outcomes), nil
}

// summarize computes the distribution statistics over the recorded outcomes.
func summarize(outcomes []float64) *models.SimulationResult {
	n := float64(len(outcomes))

	var sum float64
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, o := range outcomes {
		sum += o
		if o < min {
			min = o
		}
		if o > max {
			max = o
		}
	}
	mean := sum / n

	var squared float64
	for _, o := range outcomes {
		d := o - mean
		squared += d * d
	}
	// population standard deviation: divide by n, not n-1
	stdDev := math.Sqrt(squared / n)

	margin := 1.96 * stdDev / math.Sqrt(n)
	interval := models.ConfidenceInterval{
		Lower: math.Max(0, mean-margin),
		Upper: math.Min(1, mean+margin),
	}

	counts := make([]int, 10)
	for _, o := range outcomes {
		bucket := int(o * 10)
		if bucket > 9 {
			bucket = 9
		}
		counts[bucket]++
	}
	distribution := make([]models.DistributionBucket, 10)
	for i, count := range counts {
		distribution[i] = models.DistributionBucket{
			Label: fmt.Sprintf("%.1f-%.1f", float64(i)/10, float64(i+1)/10),
			Count: count,
		}
	}

	return &models.SimulationResult{
		Iterations:   len(outcomes),
		Mean:         mean,
		StdDev:       stdDev,
		Min:          min,
		Max:          max,
		Interval:     interval,
		Distribution: distribution,
	}
}
