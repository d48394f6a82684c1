package models

import (
	"fmt"
	"strings"
)

// ProbabilisticResult is the outcome of evaluating a single proposition
// against a decision threshold.
type ProbabilisticResult struct {
	Outcome     bool    `json:"outcome"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// ConfidenceInterval is a 95% interval around a Monte Carlo mean, computed
// with the normal approximation and clamped to [0, 1].
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// DistributionBucket is one of the ten equal-width histogram buckets over
// [0, 1] in a simulation result.
type DistributionBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SimulationResult summarizes the outcome distribution of a Monte Carlo run.
// Bucket counts sum to Iterations.
type SimulationResult struct {
	Iterations   int                  `json:"iterations"`
	Mean         float64              `json:"mean"`
	StdDev       float64              `json:"std_dev"`
	Min          float64              `json:"min"`
	Max          float64              `json:"max"`
	Interval     ConfidenceInterval   `json:"confidence_interval"`
	Distribution []DistributionBucket `json:"distribution"`
}

// Summary renders the result as a short human-readable report.
func (sr SimulationResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d iterations: mean %.4f, std dev %.4f, range [%.4f, %.4f], 95%% CI [%.4f, %.4f]\n",
		sr.Iterations, sr.Mean, sr.StdDev, sr.Min, sr.Max, sr.Interval.Lower, sr.Interval.Upper)
	for _, bucket := range sr.Distribution {
		fmt.Fprintf(&b, "  %s: %d\n", bucket.Label, bucket.Count)
	}
	return b.String()
}

// ProbabilisticEntailment is a proposition whose probability, given the
// supplied evidence, met or exceeded the entailment threshold.
type ProbabilisticEntailment struct {
	Proposition string             `json:"proposition"`
	Probability float64            `json:"probability"`
	Interval    ConfidenceInterval `json:"confidence_interval"`
	Evidence    Evidence           `json:"evidence"`
	Explanation string             `json:"explanation"`
}

// RiskCategory classifies a risk probability into one of four bands.
type RiskCategory int32

const (
	RiskLow RiskCategory = iota + 1
	RiskModerate
	RiskHigh
	RiskCritical
)

func (rc RiskCategory) String() string {
	switch rc {
	case RiskLow:
		return "Low"
	case RiskModerate:
		return "Moderate"
	case RiskHigh:
		return "High"
	case RiskCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// RiskCategoryFromProbability maps a probability onto a risk band. Band lower
// bounds are inclusive: 0.75 and above is Critical, 0.5 and above High, 0.25
// and above Moderate, anything below Low.
func RiskCategoryFromProbability(p float64) RiskCategory {
	switch {
	case p >= 0.75:
		return RiskCritical
	case p >= 0.5:
		return RiskHigh
	case p >= 0.25:
		return RiskModerate
	default:
		return RiskLow
	}
}

// RiskLevel is the quantified assessment of a single regulatory risk.
type RiskLevel struct {
	RiskID      string             `json:"risk_id"`
	Probability float64            `json:"probability"`
	Interval    ConfidenceInterval `json:"confidence_interval"`
	Category    RiskCategory       `json:"category"`
	Explanation string             `json:"explanation"`
}

// RiskAssessmentReport is a batch of risk assessments derived from one
// evidence set, tagged for the caller's audit trail.
type RiskAssessmentReport struct {
	ID                 string      `json:"id"`
	CreatedAtMillisUTC int64       `json:"created_at_millis_utc"`
	Evidence           Evidence    `json:"evidence"`
	Risks              []RiskLevel `json:"risks"`
}
