package svc

import "legal-reasoning-core/inference"

// The engine services implement the inference boundary the statute
// evaluation layer depends on.
var (
	_ inference.Evaluator    = (*EvaluatorService)(nil)
	_ inference.Simulator    = (*MonteCarloService)(nil)
	_ inference.Entailer     = (*EntailmentService)(nil)
	_ inference.RiskAssessor = (*RiskService)(nil)
)
