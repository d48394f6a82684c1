package metric

import "legal-reasoning-core/svc/models"

// CPT coverage is a metric of how completely a node's conditional table has
// been elicited. A conditional node answers with its prior for any parent
// combination missing from its table, so low coverage means most evidence
// combinations are not actually informed by the rule author. Nodes with
// three or more parents only get the all-true entry seeded, which is why
// this is worth surfacing to the compilation layer.
func ComputeCPTCoverageMetric(network *models.Network) (models.Metric, error) {
	var coverage_scores []models.Metric
	for _, id := range network.NodeIDs() {
		node, ok := network.Node(id)
		if !ok || len(node.Parents) == 0 {
			continue
		}
		combinations := 1 << len(node.Parents)
		coverage_scores = append(coverage_scores, models.Metric{
			Label:       "CPT Coverage Score",
			Numerator:   int32(len(node.CPT)),
			Denominator: int32(combinations),
		})
	}
	// Return the average coverage across all conditional nodes
	return models.Average(coverage_scores)
}
