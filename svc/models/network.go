package models

import "fmt"

// DefaultPrior is assigned to nodes that are auto-created as a side effect of
// declaring a conditional dependency before the node itself.
const DefaultPrior = 0.5

// Evidence is a partial assignment of truth values to proposition identifiers,
// supplied by the caller at query time. It does not need to cover every node.
type Evidence map[string]bool

// Clone returns an independent copy of the evidence assignment.
func (e Evidence) Clone() Evidence {
	cloned := make(Evidence, len(e))
	for id, v := range e {
		cloned[id] = v
	}
	return cloned
}

// Node is a single uncertain legal proposition: a prior probability, an
// ordered list of parent propositions, and a conditional probability table
// keyed by the parents' truth-value combination.
type Node struct {
	ID      string             `json:"id"`
	Prior   float64            `json:"prior"`
	Parents []string           `json:"parents"`
	CPT     map[string]float64 `json:"cpt"`
}

// stateKey encodes an ordered parent-state vector as a CPT key.
func stateKey(states []bool) string {
	key := make([]byte, len(states))
	for i, s := range states {
		if s {
			key[i] = 't'
		} else {
			key[i] = 'f'
		}
	}
	return string(key)
}

// SetConditional records the probability of the node being true under the
// given parent-state combination. The state vector must have one entry per
// parent, in parent-declaration order.
func (n *Node) SetConditional(states []bool, probability float64) error {
	if probability < 0 || probability > 1 {
		return fmt.Errorf("conditional probability %v for node %s: %w", probability, n.ID, ErrInvalidProbability)
	}
	if len(states) != len(n.Parents) {
		return fmt.Errorf("node %s has %d parents, got state vector of length %d: %w",
			n.ID, len(n.Parents), len(states), ErrParentArityMismatch)
	}
	if n.CPT == nil {
		n.CPT = make(map[string]float64)
	}
	n.CPT[stateKey(states)] = probability
	return nil
}

// clone returns a deep copy of the node.
func (n *Node) clone() *Node {
	cloned := &Node{
		ID:      n.ID,
		Prior:   n.Prior,
		Parents: append([]string(nil), n.Parents...),
		CPT:     make(map[string]float64, len(n.CPT)),
	}
	for k, v := range n.CPT {
		cloned.CPT[k] = v
	}
	return cloned
}

// Network is a Bayesian network over legal propositions. It is mutable during
// the builder phase (AddNode / AddConditionalProbability) and treated as
// read-only once handed to an evaluation service; services clone it on
// construction so later builder mutation does not leak into them.
//
// Nodes iterate in insertion order. Go map iteration is randomized, which
// would make seeded simulations and entailment output nondeterministic, so
// the network keeps an explicit order slice next to the node map.
//
// No acyclicity check is performed. A query is a single-hop table lookup, so
// a cyclic network cannot loop, but its conditional entries have no coherent
// reading.
type Network struct {
	nodes map[string]*Node
	order []string
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{nodes: make(map[string]*Node)}
}

// AddNode creates or overwrites a parentless node with the given prior.
func (net *Network) AddNode(id string, prior float64) error {
	if prior < 0 || prior > 1 {
		return fmt.Errorf("prior %v for node %s: %w", prior, id, ErrInvalidProbability)
	}
	if _, exists := net.nodes[id]; !exists {
		net.order = append(net.order, id)
	}
	net.nodes[id] = &Node{
		ID:    id,
		Prior: prior,
		CPT:   make(map[string]float64),
	}
	return nil
}

// AddConditionalProbability declares that nodeID depends on the given parents
// and records the probability of nodeID being true when every parent is true.
// Parents (and the node itself) are auto-created with DefaultPrior when not
// already present. Parents accumulate across calls in call order, duplicates
// ignored.
//
// Besides the all-true entry, heuristic entries are seeded so unspecified
// combinations are not silently answered with the prior: with one parent the
// all-false entry is probability x 0.1; with two parents the mixed entries
// are probability x 0.3 and the all-false entry probability x 0.05. With
// three or more parents only the all-true entry is recorded and every other
// combination falls back to the prior at query time. The attenuation factors
// stand in for an elicited table, not a statistically principled one.
func (net *Network) AddConditionalProbability(nodeID string, parentIDs []string, probabilityAllTrue float64) error {
	if probabilityAllTrue < 0 || probabilityAllTrue > 1 {
		return fmt.Errorf("conditional probability %v for node %s: %w", probabilityAllTrue, nodeID, ErrInvalidProbability)
	}

	for _, parentID := range parentIDs {
		if _, exists := net.nodes[parentID]; !exists {
			if err := net.AddNode(parentID, DefaultPrior); err != nil {
				return err
			}
		}
	}

	node, exists := net.nodes[nodeID]
	if !exists {
		if err := net.AddNode(nodeID, DefaultPrior); err != nil {
			return err
		}
		node = net.nodes[nodeID]
	}

	for _, parentID := range parentIDs {
		if !containsID(node.Parents, parentID) {
			node.Parents = append(node.Parents, parentID)
		}
	}

	allTrue := make([]bool, len(node.Parents))
	for i := range allTrue {
		allTrue[i] = true
	}
	if err := node.SetConditional(allTrue, probabilityAllTrue); err != nil {
		return err
	}

	switch len(node.Parents) {
	case 1:
		if err := node.SetConditional([]bool{false}, probabilityAllTrue*0.1); err != nil {
			return err
		}
	case 2:
		if err := node.SetConditional([]bool{true, false}, probabilityAllTrue*0.3); err != nil {
			return err
		}
		if err := node.SetConditional([]bool{false, true}, probabilityAllTrue*0.3); err != nil {
			return err
		}
		if err := node.SetConditional([]bool{false, false}, probabilityAllTrue*0.05); err != nil {
			return err
		}
	}

	return nil
}

// Query returns the probability of nodeID being true given the evidence.
// A parentless node answers with its prior regardless of evidence. Otherwise
// the parent-state vector is built in parent-declaration order, with any
// parent absent from the evidence treated as false; when the exact vector has
// no CPT entry the node's prior is returned, never a partial match.
//
// An identifier absent from the network answers 0.0 rather than an error.
// The statute evaluation layer probes attributes that may never have been
// compiled into the network, and an unknown proposition is simply never
// entailed.
func (net *Network) Query(nodeID string, evidence Evidence) float64 {
	node, ok := net.nodes[nodeID]
	if !ok {
		return 0.0
	}
	if len(node.Parents) == 0 {
		return node.Prior
	}

	states := make([]bool, len(node.Parents))
	for i, parentID := range node.Parents {
		states[i] = evidence[parentID]
	}
	if p, ok := node.CPT[stateKey(states)]; ok {
		return p
	}
	return node.Prior
}

// Node returns the node registered under id.
func (net *Network) Node(id string) (*Node, bool) {
	node, ok := net.nodes[id]
	return node, ok
}

// NodeIDs returns the node identifiers in insertion order.
func (net *Network) NodeIDs() []string {
	return append([]string(nil), net.order...)
}

// Len returns the number of nodes in the network.
func (net *Network) Len() int {
	return len(net.nodes)
}

// Clone returns a deep copy of the network. Consumers clone on construction,
// so mutating the original builder afterwards does not affect them.
func (net *Network) Clone() *Network {
	cloned := &Network{
		nodes: make(map[string]*Node, len(net.nodes)),
		order: append([]string(nil), net.order...),
	}
	for id, node := range net.nodes {
		cloned.nodes[id] = node.clone()
	}
	return cloned
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
