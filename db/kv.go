package db

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"legal-reasoning-core/svc/models"
)

// NetworkStore is an in-memory registry of compiled proposition networks,
// keyed by jurisdiction and rule, with one entry per compiled version. The
// statute compilation layer writes each rule's network here once and the
// evaluation layer reads them back; nothing is written to disk.
type NetworkStore struct {
	store map[string]map[string][]storedNetwork // jurisdiction -> rule -> versions, ascending
	mu    sync.Mutex
}

// storedNetwork holds one compiled version of a rule's network.
type storedNetwork struct {
	Network *models.Network
	Version int
}

// NewNetworkStore initializes and returns a new NetworkStore.
func NewNetworkStore() *NetworkStore {
	return &NetworkStore{
		store: make(map[string]map[string][]storedNetwork),
	}
}

// Store saves a copy of the network under the given jurisdiction, rule and
// version. Storing an existing version replaces it.
func (ns *NetworkStore) Store(jurisdiction, ruleID string, network *models.Network, version int) error {
	if network == nil {
		return fmt.Errorf("network for rule %s must not be nil", ruleID)
	}
	log.Printf("Storing network with %d nodes for jurisdiction %s, rule %s, version %d",
		network.Len(), jurisdiction, ruleID, version)

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if _, exists := ns.store[jurisdiction]; !exists {
		ns.store[jurisdiction] = make(map[string][]storedNetwork)
	}

	entry := storedNetwork{Network: network.Clone(), Version: version}

	existing := ns.store[jurisdiction][ruleID]
	for i, stored := range existing {
		if stored.Version == version {
			ns.store[jurisdiction][ruleID][i] = entry
			return nil
		}
	}

	ns.store[jurisdiction][ruleID] = append(existing, entry)
	ns.sortByVersion(jurisdiction, ruleID)
	return nil
}

// sortByVersion keeps a rule's versions in ascending order, in case versions
// are stored out of order.
func (ns *NetworkStore) sortByVersion(jurisdiction, ruleID string) {
	versions := ns.store[jurisdiction][ruleID]
	for i := 1; i < len(versions); i++ {
		for j := i; j > 0 && versions[j-1].Version > versions[j].Version; j-- {
			versions[j-1], versions[j] = versions[j], versions[j-1]
		}
	}
}

// Retrieve returns a copy of the latest version of the rule's network.
func (ns *NetworkStore) Retrieve(jurisdiction, ruleID string) (*models.Network, error) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	versions, err := ns.versions(jurisdiction, ruleID)
	if err != nil {
		return nil, err
	}
	return versions[len(versions)-1].Network.Clone(), nil
}

// RetrieveVersion returns a copy of a specific compiled version of the rule's
// network.
func (ns *NetworkStore) RetrieveVersion(jurisdiction, ruleID string, version int) (*models.Network, error) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	versions, err := ns.versions(jurisdiction, ruleID)
	if err != nil {
		return nil, err
	}
	for _, stored := range versions {
		if stored.Version == version {
			return stored.Network.Clone(), nil
		}
	}
	return nil, fmt.Errorf("version %d of rule %s: %w", version, ruleID, ErrNotFound)
}

// ListRules returns the rule identifiers stored under a jurisdiction, sorted.
func (ns *NetworkStore) ListRules(jurisdiction string) ([]string, error) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	rules, exists := ns.store[jurisdiction]
	if !exists {
		return nil, fmt.Errorf("jurisdiction %s: %w", jurisdiction, ErrNotFound)
	}

	ids := make([]string, 0, len(rules))
	for id := range rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// versions returns a rule's version slice; callers must hold the mutex.
func (ns *NetworkStore) versions(jurisdiction, ruleID string) ([]storedNetwork, error) {
	rules, exists := ns.store[jurisdiction]
	if !exists {
		return nil, fmt.Errorf("jurisdiction %s: %w", jurisdiction, ErrNotFound)
	}
	versions, exists := rules[ruleID]
	if !exists || len(versions) == 0 {
		return nil, fmt.Errorf("rule %s: %w", ruleID, ErrNotFound)
	}
	return versions, nil
}
