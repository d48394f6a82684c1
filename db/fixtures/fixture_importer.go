package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"legal-reasoning-core/db"
	"legal-reasoning-core/svc/models"
)

// NetworkFixture mirrors the YAML layout of a compiled rule network.
type NetworkFixture struct {
	Network struct {
		Rule         string `yaml:"rule"`
		Jurisdiction string `yaml:"jurisdiction"`
		Version      int    `yaml:"version"`
		Nodes        []struct {
			ID    string  `yaml:"id"`
			Prior float64 `yaml:"prior"`
		} `yaml:"nodes"`
		Conditionals []struct {
			Node               string   `yaml:"node"`
			Parents            []string `yaml:"parents"`
			ProbabilityAllTrue float64  `yaml:"probability_all_true"`
		} `yaml:"conditionals"`
	} `yaml:"network"`
}

// ImportFixtures builds the fixture network through the public builder
// operations and stores it in the given NetworkStore. It returns the
// jurisdiction and rule the network was stored under.
func ImportFixtures(store *db.NetworkStore) (jurisdiction, rule string, err error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", "", fmt.Errorf("failed to get current file path")
	}
	currentDir := filepath.Dir(filename)
	yamlFilePath := filepath.Join(currentDir, "network_fixture.yaml")

	yamlFile, err := os.ReadFile(yamlFilePath)
	if err != nil {
		return "", "", fmt.Errorf("error reading YAML file: %v", err)
	}

	var fixture NetworkFixture
	err = yaml.Unmarshal(yamlFile, &fixture)
	if err != nil {
		return "", "", fmt.Errorf("error parsing YAML: %v", err)
	}

	network := models.NewNetwork()
	for _, n := range fixture.Network.Nodes {
		if err := network.AddNode(n.ID, n.Prior); err != nil {
			return "", "", fmt.Errorf("error adding node %s: %v", n.ID, err)
		}
	}
	for _, c := range fixture.Network.Conditionals {
		if err := network.AddConditionalProbability(c.Node, c.Parents, c.ProbabilityAllTrue); err != nil {
			return "", "", fmt.Errorf("error adding conditional for %s: %v", c.Node, err)
		}
	}

	jurisdiction = fixture.Network.Jurisdiction
	rule = fixture.Network.Rule
	err = store.Store(jurisdiction, rule, network, fixture.Network.Version)
	if err != nil {
		return "", "", fmt.Errorf("error storing network: %v", err)
	}

	fmt.Printf("Fixture network %s has been successfully imported with %d nodes for jurisdiction %s\n",
		rule, network.Len(), jurisdiction)

	return jurisdiction, rule, nil
}
