package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"legal-reasoning-core/db"
	"legal-reasoning-core/db/fixtures"
	"legal-reasoning-core/inference"
	"legal-reasoning-core/svc"
)

// This script loads the fixture network and prints a Monte Carlo distribution
// report for one proposition. Its used to inspect the engine's output in the
// local development environment.
func main() {
	target := os.Getenv("SIMULATION_TARGET")
	if target == "" {
		target = "eligible"
	}

	iterations := 5000
	if raw := os.Getenv("SIMULATION_ITERATIONS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid SIMULATION_ITERATIONS: %v", err)
		}
		iterations = parsed
	}

	store := db.NewNetworkStore()
	jurisdiction, rule, err := fixtures.ImportFixtures(store)
	if err != nil {
		log.Fatalf("Failed to import fixtures: %v", err)
	}

	network, err := store.Retrieve(jurisdiction, rule)
	if err != nil {
		log.Fatalf("Failed to retrieve network: %v", err)
	}

	var sim inference.Simulator
	if raw := os.Getenv("SIMULATION_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("Invalid SIMULATION_SEED: %v", err)
		}
		sim = svc.NewMonteCarloServiceWithSeed(network, seed)
	} else {
		sim = svc.NewMonteCarloService(network)
	}

	result, err := sim.Simulate(target, iterations)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	fmt.Printf("Simulated '%s' over %s/%s\n", target, jurisdiction, rule)
	fmt.Print(result.Summary())
}
