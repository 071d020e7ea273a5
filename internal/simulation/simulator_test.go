package simulation

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"ridedemo/internal/config"
	"ridedemo/pkg/fare"
)

func testConfig(seed int64) *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Simulation.Drivers = 3
	cfg.Simulation.Riders = 4
	cfg.Simulation.Rides = 12
	cfg.Simulation.Seed = seed
	return cfg
}

func TestRunGeneratesConfiguredFleet(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(42)
	sim := New(cfg)

	var buf bytes.Buffer
	if err := sim.Run(ctx, &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}

	drivers, err := sim.drivers.All(ctx)
	if err != nil {
		t.Fatalf("drivers.All: %v", err)
	}
	riders, err := sim.riders.All(ctx)
	if err != nil {
		t.Fatalf("riders.All: %v", err)
	}

	if len(drivers) != cfg.Simulation.Drivers {
		t.Errorf("generated %d drivers, expected %d", len(drivers), cfg.Simulation.Drivers)
	}
	if len(riders) != cfg.Simulation.Riders {
		t.Errorf("generated %d riders, expected %d", len(riders), cfg.Simulation.Riders)
	}

	requested := 0
	for _, r := range riders {
		requested += len(r.RequestedRides())
	}
	if requested != cfg.Simulation.Rides {
		t.Errorf("riders hold %d rides in total, expected %d", requested, cfg.Simulation.Rides)
	}

	completed := 0
	for _, d := range drivers {
		completed += len(d.CompletedRides())
	}
	if completed != cfg.Simulation.Rides {
		t.Errorf("drivers hold %d completed rides in total, expected %d", completed, cfg.Simulation.Rides)
	}
}

func TestRunSummaryMatchesHistories(t *testing.T) {
	ctx := context.Background()
	sim := New(testConfig(7))

	var buf bytes.Buffer
	if err := sim.Run(ctx, &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}

	riders, err := sim.riders.All(ctx)
	if err != nil {
		t.Fatalf("riders.All: %v", err)
	}
	var total float64
	for _, r := range riders {
		for _, ride := range r.RequestedRides() {
			total += ride.Fare()
		}
	}

	summary := fmt.Sprintf("Total fares: $%.2f", fare.RoundToCents(total))
	if !strings.Contains(buf.String(), summary) {
		t.Errorf("output missing summary %q", summary)
	}
	if !strings.Contains(buf.String(), "--- Fleet Simulation (seed 7) ---") {
		t.Error("output missing simulation banner")
	}
	if !strings.Contains(buf.String(), "Fare schedule: standard $2.00/mile; premium $3.50/mile + $5.00") {
		t.Error("output missing fare schedule header")
	}
}

func TestRunIsDeterministicForFixedSeed(t *testing.T) {
	ctx := context.Background()

	collect := func() ([]string, []float64) {
		sim := New(testConfig(99))
		var buf bytes.Buffer
		if err := sim.Run(ctx, &buf); err != nil {
			t.Fatalf("Run: %v", err)
		}

		var names []string
		var fares []float64
		riders, err := sim.riders.All(ctx)
		if err != nil {
			t.Fatalf("riders.All: %v", err)
		}
		for _, r := range riders {
			names = append(names, r.Name())
			for _, ride := range r.RequestedRides() {
				fares = append(fares, ride.Fare())
			}
		}
		return names, fares
	}

	names1, fares1 := collect()
	names2, fares2 := collect()

	if len(names1) != len(names2) {
		t.Fatalf("rider counts differ: %d vs %d", len(names1), len(names2))
	}
	for i := range names1 {
		if names1[i] != names2[i] {
			t.Errorf("rider %d name differs: %q vs %q", i, names1[i], names2[i])
		}
	}

	if len(fares1) != len(fares2) {
		t.Fatalf("fare counts differ: %d vs %d", len(fares1), len(fares2))
	}
	for i := range fares1 {
		if math.Abs(fares1[i]-fares2[i]) > 1e-9 {
			t.Errorf("fare %d differs: %v vs %v", i, fares1[i], fares2[i])
		}
	}
}

func TestRunRejectsEmptyFleet(t *testing.T) {
	cfg := testConfig(1)
	cfg.Simulation.Drivers = 0

	var buf bytes.Buffer
	if err := New(cfg).Run(context.Background(), &buf); err == nil {
		t.Error("Run with zero drivers succeeded, expected an error")
	}
}

func TestRidePairSharesTripAttributes(t *testing.T) {
	sim := New(testConfig(5))

	requested, completed := sim.randomRidePair()

	if completed.RideID() != requested.RideID()+"-C" {
		t.Errorf("completed id = %q, expected %q", completed.RideID(), requested.RideID()+"-C")
	}
	if requested.Pickup() != completed.Pickup() || requested.Dropoff() != completed.Dropoff() {
		t.Error("requested and completed copies disagree on locations")
	}
	if requested.DistanceMiles() != completed.DistanceMiles() {
		t.Error("requested and completed copies disagree on distance")
	}
	if math.Abs(requested.Fare()-completed.Fare()) > 1e-9 {
		t.Error("requested and completed copies disagree on fare")
	}
	if requested == completed {
		t.Error("ride pair must be two distinct objects")
	}
}
