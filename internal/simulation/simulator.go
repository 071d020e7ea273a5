// Package simulation generates a random fleet of drivers, riders, and
// rides, and replays it through the same display adapter the fixed demo
// uses. It exists to exercise the domain at arbitrary scale; all fares
// still flow through the variant calculators.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/jaswdr/faker"

	"ridedemo/internal/config"
	"ridedemo/internal/display"
	"ridedemo/internal/domain/entities"
	"ridedemo/internal/repository"
	"ridedemo/internal/repository/memory"
	"ridedemo/pkg/fare"
	"ridedemo/pkg/utils"
)

// Simulator owns the generated fleet for one run. Numeric draws and fake
// names both derive from the configured seed, so two runs with the same
// seed produce the same people, trips, and fares (ids are random).
type Simulator struct {
	cfg     *config.Config
	rng     *rand.Rand
	fake    faker.Faker
	drivers repository.DriverRegistry
	riders  repository.RiderRegistry
}

func New(cfg *config.Config) *Simulator {
	return &Simulator{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Simulation.Seed)),
		fake:    faker.NewWithSeed(rand.NewSource(cfg.Simulation.Seed)),
		drivers: memory.NewDriverRegistry(),
		riders:  memory.NewRiderRegistry(),
	}
}

// Run generates the fleet, requests every ride through the console
// adapter, assigns completed copies to drivers round-robin, and finishes
// with each driver's info, each rider's history, and a fare total.
func (s *Simulator) Run(ctx context.Context, w io.Writer) error {
	console := display.NewConsole(w)
	sim := s.cfg.Simulation

	fmt.Fprintf(w, "--- Fleet Simulation (seed %d) ---\n", sim.Seed)
	fmt.Fprintf(w, "Fare schedule: standard $%.2f/mile; premium $%.2f/mile + $%.2f\n",
		s.cfg.Pricing.StandardPerMileRate,
		s.cfg.Pricing.PremiumPerMileRate,
		s.cfg.Pricing.PremiumSurcharge)

	for i := 0; i < sim.Drivers; i++ {
		d := entities.NewDriver(utils.PrefixedID("D"), s.fake.Person().Name(), s.randomRating())
		if err := s.drivers.Create(ctx, d); err != nil {
			return err
		}
	}
	for i := 0; i < sim.Riders; i++ {
		r := entities.NewRider(utils.PrefixedID("R"), s.fake.Person().Name())
		if err := s.riders.Create(ctx, r); err != nil {
			return err
		}
	}

	drivers, err := s.drivers.All(ctx)
	if err != nil {
		return err
	}
	riders, err := s.riders.All(ctx)
	if err != nil {
		return err
	}
	if len(drivers) == 0 || len(riders) == 0 {
		return errors.New("simulation needs at least one driver and one rider")
	}

	var total float64
	for i := 0; i < sim.Rides; i++ {
		requested, completed := s.randomRidePair()
		console.RequestRide(riders[s.rng.Intn(len(riders))], requested)
		drivers[i%len(drivers)].AddRide(completed)
		total += requested.Fare()
	}

	for _, d := range drivers {
		console.DriverInfo(d)
	}
	for _, r := range riders {
		console.RiderHistory(r)
	}

	fmt.Fprintf(w, "\nSimulated %d rides across %d riders and %d drivers. Total fares: $%.2f\n",
		sim.Rides, len(riders), len(drivers), fare.RoundToCents(total))
	return nil
}

// randomRidePair returns a freshly generated ride and an independently
// constructed completed copy for a driver's history. Rides stay
// single-owner: the rider gets one object, the driver gets another.
func (s *Simulator) randomRidePair() (entities.Ride, entities.Ride) {
	pickup := s.fake.Address().City()
	dropoff := s.fake.Address().City()
	dist := s.randomDistance()
	p := s.cfg.Pricing

	if s.rng.Intn(2) == 0 {
		id := utils.PrefixedID("S")
		return entities.NewStandardRideWithRate(id, pickup, dropoff, dist, p.StandardPerMileRate),
			entities.NewStandardRideWithRate(id+"-C", pickup, dropoff, dist, p.StandardPerMileRate)
	}
	id := utils.PrefixedID("P")
	return entities.NewPremiumRideWithRates(id, pickup, dropoff, dist, p.PremiumPerMileRate, p.PremiumSurcharge),
		entities.NewPremiumRideWithRates(id+"-C", pickup, dropoff, dist, p.PremiumPerMileRate, p.PremiumSurcharge)
}

// randomDistance draws a trip length in the configured range, rounded to
// one decimal so the printed distance equals the stored value.
func (s *Simulator) randomDistance() float64 {
	sim := s.cfg.Simulation
	d := sim.MinDistanceMiles + s.rng.Float64()*(sim.MaxDistanceMiles-sim.MinDistanceMiles)
	return math.Round(d*10) / 10
}

// randomRating draws a driver rating in [3.0, 5.0] rounded to one decimal.
func (s *Simulator) randomRating() float64 {
	return math.Round((3.0+s.rng.Float64()*2.0)*10) / 10
}
