// Package demo runs the fixed demonstration scenario: one rider, one
// driver, a handful of rides of both kinds, and a mixed list printed
// through uniform interface dispatch. It takes no input and exercises
// every public contract in the domain exactly once.
package demo

import (
	"fmt"
	"io"

	"ridedemo/internal/display"
	"ridedemo/internal/domain/entities"
)

// Run executes the demonstration scenario, writing all output to w.
func Run(w io.Writer) {
	console := display.NewConsole(w)

	fmt.Fprintln(w, "--- Ride Sharing System Demonstration ---")

	sandesh := entities.NewRider("R001", "Sandesh Shrestha")

	console.RequestRide(sandesh, entities.NewStandardRide("S001", "Downtown", "Suburb A", 10.5))
	console.RequestRide(sandesh, entities.NewPremiumRide("P002", "Airport", "City Center", 25.0))
	console.RequestRide(sandesh, entities.NewStandardRide("S003", "Park", "Museum", 3.2))

	alice := entities.NewDriver("D001", "Alice Smith", 4.8)

	// The rider owns the requested rides, so the driver's completed
	// history gets independently constructed copies with -C suffixed ids.
	alice.AddRide(entities.NewStandardRide("S001-C", "Downtown", "Suburb A", 10.5))
	alice.AddRide(entities.NewPremiumRide("P002-C", "Airport", "City Center", 25.0))
	alice.AddRide(entities.NewStandardRide("S003-C", "Park", "Museum", 3.2))

	console.DriverInfo(alice)
	console.RiderHistory(sandesh)

	fmt.Fprintln(w, "\n--- Polymorphism Demonstration (List of All Rides in System) ---")
	systemRides := []entities.Ride{
		entities.NewStandardRide("SysR01", "Library", "Cafe", 7.0),
		entities.NewPremiumRide("SysR02", "Mall", "Home", 4.5),
		entities.NewStandardRide("SysR03", "Gym", "Cafe", 2.0),
		entities.NewPremiumRide("SysR04", "School", "Park", 12.0),
	}
	for _, r := range systemRides {
		// Both calls dispatch through the Ride interface; the loop has no
		// idea which variant it is holding. CalculateFare is pure and
		// returns the same value the constructor stored.
		r.CalculateFare()
		console.RideDetails(r)
		console.Separator()
	}

	fmt.Fprintln(w, "\n--- Demonstration Complete ---")
}
