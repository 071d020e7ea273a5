// Package display renders rides, drivers, and riders as human-readable
// console text. It is the only place that knows the output layout; the
// entities expose plain accessors and never print.
package display

import (
	"fmt"
	"io"

	"ridedemo/internal/domain/entities"
)

// Console writes the demo's textual output to a single destination.
//
// Go Learning Note — io.Writer Injection:
// Taking an io.Writer instead of printing straight to os.Stdout costs one
// field and buys testability: production code passes os.Stdout, tests pass
// a bytes.Buffer and assert on the exact bytes. The output layout below is
// a parity contract (distance to one decimal, fare to two), so the tests
// do exactly that.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// RideDetails prints the standard five-line summary of a ride. Distance
// is always rendered with one fractional digit and fare with two.
func (c *Console) RideDetails(r entities.Ride) {
	fmt.Fprintf(c.w, "Ride ID: %s\n", r.RideID())
	fmt.Fprintf(c.w, "  Pickup: %s\n", r.Pickup())
	fmt.Fprintf(c.w, "  Dropoff: %s\n", r.Dropoff())
	fmt.Fprintf(c.w, "  Distance: %.1f miles\n", r.DistanceMiles())
	fmt.Fprintf(c.w, "  Fare: $%.2f\n", r.Fare())
}

// Separator prints the rule used between ride blocks in listings.
func (c *Console) Separator() {
	fmt.Fprintln(c.w, "--------------------")
}

// DriverInfo prints the driver's identity followed by every completed
// ride in insertion order. An empty history prints an explicit sentinel
// line rather than nothing.
func (c *Console) DriverInfo(d *entities.Driver) {
	fmt.Fprintf(c.w, "\n--- Driver Details ---\n")
	fmt.Fprintf(c.w, "Driver ID: %s\n", d.DriverID())
	fmt.Fprintf(c.w, "Name: %s\n", d.Name())
	fmt.Fprintf(c.w, "Rating: %.1f/5.0\n", d.Rating())

	rides := d.CompletedRides()
	fmt.Fprintf(c.w, "Completed Rides (%d):\n", len(rides))
	if len(rides) == 0 {
		fmt.Fprintln(c.w, "  No rides completed yet.")
		return
	}
	for _, r := range rides {
		c.RideDetails(r)
		c.Separator()
	}
}

// RiderHistory prints the rider's requested rides in insertion order,
// with the same iterate-or-sentinel contract as DriverInfo.
func (c *Console) RiderHistory(rd *entities.Rider) {
	fmt.Fprintf(c.w, "\n--- %s's Ride History ---\n", rd.Name())

	rides := rd.RequestedRides()
	if len(rides) == 0 {
		fmt.Fprintln(c.w, "  No rides requested yet.")
		return
	}
	for _, r := range rides {
		c.RideDetails(r)
		c.Separator()
	}
}

// RequestRide announces the request, prints the ride's details, and only
// then hands the ride to the rider. The print-before-store order is part
// of the contract: a stored ride has always already been shown.
func (c *Console) RequestRide(rd *entities.Rider, r entities.Ride) {
	fmt.Fprintf(c.w, "\n%s requested a ride.\n", rd.Name())
	c.RideDetails(r)
	rd.AddRide(r)
}
