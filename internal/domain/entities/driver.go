package entities

// Driver owns the ordered history of rides it has completed. Identity
// fields are fixed at construction; the history is append-only and never
// reordered or deduplicated.
type Driver struct {
	id             string
	name           string
	rating         float64
	completedRides []Ride
}

// NewDriver creates a driver with an empty completed-ride history.
// Rating is on a 0–5 scale and does not change during a run.
func NewDriver(id, name string, rating float64) *Driver {
	return &Driver{id: id, name: name, rating: rating}
}

func (d *Driver) DriverID() string { return d.id }
func (d *Driver) Name() string     { return d.name }
func (d *Driver) Rating() float64  { return d.rating }

// AddRide appends a completed ride to the driver's history. The driver
// takes ownership of the ride; callers must not hand the same ride to
// another driver or rider afterwards.
func (d *Driver) AddRide(r Ride) {
	d.completedRides = append(d.completedRides, r)
}

// CompletedRides returns the history in insertion order. The slice is
// owned by the driver and must be treated as read-only.
func (d *Driver) CompletedRides() []Ride {
	return d.completedRides
}
