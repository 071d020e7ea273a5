package entities

// Rider owns the ordered history of rides it has requested. Same
// append-only, single-owner contract as Driver.
type Rider struct {
	id             string
	name           string
	requestedRides []Ride
}

// NewRider creates a rider with an empty request history.
func NewRider(id, name string) *Rider {
	return &Rider{id: id, name: name}
}

func (r *Rider) RiderID() string { return r.id }
func (r *Rider) Name() string    { return r.name }

// AddRide appends a requested ride to the rider's history, taking
// ownership of it.
func (r *Rider) AddRide(ride Ride) {
	r.requestedRides = append(r.requestedRides, ride)
}

// RequestedRides returns the history in insertion order, read-only.
func (r *Rider) RequestedRides() []Ride {
	return r.requestedRides
}
