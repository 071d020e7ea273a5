// Package entities defines the core domain models for the ride-sharing
// demo (Ride variants, Driver, Rider). These types live in the innermost
// layer — they know nothing about the CLI, configuration, or how ride
// details get printed. Presentation is layered on top in internal/display.
package entities

import (
	"ridedemo/pkg/fare"
)

// RideKind identifies which fare formula a ride was built with. The set
// of kinds is closed: a ride is standard or premium, fixed at construction.
//
// Go Learning Note — Interfaces Instead of Inheritance:
// The classic OOP version of this model is an abstract Ride base class
// with StandardRide/PremiumRide subclasses overriding calculateFare().
// Go has no inheritance. The idiomatic translation is the Ride interface
// below plus two concrete structs, each embedding rideBase for the shared
// fields and supplying its own CalculateFare. Callers hold []Ride and
// dispatch through the interface — no type switches required.
type RideKind string

const (
	RideKindStandard RideKind = "standard"
	RideKindPremium  RideKind = "premium"
)

// Ride is the contract every ride variant satisfies. All values are fixed
// at construction; there are no setters. CalculateFare is pure — it
// recomputes the fare from the distance and the variant's rates, and the
// constructor stores its result so Fare never disagrees with the formula.
type Ride interface {
	RideID() string
	Pickup() string
	Dropoff() string
	DistanceMiles() float64
	Fare() float64
	CalculateFare() float64
	Kind() RideKind
}

// rideBase holds the fields common to every variant.
//
// Go Learning Note — Struct Embedding:
// StandardRide and PremiumRide embed rideBase without a field name. The
// embedded type's methods (RideID, Pickup, ...) are promoted onto the
// outer struct, so each variant only has to implement what actually
// differs: CalculateFare and Kind. This is composition, not inheritance —
// rideBase has no idea which variant wraps it.
type rideBase struct {
	id            string
	pickup        string
	dropoff       string
	distanceMiles float64
	fare          float64
}

func (r *rideBase) RideID() string         { return r.id }
func (r *rideBase) Pickup() string         { return r.pickup }
func (r *rideBase) Dropoff() string        { return r.dropoff }
func (r *rideBase) DistanceMiles() float64 { return r.distanceMiles }
func (r *rideBase) Fare() float64          { return r.fare }

// StandardRide is priced at a flat per-mile rate.
type StandardRide struct {
	rideBase
	calc fare.StandardCalculator
}

// NewStandardRide builds a standard ride at the default per-mile rate.
// Inputs are taken as given: ids are not checked for uniqueness and the
// distance is not checked for sign, matching the reference behavior.
func NewStandardRide(id, pickup, dropoff string, distanceMiles float64) *StandardRide {
	return NewStandardRideWithRate(id, pickup, dropoff, distanceMiles, fare.StandardPerMileRate)
}

// NewStandardRideWithRate builds a standard ride at a caller-supplied
// per-mile rate. The simulation uses this to price rides from config.
func NewStandardRideWithRate(id, pickup, dropoff string, distanceMiles, perMileRate float64) *StandardRide {
	r := &StandardRide{
		rideBase: rideBase{id: id, pickup: pickup, dropoff: dropoff, distanceMiles: distanceMiles},
		calc:     fare.NewStandardCalculator(perMileRate),
	}
	r.fare = r.CalculateFare()
	return r
}

func (r *StandardRide) CalculateFare() float64 { return r.calc.Fare(r.distanceMiles) }

func (r *StandardRide) Kind() RideKind { return RideKindStandard }

// PremiumRide is priced at a higher per-mile rate plus a flat surcharge.
type PremiumRide struct {
	rideBase
	calc fare.PremiumCalculator
}

// NewPremiumRide builds a premium ride at the default rates.
func NewPremiumRide(id, pickup, dropoff string, distanceMiles float64) *PremiumRide {
	return NewPremiumRideWithRates(id, pickup, dropoff, distanceMiles, fare.PremiumPerMileRate, fare.PremiumSurcharge)
}

// NewPremiumRideWithRates builds a premium ride at caller-supplied rates.
func NewPremiumRideWithRates(id, pickup, dropoff string, distanceMiles, perMileRate, surcharge float64) *PremiumRide {
	r := &PremiumRide{
		rideBase: rideBase{id: id, pickup: pickup, dropoff: dropoff, distanceMiles: distanceMiles},
		calc:     fare.NewPremiumCalculator(perMileRate, surcharge),
	}
	r.fare = r.CalculateFare()
	return r
}

func (r *PremiumRide) CalculateFare() float64 { return r.calc.Fare(r.distanceMiles) }

func (r *PremiumRide) Kind() RideKind { return RideKindPremium }
