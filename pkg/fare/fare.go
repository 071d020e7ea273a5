// Package fare implements the fare formulas for each ride variant.
// Fares are a pure function of trip distance and the variant's fixed
// rate constants; nothing here touches clocks, demand, or location data.
package fare

import (
	"math"
)

// Default rate constants. These reproduce the reference fare schedule:
// a standard ride costs a flat per-mile rate, a premium ride costs a
// higher per-mile rate plus a flat surcharge.
const (
	StandardPerMileRate = 2.0
	PremiumPerMileRate  = 3.5
	PremiumSurcharge    = 5.0
)

// Calculator computes a fare from a trip distance in miles.
type Calculator interface {
	Fare(distanceMiles float64) float64
}

// StandardCalculator prices a ride at a per-mile rate with no extras.
type StandardCalculator struct {
	PerMileRate float64
}

func NewStandardCalculator(perMileRate float64) StandardCalculator {
	return StandardCalculator{PerMileRate: perMileRate}
}

func (c StandardCalculator) Fare(distanceMiles float64) float64 {
	return distanceMiles * c.PerMileRate
}

// PremiumCalculator prices a ride at a per-mile rate plus a flat surcharge.
type PremiumCalculator struct {
	PerMileRate float64
	Surcharge   float64
}

func NewPremiumCalculator(perMileRate, surcharge float64) PremiumCalculator {
	return PremiumCalculator{PerMileRate: perMileRate, Surcharge: surcharge}
}

func (c PremiumCalculator) Fare(distanceMiles float64) float64 {
	return distanceMiles*c.PerMileRate + c.Surcharge
}

// DefaultStandard and DefaultPremium carry the reference rate constants.
var (
	DefaultStandard = StandardCalculator{PerMileRate: StandardPerMileRate}
	DefaultPremium  = PremiumCalculator{PerMileRate: PremiumPerMileRate, Surcharge: PremiumSurcharge}
)

// RoundToCents rounds a dollar amount to two decimal places.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
