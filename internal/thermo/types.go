package thermo

import "math"

// Body is one discrete simulated volume that stores and exchanges heat.
type Body struct {
	// Temp is the current temperature in kelvin.
	Temp float64

	// Capacity is the effective heat capacity per unit contact area
	// (bulk mass x specific heat capacity / footprint area). The owner
	// must recompute it whenever mass, composition, or footprint change.
	Capacity float64

	// Conductivity is the multiplicative flux coefficient for this body.
	// A value of 1 gives the plain capacity-driven flow rate.
	Conductivity float64
}

// NewBody returns a body at temp kelvin with the given capacity and unit
// conductivity.
func NewBody(temp, capacity float64) Body {
	return Body{Temp: temp, Capacity: capacity, Conductivity: 1}
}

// Valid reports whether the body can participate in an exchange.
func (b Body) Valid() bool {
	if b.Capacity <= 0 || math.IsNaN(b.Capacity) || math.IsInf(b.Capacity, 0) {
		return false
	}
	return !math.IsNaN(b.Temp) && !math.IsInf(b.Temp, 0)
}

// Energy returns the stored heat relative to absolute zero, C*T.
func (b Body) Energy() float64 {
	return b.Capacity * b.Temp
}

// Pair indexes two bodies in a caller-owned slice that are in thermal
// contact for one tick. Which bodies touch is entirely the caller's
// concern; the exchange step assumes the pair is already resolved.
type Pair struct {
	A, B int
}

// TotalEnergy sums C*T over all bodies.
func TotalEnergy(bodies []Body) float64 {
	total := 0.0
	for _, b := range bodies {
		total += b.Energy()
	}
	return total
}
