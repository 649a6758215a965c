package thermo

import "math"

// Exchange computes one bounded equilibration step between two bodies in
// contact for a time slice dt and returns their new temperatures. The
// inputs are not mutated; committing the result is the caller's job.
//
// Degenerate inputs (non-positive or non-finite capacity, non-finite
// temperature, negative or non-finite dt) make the call a no-op that
// returns the input temperatures unchanged.
func Exchange(b1, b2 Body, dt float64) (float64, float64) {
	t1, t2 := b1.Temp, b2.Temp

	if !b1.Valid() || !b2.Valid() {
		return t1, t2
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return t1, t2
	}
	if t1 == t2 {
		return t1, t2
	}

	// The hotter body's capacity drives the flow rate. The source formula
	// reuses capacity as the conductivity stand-in; Conductivity carries
	// that factor explicitly.
	chot := b1.Capacity
	if t1 <= t2 {
		chot = b2.Capacity
	}

	dq := dt * b1.Conductivity * b2.Conductivity * chot * (t1 - t2) * 0.5

	n1 := t1 - dq/b1.Capacity
	n2 := t2 + dq/b2.Capacity

	lo, hi := t1, t2
	if lo > hi {
		lo, hi = hi, lo
	}
	n1 = clamp(n1, lo, hi)
	n2 = clamp(n2, lo, hi)

	// An explicit step can overshoot and flip which body is hotter. That
	// is an integration artifact, not physics: collapse to the exact
	// mass-weighted equilibrium instead.
	if (t1-t2)*(n1-n2) < 0 {
		eq := Equilibrium(b1, b2)
		return eq, eq
	}

	return n1, n2
}

// Equilibrium returns the mass-weighted average temperature the pair
// converges to, (C1*T1 + C2*T2) / (C1 + C2).
func Equilibrium(b1, b2 Body) float64 {
	return (b1.Capacity*b1.Temp + b2.Capacity*b2.Temp) / (b1.Capacity + b2.Capacity)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
