package analysis

import "math"

// SpreadHistory computes the max-min temperature spread of every frame.
func SpreadHistory(frames [][]float64) []float64 {
	spread := make([]float64, len(frames))
	for i, frame := range frames {
		if len(frame) == 0 {
			continue
		}
		lo, hi := frame[0], frame[0]
		for _, v := range frame {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		spread[i] = hi - lo
	}
	return spread
}

// RelaxationRate estimates the exponential decay rate of the spread by
// averaging per-step log ratios:
//
//	rate ≈ -(1/dt) * mean(ln(s[i+1]/s[i]))
//
// Steps where the spread is zero (already equilibrated) or growing are
// skipped for the ratio but counted as evidence of no decay. Returns 0
// when no decaying steps exist.
func RelaxationRate(spread []float64, dt float64) float64 {
	if len(spread) < 2 || dt <= 0 {
		return 0
	}

	sumLog := 0.0
	count := 0

	for i := 1; i < len(spread); i++ {
		prev, cur := spread[i-1], spread[i]
		if prev <= 0 || cur <= 0 {
			continue
		}
		sumLog += math.Log(cur / prev)
		count++
	}

	if count == 0 {
		return 0
	}

	return -sumLog / (float64(count) * dt)
}

// EquilibrationTime returns the first time at which the spread falls to
// tol or below, or -1 when the run never equilibrates that far.
func EquilibrationTime(spread []float64, dt, tol float64) float64 {
	for i, s := range spread {
		if s <= tol {
			return float64(i) * dt
		}
	}
	return -1
}
