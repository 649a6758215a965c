package thermo

import (
	"math"
	"testing"
)

func TestExchangeSymmetricFullStep(t *testing.T) {
	b1 := NewBody(400, 10)
	b2 := NewBody(300, 10)

	n1, n2 := Exchange(b1, b2, 1.0)

	// dq = 1*1*1*10*100*0.5 = 500, so both sides move 50K and meet.
	if n1 != 350 || n2 != 350 {
		t.Errorf("expected (350, 350), got (%f, %f)", n1, n2)
	}
}

func TestExchangeLargeDtEquilibriumClamp(t *testing.T) {
	b1 := NewBody(400, 10)
	b2 := NewBody(300, 5)

	n1, n2 := Exchange(b1, b2, 1000.0)

	want := (10.0*400 + 5.0*300) / 15.0
	if math.Abs(n1-want) > 1e-9 || math.Abs(n2-want) > 1e-9 {
		t.Errorf("expected both bodies at %.4f, got (%f, %f)", want, n1, n2)
	}
	if n1 != n2 {
		t.Errorf("clamped temperatures must be equal, got (%f, %f)", n1, n2)
	}
}

func TestExchangeNoNewExtrema(t *testing.T) {
	cases := []struct {
		name           string
		t1, c1, t2, c2 float64
		dt             float64
	}{
		{"small step", 400, 10, 300, 10, 0.01},
		{"full step", 400, 10, 300, 10, 1.0},
		{"huge step", 400, 10, 300, 5, 1e6},
		{"tiny masses", 350, 1e-6, 250, 1e-6, 1.0},
		{"huge masses", 1000, 1e9, 200, 1e9, 1.0},
		{"reversed gradient", 250, 3, 900, 7, 0.5},
		{"near equal", 300.0001, 2, 300, 2, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b1 := NewBody(tc.t1, tc.c1)
			b2 := NewBody(tc.t2, tc.c2)

			n1, n2 := Exchange(b1, b2, tc.dt)

			lo := math.Min(tc.t1, tc.t2)
			hi := math.Max(tc.t1, tc.t2)
			if n1 < lo || n1 > hi {
				t.Errorf("t1' = %f outside [%f, %f]", n1, lo, hi)
			}
			if n2 < lo || n2 > hi {
				t.Errorf("t2' = %f outside [%f, %f]", n2, lo, hi)
			}
		})
	}
}

func TestExchangeConservation(t *testing.T) {
	cases := []struct {
		name           string
		t1, c1, t2, c2 float64
		dt             float64
	}{
		{"gentle", 400, 10, 300, 10, 0.001},
		{"uneven masses", 500, 3, 350, 12, 0.001},
		{"conductive", 420, 2, 280, 6, 0.0005},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b1 := NewBody(tc.t1, tc.c1)
			b2 := NewBody(tc.t2, tc.c2)

			n1, n2 := Exchange(b1, b2, tc.dt)

			if n1 == n2 {
				t.Fatal("equilibrium clamp fired; pick a smaller dt for this case")
			}

			balance := tc.c1*(n1-tc.t1) + tc.c2*(n2-tc.t2)
			scale := math.Abs(tc.c1*tc.t1) + math.Abs(tc.c2*tc.t2)
			if math.Abs(balance)/scale > 1e-4 {
				t.Errorf("energy balance %e exceeds tolerance (scale %e)", balance, scale)
			}
		})
	}
}

func TestExchangeClampConservesExactly(t *testing.T) {
	b1 := NewBody(400, 10)
	b2 := NewBody(300, 5)

	before := b1.Energy() + b2.Energy()
	n1, n2 := Exchange(b1, b2, 1e9)
	after := b1.Capacity*n1 + b2.Capacity*n2

	if math.Abs(after-before)/before > 1e-12 {
		t.Errorf("equilibrium clamp must conserve energy exactly: before %f after %f", before, after)
	}
}

func TestExchangeEqualTemperaturesFixedPoint(t *testing.T) {
	for _, dt := range []float64{0, 0.01, 1, 1e6} {
		b1 := NewBody(300, 10)
		b2 := NewBody(300, 2)

		n1, n2 := Exchange(b1, b2, dt)
		if n1 != 300 || n2 != 300 {
			t.Errorf("dt=%f: equal temps must be a fixed point, got (%f, %f)", dt, n1, n2)
		}
	}
}

func TestExchangeMonotonicConvergence(t *testing.T) {
	b1 := NewBody(400, 10)
	b2 := NewBody(300, 5)

	prev := math.Abs(b1.Temp - b2.Temp)
	for i := 0; i < 500; i++ {
		n1, n2 := Exchange(b1, b2, 0.01)
		b1.Temp, b2.Temp = n1, n2

		diff := math.Abs(n1 - n2)
		if diff >= prev {
			t.Fatalf("step %d: |T1-T2| did not decrease (%f -> %f)", i, prev, diff)
		}
		prev = diff
	}

	if prev > 0.1 {
		t.Errorf("expected near-equilibrium after 500 steps, spread still %f", prev)
	}

	// Once equilibrium is hit exactly, it must hold.
	eq := Equilibrium(b1, b2)
	b1.Temp, b2.Temp = eq, eq
	n1, n2 := Exchange(b1, b2, 0.01)
	if n1 != eq || n2 != eq {
		t.Errorf("equilibrium did not hold: got (%f, %f), want %f", n1, n2, eq)
	}
}

func TestExchangeSymmetry(t *testing.T) {
	cases := []struct {
		name           string
		t1, c1, t2, c2 float64
		dt             float64
	}{
		{"hot first", 400, 10, 300, 5, 0.1},
		{"cold first", 300, 5, 400, 10, 0.1},
		{"clamping", 400, 10, 300, 5, 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b1 := NewBody(tc.t1, tc.c1)
			b2 := NewBody(tc.t2, tc.c2)

			a1, a2 := Exchange(b1, b2, tc.dt)
			b2r, b1r := Exchange(b2, b1, tc.dt)

			if a1 != b1r || a2 != b2r {
				t.Errorf("swap mismatch: (%f, %f) vs swapped (%f, %f)", a1, a2, b1r, b2r)
			}
		})
	}
}

func TestExchangeDegenerateInputsNoOp(t *testing.T) {
	cases := []struct {
		name   string
		b1, b2 Body
		dt     float64
	}{
		{"zero capacity", Body{Temp: 400, Capacity: 0, Conductivity: 1}, NewBody(300, 5), 1},
		{"negative capacity", Body{Temp: 400, Capacity: -2, Conductivity: 1}, NewBody(300, 5), 1},
		{"nan capacity", Body{Temp: 400, Capacity: math.NaN(), Conductivity: 1}, NewBody(300, 5), 1},
		{"inf capacity", Body{Temp: 400, Capacity: math.Inf(1), Conductivity: 1}, NewBody(300, 5), 1},
		{"nan temperature", Body{Temp: math.NaN(), Capacity: 10, Conductivity: 1}, NewBody(300, 5), 1},
		{"negative dt", NewBody(400, 10), NewBody(300, 5), -1},
		{"nan dt", NewBody(400, 10), NewBody(300, 5), math.NaN()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n1, n2 := Exchange(tc.b1, tc.b2, tc.dt)
			if !sameFloat(n1, tc.b1.Temp) || !sameFloat(n2, tc.b2.Temp) {
				t.Errorf("expected pass-through (%f, %f), got (%f, %f)", tc.b1.Temp, tc.b2.Temp, n1, n2)
			}
		})
	}
}

func TestExchangeNoNaNPropagation(t *testing.T) {
	b1 := NewBody(400, 1e-300)
	b2 := NewBody(300, 1e300)

	n1, n2 := Exchange(b1, b2, 1e6)
	if math.IsNaN(n1) || math.IsInf(n1, 0) || math.IsNaN(n2) || math.IsInf(n2, 0) {
		t.Errorf("non-finite output for finite inputs: (%f, %f)", n1, n2)
	}
}

func TestExchangeConductivityScalesFlow(t *testing.T) {
	fast1, fast2 := NewBody(400, 10), NewBody(300, 10)
	slow1, slow2 := NewBody(400, 10), NewBody(300, 10)
	slow1.Conductivity = 0.1
	slow2.Conductivity = 0.1

	f1, _ := Exchange(fast1, fast2, 0.01)
	s1, _ := Exchange(slow1, slow2, 0.01)

	fastDrop := 400 - f1
	slowDrop := 400 - s1
	if slowDrop >= fastDrop {
		t.Errorf("lower conductivity must slow flow: fast drop %f, slow drop %f", fastDrop, slowDrop)
	}
	if math.Abs(fastDrop-100*slowDrop) > 1e-9 {
		t.Errorf("k1*k2 scaling off: fast %f, slow %f", fastDrop, slowDrop)
	}
}

func TestEquilibrium(t *testing.T) {
	b1 := NewBody(400, 10)
	b2 := NewBody(300, 5)

	got := Equilibrium(b1, b2)
	want := (4000.0 + 1500.0) / 15.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestTotalEnergy(t *testing.T) {
	bodies := []Body{NewBody(400, 10), NewBody(300, 5)}
	if got := TotalEnergy(bodies); got != 5500 {
		t.Errorf("expected 5500, got %f", got)
	}
}

// sameFloat treats NaN as equal to itself for pass-through checks.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
