package mesh

import (
	"fmt"

	"github.com/san-kum/heatgrid/internal/thermo"
)

// Material carries the per-contact-area heat capacity and the flux
// coefficient a body is built with.
type Material struct {
	Capacity     float64
	Conductivity float64
}

// Materials holds stock material presets. Capacity is per unit contact
// area; conductivity is the dimensionless flux factor.
var Materials = map[string]Material{
	"copper":    {Capacity: 3.45, Conductivity: 1.0},
	"steel":     {Capacity: 3.8, Conductivity: 0.45},
	"water":     {Capacity: 4.18, Conductivity: 0.6},
	"brick":     {Capacity: 1.7, Conductivity: 0.15},
	"insulator": {Capacity: 0.9, Conductivity: 0.01},
}

// GetMaterial resolves a preset by name.
func GetMaterial(name string) (Material, error) {
	m, ok := Materials[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material: %s", name)
	}
	return m, nil
}

// ListMaterials returns the preset names.
func ListMaterials() []string {
	names := make([]string, 0, len(Materials))
	for name := range Materials {
		names = append(names, name)
	}
	return names
}

func (m Material) body(temp float64) thermo.Body {
	return thermo.Body{Temp: temp, Capacity: m.Capacity, Conductivity: m.Conductivity}
}

// Mesh is a contact network ready for the scheduler.
type Mesh struct {
	Bodies []thermo.Body
	Pairs  []thermo.Pair
}

// Junction is the two-body interface-plate case: one contact face
// between a body of matA at tA and a body of matB at tB.
func Junction(matA, matB Material, tA, tB float64) *Mesh {
	return &Mesh{
		Bodies: []thermo.Body{matA.body(tA), matB.body(tB)},
		Pairs:  []thermo.Pair{{A: 0, B: 1}},
	}
}

// Bar builds a 1D chain of n segments with a linear temperature ramp
// from hot at index 0 to cold at index n-1.
func Bar(n int, mat Material, hot, cold float64) *Mesh {
	if n < 1 {
		n = 1
	}

	bodies := make([]thermo.Body, n)
	for i := range bodies {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		bodies[i] = mat.body(hot + (cold-hot)*frac)
	}

	pairs := make([]thermo.Pair, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, thermo.Pair{A: i - 1, B: i})
	}

	return &Mesh{Bodies: bodies, Pairs: pairs}
}

// Plate builds a w x h 4-neighbor grid at ambient with one hot cell in
// the corner.
func Plate(w, h int, mat Material, hot, ambient float64) *Mesh {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	bodies := make([]thermo.Body, w*h)
	for i := range bodies {
		bodies[i] = mat.body(ambient)
	}
	bodies[0].Temp = hot

	pairs := make([]thermo.Pair, 0, 2*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if x+1 < w {
				pairs = append(pairs, thermo.Pair{A: i, B: i + 1})
			}
			if y+1 < h {
				pairs = append(pairs, thermo.Pair{A: i, B: i + w})
			}
		}
	}

	return &Mesh{Bodies: bodies, Pairs: pairs}
}
