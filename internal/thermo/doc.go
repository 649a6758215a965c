// Package thermo provides the core heat-exchange primitive and its types.
//
// The central operation is [Exchange], a bounded pairwise equilibration
// step between two thermal bodies:
//
//   - heat flow scales with the temperature difference, both bodies'
//     conductivity coefficients, and the hotter body's capacity
//   - outputs are clamped into the pre-step temperature interval, so a
//     step never creates a new local extremum
//   - a step that would flip which body is hotter collapses both bodies
//     to the mass-weighted equilibrium temperature instead
//
// The clamps trade accuracy for unconditional single-step stability: the
// update is well behaved for any non-negative dt, at the cost of deviating
// from the exact exponential solution for large steps.
//
// Exchange is a pure function over two [Body] values and a time slice. It
// allocates nothing, never panics, and treats degenerate inputs (missing
// capacity, non-finite values) as a no-op rather than an error, so a long
// running tick loop cannot be taken down by one bad body.
package thermo
