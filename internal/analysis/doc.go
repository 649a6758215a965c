// Package analysis provides post-run convergence analysis.
//
// A conservative exchange network relaxes toward a uniform temperature;
// these tools characterize how fast:
//
//   - [SpreadHistory]: max-min temperature spread per frame
//   - [RelaxationRate]: mean exponential decay rate of the spread
//   - [EquilibrationTime]: first time the spread falls under a tolerance
//
// A positive relaxation rate means the network is converging; the
// half-life of the spread is ln(2)/rate.
package analysis
