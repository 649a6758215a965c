// Package mesh builds contact networks for the exchange scheduler.
//
// The simulation core is handed an explicit adjacency list; who touches
// whom is decided here, up front, instead of being queried from a live
// spatial grid:
//
//   - [Junction]: two bodies on one contact face
//   - [Bar]: a 1D chain with a hot and a cold end
//   - [Plate]: a 2D 4-neighbor grid with a hot corner
//
// Builders take a [Material] (capacity per contact area plus a flux
// coefficient); the [Materials] table carries a few stock presets.
package mesh
