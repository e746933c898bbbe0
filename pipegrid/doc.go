// Package pipegrid turns an ASCII pipe diagram into an adjacency map
// of grid cells, and derives the mutual (bidirectional) map from it.
//
// What:
//
//   - Point is a value-typed (Row, Col) cell coordinate, usable as a map key.
//   - Parse reads one character per cell and records, for every cell of
//     the rectangle, the up-to-four neighbours its symbol points at.
//   - Bidirectional keeps only the edges both endpoints agree on, which
//     resolves the optimistic four-way start cell 'S' to its real shape.
//
// Symbols:
//
//	|  north, south        -  east, west
//	L  north, east         J  north, west
//	7  south, west         F  south, east
//	S  all four (resolved by Bidirectional)
//	.  nothing (any other rune behaves the same)
//
// Complexity:
//
//   - Parse:         O(W×H), Memory: O(W×H).
//   - Bidirectional: O(W×H), Memory: O(W×H)   (each cell holds ≤ 4 candidates).
//
// Errors:
//
//   - ErrEmptyGrid: the input has no rows before the first blank line.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart: no 'S' cell was found.
//   - ErrMultipleStarts: more than one 'S' cell was found.
package pipegrid
