// Package flood classifies which cells of a pipe grid can be reached from
// outside the grid without crossing a pipe.
//
// A plain 4-directional flood over cells treats two diagonally touching
// pipes as a solid wall even when they are not joined to each other, so
// it cannot squeeze between them. Fill instead walks the lattice of cell
// corners ("joints"), offset by half a cell:
//
//	      c-1   c
//	     +----+----+
//	 r-1 | NW | NE |
//	     +----*----+     * = Joint{Row: r, Col: c}
//	 r   | SW | SE |
//	     +----+----+
//
// Moving from a joint to its orthogonal neighbour crosses the boundary
// between the two cells straddling that step (north: NW/NE, south: SW/SE,
// east: NE/SE, west: NW/SW). The move is blocked only when both cells
// exist and form a wall; by default a wall is a mutual pipe connection
// between them. The walk starts at the outer corner joint (0,0), which is
// outside any loop.
//
// Every cell appearing in a quadrant of a visited joint is exterior.
//
// Complexity: O(W×H) time and memory; the lattice has (W+1)×(H+1) joints.
package flood
