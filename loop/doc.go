// Package loop discovers the closed pipe loop through a start cell of a
// mutual adjacency map (see pipegrid.Bidirectional).
//
// The search is an iterative frontier expansion over explicit in-progress
// paths rather than recursion: each round, every active path is extended
// by the mutual neighbours of its tail (never stepping straight back along
// the edge it just used). A single candidate extends the path in place;
// several candidates, which only happens at the start cell, clone it. A
// path whose new tail already occurs earlier in itself is closed and
// moved out of the frontier; a path with no candidate dies.
//
// Find returns the first loop to close, All returns every loop in the
// order they closed. The farthest point along a loop from the start is
//
//	Farthest = (len(Path) − ClosureIndex) / 2 + ClosureIndex
//
// where Path ends with the repeated closure point and ClosureIndex is the
// position of its first occurrence (0 for any well-formed input).
//
// Complexity: O(L) time and memory for a loop of L cells; the frontier
// never holds more paths than the start cell has neighbours (≤ 4).
package loop
