// Package pipeloop analyzes ASCII pipe diagrams: it finds the closed loop
// through the start cell 'S', the point along it farthest from the start,
// and the cells the loop encloses.
//
// Under the hood, everything is organized in small subpackages:
//
//	pipegrid/ — Point, diagram parsing and the mutual (bidirectional) filter
//	loop/     — iterative frontier search for the loop through the start
//	flood/    — exterior flood over the corner ("joint") lattice
//	area/     — loop / exterior / enclosed partition of the grid
//	solver/   — the whole pipeline, with phase timings logged through zap
//	render/   — glyph map of a classified grid
//	config/   — YAML settings for the CLI
//
// Quick ASCII example:
//
//	.....
//	.S-7.      farthest: 4
//	.|.|.      enclosed: 1
//	.L-J.
//	.....
//
//	go run ./cmd/pipeloop solve input.txt
package pipeloop
