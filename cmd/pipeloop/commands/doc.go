// Package commands implements the pipeloop command line:
//
//	pipeloop solve [file]    print the farthest distance and enclosed count
//	pipeloop render [file]   draw the classified grid, then print both numbers
//
// Input is read from stdin when no file is given. Settings come from the
// optional --config YAML file, overridden by flags.
package commands
