package main

import (
	"os"

	"github.com/katalvlaran/pipeloop/cmd/pipeloop/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
