package main

import (
	"os"

	"github.com/rmera/gokin/cmd/gokin/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
