package main

import (
	"os"

	"safedh/cmd/safedh/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
