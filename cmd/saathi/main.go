package main

import (
	"os"

	"porter-saathi/cmd/saathi/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
