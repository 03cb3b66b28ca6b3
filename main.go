package main

import (
	"os"

	"github.com/fieldforge/fieldforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
