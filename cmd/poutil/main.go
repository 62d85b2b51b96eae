package main

import (
	"os"

	"github.com/msto63/poutil/cmd/poutil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
