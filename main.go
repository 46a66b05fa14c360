package main

import (
	"os"

	"github.com/timegridhq/timegrid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
