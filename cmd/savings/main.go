package main

import (
	"os"

	"github.com/rpgo/savings-calculator/cmd/savings/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
