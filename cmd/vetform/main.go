package main

import (
	"os"

	"github.com/dmitrymomot/vetform/cmd/vetform/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
