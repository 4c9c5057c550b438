package main

import (
	"os"

	"github.com/okay-you-very-pro/oyvp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
