package main

import (
	"os"

	"github.com/dsplit/dsplit/cmd/dsplit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
