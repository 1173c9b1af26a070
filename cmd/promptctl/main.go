package main

import (
	"os"

	"github.com/randalmurphal/promptctl/cmd/promptctl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
