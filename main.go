package main

import (
	"os"

	"github.com/openinf/siteify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
