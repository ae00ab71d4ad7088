package main

import (
	"os"

	"github.com/gpereira/lens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
