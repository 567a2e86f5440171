package main

import (
	"os"

	"github.com/Chagadiye/ctrl-vibe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
