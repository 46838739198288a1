package main

import (
	"os"

	"github.com/postdeck/postdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
