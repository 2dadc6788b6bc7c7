package main

import (
	"os"

	"github.com/bankcsv-dev/bankcsv/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
