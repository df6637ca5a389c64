package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vypis-dev/vypis/internal/commands"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "vypis",
	})

	if err := commands.NewRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
