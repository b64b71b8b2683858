package main

import (
	"os"

	"alfredoptarigan/resume-matcher/cmd/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
