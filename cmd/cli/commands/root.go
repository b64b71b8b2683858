package commands

import (
	"github.com/spf13/cobra"
)

const (
	app = "resume-matcher"
)

var rootCmd = &cobra.Command{
	Use:          app,
	Short:        "resume-matcher scores a PDF resume against a fixed set of job descriptions",
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json-log", "j", false, "json format for logging")
}
