package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/models"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the job descriptions resumes are matched against",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printCatalog(cmd.OutOrStdout(), config.DefaultJobCatalog())
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}

func printCatalog(w io.Writer, catalog []models.JobDescription) {
	for i, job := range catalog {
		fmt.Fprintf(w, "%d. %s\n   %s\n", i+1, job.Title, job.Description)
	}
}
