package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/logger"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

var matchCmd = &cobra.Command{
	Use:   "match <resume.pdf>",
	Short: "Score a PDF resume against every job description",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().Bool("json", false, "print results as JSON")
	matchCmd.Flags().Bool("show-text", false, "print a preview of the extracted resume text")
}

func runMatch(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	jsonLog, _ := cmd.Flags().GetBool("json-log")
	asJSON, _ := cmd.Flags().GetBool("json")
	showText, _ := cmd.Flags().GetBool("show-text")

	zl, err := logger.New(jsonLog, debug)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer zl.Sync()

	path := args[0]
	if err := services.ValidatePDFUpload(path, ""); err != nil {
		return err
	}

	cfg := config.Load()
	ctx := context.Background()

	embedder, err := services.NewEmbedder(ctx, cfg.Embedding)
	if err != nil {
		zl.Error("initializing embedding model", zap.Error(err))
		return err
	}

	matcher := services.NewMatcherService(
		services.NewPDFParserService(),
		services.NewScorerService(embedder),
		config.DefaultJobCatalog(),
		zl,
	)

	analysis, err := matcher.Analyze(ctx, path)
	if err != nil {
		zl.Error("analyzing resume", zap.String("path", path), zap.Error(err))
		return err
	}

	return printAnalysis(cmd.OutOrStdout(), analysis, asJSON, showText)
}

func printAnalysis(w io.Writer, analysis *models.Analysis, asJSON, showText bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	if showText {
		fmt.Fprintf(w, "Extracted resume text:\n%s\n\n", analysis.Preview)
	}

	fmt.Fprintln(w, "AI Analysis Results")
	for _, r := range analysis.Results {
		fmt.Fprintf(w, "%d. %s\n", r.Rank, r.JobTitle)
		fmt.Fprintf(w, "   [%-20s] %s\n", strings.Repeat("#", r.Progress/5), services.FormatScore(r.Score))
		fmt.Fprintf(w, "   %s\n", labelText(r.Label))
	}

	return nil
}

func labelText(label models.MatchLabel) string {
	switch label {
	case models.LabelStrong:
		return "Strong Match"
	case models.LabelPartial:
		return "Partial Match"
	default:
		return "Weak Match"
	}
}
