package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gpereira/lens/internal/ai/gemini"
	"github.com/gpereira/lens/internal/analysis"
	"github.com/gpereira/lens/internal/export"
	"github.com/gpereira/lens/internal/pdf"
	"github.com/gpereira/lens/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume PDF against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "path to the candidate resume PDF")
	analyzeCmd.Flags().String("job", "", "path to a file with the job description")
	analyzeCmd.Flags().String("job-text", "", "job description passed inline")
	analyzeCmd.Flags().StringP("name", "n", "", "candidate name (default "+analysis.DefaultCandidateName+")")
	analyzeCmd.Flags().String("role", "", "role title (default "+analysis.DefaultRoleTitle+")")
	analyzeCmd.Flags().Bool("export", false, "also write the standalone HTML document")
	analyzeCmd.Flags().StringP("output", "o", ".", "directory for the exported document")
}

// analyze is the main command of the cli: it runs the full pipeline and
// saves the result to history.
func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	req := pipeline.Request{
		CandidateName:  flagString(cmd, "name"),
		RoleTitle:      flagString(cmd, "role"),
		JobDescription: flagString(cmd, "job-text"),
	}

	if resumePath := flagString(cmd, "resume"); resumePath != "" {
		data, err := os.ReadFile(resumePath)
		if err != nil {
			logger.Fatal("reading resume file", zap.Error(err))
		}
		req.ResumeFileName = resumePath
		req.ResumeData = data
	}

	if jobPath := flagString(cmd, "job"); jobPath != "" && req.JobDescription == "" {
		data, err := os.ReadFile(jobPath)
		if err != nil {
			logger.Fatal("reading job description file", zap.Error(err))
		}
		req.JobDescription = string(data)
	}

	apiKey, err := geminiAPIKey(config)
	if err != nil {
		logger.Fatal(
			"loading gemini api key",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY environment variable or the 'ai.gemini.api-key' key in the configuration file"),
		)
	}

	var model string
	var maxLogLen int
	if config.AI != nil && config.AI.Gemini != nil {
		model = config.AI.Gemini.Model
		maxLogLen = config.AI.Gemini.MaxLogLength
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, model)
	if err != nil {
		logger.Fatal("creating gemini generator", zap.Error(err))
	}

	store, err := openHistory(config, logger)
	if err != nil {
		logger.Fatal("opening history store", zap.Error(err))
	}

	pipe := pipeline.New(pipeline.Deps{
		Extractor: pdf.Extractor{},
		Analyzer:  gemini.NewAnalyzer(generator, logger, maxLogLen),
		History:   store,
		Logger:    logger,
	})
	pipe.Progress = func(stage analysis.Stage) {
		fmt.Fprintf(os.Stderr, "• %s\n", stage)
	}

	result, err := pipe.Run(ctx, req)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	renderResult(os.Stdout, result)

	if flagBool(cmd, "export") {
		path, err := export.WriteDocument(result, flagString(cmd, "output"))
		if err != nil {
			logger.Fatal("exporting document", zap.Error(err))
		}
		fmt.Printf("\nDocumento exportado: %s\n", path)
	}
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
