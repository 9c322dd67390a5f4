package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-importer/internal/config"
	"github.com/jonathan/resume-importer/internal/importer"
	"github.com/jonathan/resume-importer/internal/llm"
	"github.com/jonathan/resume-importer/internal/observability"
	"github.com/jonathan/resume-importer/internal/schemas"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a PDF or DOCX resume into structured JSON",
	Long:  "Parse a PDF or DOCX resume file into a normalized resume record JSON that validates against the resume_record schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseFileType   string
	parseConfigFile string
	parseAPIKey     string
	parseModel      string
	parseValidate   bool
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to the resume file (PDF or DOCX) (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: parsed_resume_<timestamp>.json)")
	parseCmd.Flags().StringVarP(&parseFileType, "type", "t", "", "Declared file type (default: inferred from file extension)")
	parseCmd.Flags().StringVarP(&parseConfigFile, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().StringVar(&parseModel, "model", "", "Extraction model name override")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate output against the resume_record schema")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of the parsed record")

	if err := parseCmd.MarkFlagRequired("in"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		APIKey: parseAPIKey,
		Model:  parseModel,
	}
	if parseConfigFile != "" {
		fileCfg, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		parseValidate = parseValidate || fileCfg.ValidateOutput
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	data, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	declaredType := parseFileType
	if declaredType == "" {
		declaredType = strings.TrimPrefix(filepath.Ext(parseInputFile), ".")
	}
	if declaredType == "" {
		return fmt.Errorf("cannot infer file type from %q; use --type", parseInputFile)
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(cfg.Model)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create extraction client: %w", err)
	}
	defer func() { _ = client.Close() }()

	runID := uuid.NewString()
	printer := observability.NewPrinter(os.Stdout)
	if parseVerbose {
		printer.PrintStage("run", runID)
		printer.PrintStage("input", fmt.Sprintf("%s (%d bytes, type %s)", parseInputFile, len(data), declaredType))
	}

	record, err := importer.NewParser(client).ParseResume(ctx, data, declaredType)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	outputPath := parseOutputFile
	if outputPath == "" {
		name := fmt.Sprintf("parsed_resume_%s.json", time.Now().Format("20060102_150405"))
		outputPath = filepath.Join(cfg.OutDir, name)
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if parseValidate {
		schemaPath := schemas.ResolveSchemaPath("schemas/resume_record.schema.json")
		if schemaPath == "" {
			return fmt.Errorf("resume_record schema not found")
		}
		if err := schemas.ValidateBytes(schemaPath, jsonBytes); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("output failed schema validation: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Warning: schema validation skipped: %v\n", err)
		}
	}

	if parseVerbose {
		printer.PrintResumeRecord(record)
	}
	fmt.Printf("Successfully parsed resume!\nOutput saved to: %s\n", outputPath)

	return nil
}
