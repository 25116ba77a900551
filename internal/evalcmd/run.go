package evalcmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/polyglot-tools/lenslate/internal/eval"
	"github.com/polyglot-tools/lenslate/internal/ocr"
	"github.com/spf13/cobra"
)

func NewRunCmd() *cobra.Command {
	var (
		datasetPath string
		sampleSize  int
		outputDir   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the confidence estimator over a dataset",
		Long: `Runs the text normalizer and confidence estimator over every sample in
the dataset and writes aggregate score statistics to a YAML report.

Datasets are .parquet or .jsonl files of {id, text} samples.`,
		Example: `  # Evaluate against a full dataset
  lenslate eval run --dataset samples.parquet

  # Evaluate a 100-sample slice
  lenslate eval run --dataset samples.jsonl --sample 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(datasetPath, sampleSize, outputDir)
		},
	}

	cmd.Flags().StringVarP(&datasetPath, "dataset", "d", "", "Path to the dataset file (.parquet or .jsonl)")
	cmd.Flags().IntVarP(&sampleSize, "sample", "s", 0, "Evaluate only the first N samples (0 = all)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "evals", "Directory for the YAML report")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func executeRun(datasetPath string, sampleSize int, outputDir string) error {
	slog.Info("Starting estimator evaluation", "dataset", datasetPath, "sample", sampleSize)

	samples, err := eval.NewLoader(datasetPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	if sampleSize > 0 && sampleSize < len(samples) {
		samples = samples[:sampleSize]
	}

	slog.Info("Dataset loaded", "samples", len(samples))

	results := make([]eval.SampleResult, 0, len(samples))
	for _, sample := range samples {
		normalized := ocr.Normalize(sample.Text)
		results = append(results, eval.SampleResult{
			ID:         sample.ID,
			Length:     len(normalized),
			WordCount:  ocr.WordCount(normalized),
			Confidence: ocr.EstimateConfidence(sample.Text),
		})
	}

	report := &eval.Report{
		Config: eval.Config{
			DatasetPath: datasetPath,
			SampleSize:  len(samples),
			Timestamp:   time.Now().Format(time.RFC3339),
		},
		Summary: eval.Summarize(results),
		Results: results,
	}

	path, err := eval.SaveToYAML(report, outputDir)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	printSummary(report.Summary)
	fmt.Printf("\nResults saved to: %s\n", path)

	return nil
}

func printSummary(summary eval.Summary) {
	fmt.Println("\n=== Confidence Estimator Summary ===")
	fmt.Printf("Samples:          %d\n", summary.Samples)
	fmt.Printf("Mean confidence:  %.1f\n", summary.MeanConfidence)
	fmt.Printf("Min confidence:   %d\n", summary.MinConfidence)
	fmt.Printf("Max confidence:   %d\n", summary.MaxConfidence)
	fmt.Println("Score buckets:")
	for _, band := range []string{"0-19", "20-39", "40-59", "60-79", "80-100"} {
		if count, ok := summary.Buckets[band]; ok {
			fmt.Printf("  %-7s %d\n", band, count)
		}
	}
}
