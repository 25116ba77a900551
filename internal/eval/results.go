package eval

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config records how an evaluation run was set up.
type Config struct {
	DatasetPath string `yaml:"datasetpath"`
	SampleSize  int    `yaml:"samplesize"`
	Timestamp   string `yaml:"timestamp"`
}

// SampleResult holds the estimator output for a single sample.
type SampleResult struct {
	ID         string `yaml:"id"`
	Length     int    `yaml:"length"`
	WordCount  int    `yaml:"wordcount"`
	Confidence int    `yaml:"confidence"`
}

// Summary aggregates estimator behavior over a whole run.
type Summary struct {
	Samples        int            `yaml:"samples"`
	MeanConfidence float64        `yaml:"meanconfidence"`
	MinConfidence  int            `yaml:"minconfidence"`
	MaxConfidence  int            `yaml:"maxconfidence"`
	Buckets        map[string]int `yaml:"buckets"`
}

// Report is the complete evaluation output written to YAML.
type Report struct {
	Config  Config         `yaml:"config"`
	Summary Summary        `yaml:"summary"`
	Results []SampleResult `yaml:"results"`
}

// Summarize computes aggregate statistics over per-sample results.
func Summarize(results []SampleResult) Summary {
	summary := Summary{
		Samples: len(results),
		Buckets: map[string]int{},
	}
	if len(results) == 0 {
		return summary
	}

	summary.MinConfidence = results[0].Confidence
	summary.MaxConfidence = results[0].Confidence
	total := 0
	for _, result := range results {
		total += result.Confidence
		if result.Confidence < summary.MinConfidence {
			summary.MinConfidence = result.Confidence
		}
		if result.Confidence > summary.MaxConfidence {
			summary.MaxConfidence = result.Confidence
		}
		summary.Buckets[bucket(result.Confidence)]++
	}
	summary.MeanConfidence = float64(total) / float64(len(results))

	return summary
}

// bucket maps a score to its 20-point histogram band.
func bucket(confidence int) string {
	switch {
	case confidence < 20:
		return "0-19"
	case confidence < 40:
		return "20-39"
	case confidence < 60:
		return "40-59"
	case confidence < 80:
		return "60-79"
	default:
		return "80-100"
	}
}

// SaveToYAML writes the report into outputDir and returns the file path.
func SaveToYAML(report *Report, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := fmt.Sprintf("confidence_eval_%s.yaml", time.Now().Format("20060102_150405"))
	path := filepath.Join(outputDir, filename)

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write results file: %w", err)
	}

	return path, nil
}
