package cmd

import (
	"github.com/polyglot-tools/lenslate/internal/evalcmd"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Confidence estimator evaluation tools",
		Long: `Evaluation tools for the OCR confidence estimator.

Runs the text normalizer and confidence heuristic over a labeled dataset
of OCR output samples and reports aggregate score statistics.`,
	}

	// Add eval subcommands
	cmd.AddCommand(evalcmd.NewRunCmd())

	return cmd
}
