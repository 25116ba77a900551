package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lenslate",
		Short: "Translation assistant backend with OCR text capture",
		Long: `Lenslate is the backend for a camera-and-speech translation assistant.

It extracts text from uploaded images through a chain of OCR services,
translates text through a chain of LLM and machine-translation services,
and keeps an in-memory history of recent results.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newEvalCmd())

	return cmd
}
