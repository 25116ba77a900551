package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/polyglot-tools/lenslate/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the translation API server",
		Long: `Starts the Lenslate HTTP API on the specified port.

The API accepts image uploads for OCR text extraction and text for
translation. Both pipelines fall back across multiple external services
before giving up.`,
		Example: `  # Start server on default port 8888
  lenslate serve

  # Start server on custom port
  lenslate serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := handlers.New()

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/ocr", handler.HandleOCR)
			mux.HandleFunc("/api/translate", handler.HandleTranslate)
			mux.HandleFunc("/api/history/translations", handler.HandleTranslationHistory)
			mux.HandleFunc("/api/history/extractions", handler.HandleExtractionHistory)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Lenslate API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")

	return cmd
}
