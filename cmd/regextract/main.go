package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/regextract/internal/api"
	"github.com/dgallion1/regextract/internal/config"
	"github.com/dgallion1/regextract/internal/extract"
	"github.com/dgallion1/regextract/internal/output"
	"github.com/dgallion1/regextract/internal/pipeline"
	"github.com/dgallion1/regextract/internal/segment"
	"github.com/dgallion1/regextract/internal/similarity"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "regextract",
		Short: "EU legislation regulatory text and sentence extractor",
		Long: `regextract locates the operative part of EU legislative acts
(PDF / HTML as downloaded from EUR-Lex), splits it into sentences, drops
headings, page furniture and boilerplate, and writes every sentence that
carries a deontic marker ("shall", "must", ...) to a CSV table.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("rules", "", "YAML file overriding the built-in rule tables")
	rootCmd.PersistentFlags().String("segmenter", "", "sentence segmenter: punkt or simple")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log rejected sentences and per-document details")

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(rulesCmd())
	return rootCmd
}

// settings merges environment configuration with the persistent flags.
func settings(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	if v, _ := cmd.Flags().GetString("rules"); v != "" {
		cfg.RulesPath = v
	}
	if v, _ := cmd.Flags().GetString("segmenter"); v != "" {
		cfg.Segmenter = v
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.LogLevel = slog.LevelDebug
	}
	return cfg
}

func newLogger(cfg config.Config, w *os.File) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

func newRunner(cfg config.Config, log *slog.Logger) (*pipeline.Runner, error) {
	r, err := cfg.Rules()
	if err != nil {
		return nil, err
	}
	seg, err := segment.ByName(cfg.Segmenter)
	if err != nil {
		return nil, err
	}
	e := extract.New(r, seg, similarity.Indel{}, log)
	return pipeline.NewRunner(e, cfg.ParserOptions(), pipeline.NewStats(cfg.StatsWindow), log), nil
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract candidate regulatory sentences from a directory of documents",
		Long: `Extract candidate regulatory sentences from every .pdf and .html
document in the input directory and write them to a CSV file.

Example:
  regextract extract --input ./eurlex --output ./sentences.csv
  regextract extract -i ./eurlex -o ./out/ --segmenter simple`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("input")
			out, _ := cmd.Flags().GetString("output")

			if err := config.ValidateOutput(out); err != nil {
				return err
			}
			if err := config.ValidateInput(in); err != nil {
				return err
			}

			cfg := settings(cmd)
			log := newLogger(cfg, os.Stderr)
			runner, err := newRunner(cfg, log)
			if err != nil {
				return err
			}

			start := time.Now()
			rows, err := runner.Run(cmd.Context(), in)
			if err != nil {
				return err
			}

			path := output.ResolvePath(out)
			if err := output.WriteFile(path, rows); err != nil {
				return err
			}

			snap := runner.Stats().Snapshot()
			log.Info("extraction complete",
				"output", path,
				"documents", snap.Documents,
				"documents_without_rows", snap.Empty,
				"rows", len(rows),
				"p95_ms", snap.P95Ms,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "directory containing PDF and/or HTML EU legislative documents (required)")
	cmd.Flags().StringP("output", "o", "", "CSV file (or existing directory) for the extracted sentences (required)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the documents that extract would process",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("input")
			if err := config.ValidateInput(in); err != nil {
				return err
			}
			names, err := pipeline.ListDocuments(in)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "directory containing PDF and/or HTML documents (required)")
	cmd.MarkFlagRequired("input")
	return cmd
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rule tables as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := settings(cmd).Rules()
			if err != nil {
				return err
			}
			data, err := r.Marshal()
			if err != nil {
				return fmt.Errorf("marshal rules: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the extractor over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings(cmd)
			log := newLogger(cfg, os.Stdout)

			runner, err := newRunner(cfg, log)
			if err != nil {
				return err
			}
			srv := api.NewServer(runner, log, cfg)

			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 120 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown.
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down...")

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				httpServer.Shutdown(shutdownCtx)
			}()

			log.Info("starting regextract", "port", cfg.Port, "auth", cfg.APIKey != "")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}
