package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kailas-cloud/assessrec/internal/predict"
	"github.com/kailas-cloud/assessrec/pkg/client"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run the query set against the API and write a predictions CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPredict(cmd)
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().String("url", "http://localhost:8080", "base URL of the assessrec API")
	predictCmd.Flags().String("api-key", "", "bearer API key")
	predictCmd.Flags().StringP("queries", "q", "", "file with one query per line (default is the built-in query set)")
	predictCmd.Flags().StringP("out", "o", "predictions.csv", "output CSV path")
	predictCmd.Flags().IntP("workers", "w", 4, "concurrent requests")
	predictCmd.Flags().Duration("timeout", 30*time.Second, "per-request timeout")

	bindFlags(predictCmd, "url", "api-key", "queries", "out", "workers", "timeout")
}

func runPredict(cmd *cobra.Command) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queries := predict.DefaultQueries
	if path := viper.GetString("queries"); path != "" {
		queries, err = readQueriesFile(path)
		if err != nil {
			return err
		}
	}

	api, err := client.New(
		viper.GetString("url"),
		client.WithAPIKey(viper.GetString("api-key")),
		client.WithTimeout(viper.GetDuration("timeout")),
	)
	if err != nil {
		return err
	}

	logger.Info("generating predictions",
		zap.String("url", viper.GetString("url")),
		zap.Int("queries", len(queries)),
		zap.Int("workers", viper.GetInt("workers")),
	)

	runner := predict.NewRunner(
		predict.APIRecommender{Client: api},
		predict.WithWorkers(viper.GetInt("workers")),
		predict.WithLogger(logger),
	)
	summary, err := runner.Run(ctx, queries)
	if err != nil {
		return fmt.Errorf("run predictions: %w", err)
	}

	rows := summary.Rows()
	outPath := viper.GetString("out")
	if err := writePredictions(outPath, rows); err != nil {
		return err
	}

	abs, _ := filepath.Abs(outPath)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File saved to: %s\n", abs)
	fmt.Fprintf(out, "Total rows: %d (excluding header)\n", len(rows))
	fmt.Fprintf(out, "Total queries: %d (failed: %d)\n", len(queries), summary.Failed)
	return nil
}

func readQueriesFile(path string) ([]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open queries: %w", err)
	}
	defer func() { _ = f.Close() }()

	queries, err := predict.ReadQueries(f)
	if err != nil {
		return nil, err
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("no queries in %s", path)
	}
	return queries, nil
}

func writePredictions(path string, rows []predict.Row) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := predict.WriteCSV(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
