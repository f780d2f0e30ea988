package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kailas-cloud/assessrec/internal/config"
	logpkg "github.com/kailas-cloud/assessrec/internal/logger"
	"github.com/kailas-cloud/assessrec/internal/repository/catalog"
	seeduc "github.com/kailas-cloud/assessrec/internal/usecase/seed"
)

var errReadOnlyDriver = errors.New("seed needs a writable driver: redis, valkey or postgres")

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert a catalog file into Redis, Valkey or Postgres",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSeed(cmd)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringP("catalog", "c", "config/catalog.yaml", "catalog file (YAML or JSON)")
	seedCmd.Flags().String("driver", config.DriverRedis, "target store: redis, valkey or postgres")
	seedCmd.Flags().StringSlice("addrs", []string{"localhost:6379"}, "redis/valkey addresses")
	seedCmd.Flags().String("password", "", "redis/valkey password")
	seedCmd.Flags().String("dsn", "", "postgres DSN")
	seedCmd.Flags().String("key-prefix", "", "redis/valkey key prefix (default assessrec:)")

	bindFlags(seedCmd, "catalog", "driver", "addrs", "password", "dsn", "key-prefix")
}

// seedTarget builds the catalog config of the store being seeded.
func seedTarget() (config.CatalogConfig, error) {
	cfg := config.Config{
		Catalog: config.CatalogConfig{
			Driver:    viper.GetString("driver"),
			Addrs:     viper.GetStringSlice("addrs"),
			Password:  viper.GetString("password"),
			DSN:       viper.GetString("dsn"),
			KeyPrefix: viper.GetString("key-prefix"),
		},
	}
	cfg.ApplyDefaults()

	switch cfg.Catalog.Driver {
	case config.DriverRedis, config.DriverValkey:
		if len(cfg.Catalog.Addrs) == 0 {
			return config.CatalogConfig{}, fmt.Errorf("--addrs is required for driver %q", cfg.Catalog.Driver)
		}
	case config.DriverPostgres:
		if cfg.Catalog.DSN == "" {
			return config.CatalogConfig{}, fmt.Errorf("--dsn is required for driver %q", config.DriverPostgres)
		}
	default:
		return config.CatalogConfig{}, fmt.Errorf("%w, got %q", errReadOnlyDriver, cfg.Catalog.Driver)
	}
	return cfg.Catalog, nil
}

func runSeed(cmd *cobra.Command) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	target, err := seedTarget()
	if err != nil {
		return err
	}

	records, err := catalog.LoadFile(viper.GetString("catalog"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logpkg.ContextWithLogger(ctx, logger)

	backend, err := catalog.Open(ctx, target)
	if err != nil {
		return fmt.Errorf("open %s catalog: %w", target.Driver, err)
	}
	defer backend.Close()

	if backend.Writer == nil {
		return errReadOnlyDriver
	}

	logger.Info("seeding catalog",
		zap.String("driver", target.Driver),
		zap.Int("records", len(records)),
	)

	rep, err := seeduc.New(backend.Writer).Seed(ctx, records)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully inserted: %d\n", rep.Succeeded)
	fmt.Fprintf(out, "Errors: %d\n", rep.Failed)
	if rep.Total >= 0 {
		fmt.Fprintf(out, "Total assessments in database: %d\n", rep.Total)
	}
	for _, e := range rep.Errors {
		fmt.Fprintf(out, "  %v\n", e)
	}
	if rep.Failed > 0 && rep.Succeeded == 0 {
		return fmt.Errorf("no records stored (%d failed)", rep.Failed)
	}
	return nil
}
