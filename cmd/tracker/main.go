package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/fitness-tracker/internal/buildinfo"
	"github.com/and161185/fitness-tracker/internal/config"
	"github.com/and161185/fitness-tracker/internal/tracker"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildinfo.Print(os.Stderr, buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewTrackerConfig(os.Args[1:])
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatal(err)
	}
	defer func() { _ = cfg.Logger.Sync() }()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		cfg.Logger.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.TrackerConfig, out io.Writer) error {
	packets := tracker.DefaultPackets()
	if cfg.PacketsFile != "" {
		var err error
		packets, err = tracker.LoadPackets(cfg.PacketsFile)
		if err != nil {
			return err
		}
	}

	cfg.Logger.Debugf("Tracker config: PacketsFile=%q, LogLevel=%s, packets=%d",
		cfg.PacketsFile, cfg.LogLevel, len(packets))

	return tracker.NewTracker(out, cfg.Logger).Run(ctx, packets)
}

