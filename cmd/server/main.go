package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/fitness-tracker/internal/buildinfo"
	"github.com/and161185/fitness-tracker/internal/config"
	"github.com/and161185/fitness-tracker/internal/server"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildinfo.Print(os.Stdout, buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := config.NewServerConfig(os.Args[1:])
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatal(err)
	}
	defer func() { _ = config.Logger.Sync() }()

	config.Logger.Infof("Server config: Addr=%s, LogLevel=%s", config.Addr, config.LogLevel)

	srv := server.NewServer(config)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Fatal(err)
	}
}
