// Package config provides application configuration structures and helpers.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
)

const defaultLogLevel = "info"

// TrackerConfig holds the configuration settings for the command-line tracker.
type TrackerConfig struct {
	PacketsFile string // Path to a JSON file with sensor packets, empty for the built-in sample
	LogLevel    string // zap level name
	Logger      *zap.SugaredLogger
}

// NewTrackerConfig creates a TrackerConfig by parsing args and environment variables.
func NewTrackerConfig(args []string) (*TrackerConfig, error) {
	cfg := &TrackerConfig{
		LogLevel: defaultLogLevel,
	}

	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	var fFile, fLevel, fConf strFlag
	fFile.v = cfg.PacketsFile
	fLevel.v = cfg.LogLevel
	fs.Var(&fFile, "f", "path to JSON file with sensor packets")
	fs.Var(&fLevel, "l", "log level")
	fs.Var(&fConf, "c", "Path to JSON config file")
	fs.Var(&fConf, "config", "Path to JSON config file (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.PacketsFile = fFile.v
	cfg.LogLevel = fLevel.v

	if fConf.v == "" {
		fConf.v = os.Getenv("CONFIG")
	}
	if fConf.v != "" {
		js, err := loadTrackerJSON(fConf.v)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", fConf.v, err)
		}
		if js.PacketsFile != nil && !fFile.set {
			cfg.PacketsFile = *js.PacketsFile
		}
		if js.LogLevel != nil && !fLevel.set {
			cfg.LogLevel = *js.LogLevel
		}
	}

	readTrackerEnvironment(cfg)

	// stdout carries the workout messages, so logs go to stderr.
	cfg.Logger = newLogger(cfg.LogLevel, []string{"stderr"})
	return cfg, nil
}

func readTrackerEnvironment(cfg *TrackerConfig) {
	if f := os.Getenv("PACKETS_FILE"); f != "" {
		cfg.PacketsFile = f
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
}

func newLogger(level string, outputs []string) *zap.SugaredLogger {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = outputs

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		log.Printf("invalid log level %q, using %s: %v", level, defaultLogLevel, err)
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logCfg.Level = lvl

	return zap.Must(logCfg.Build()).Sugar()
}
